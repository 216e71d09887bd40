package uasfix

import(
	"fmt"
	"strings"
)

// KKMPerNauticalMile is the conversion the FAA reports assume; offsets are always in NM.
const KKMPerNauticalMile = 1.852

// CompassBearings maps the 16 compass points to degrees clockwise from true north.
var CompassBearings = map[string]float64{
	"N":     0.0, "NNE":  22.5, "NE":  45.0, "ENE":  67.5,
	"E":    90.0, "ESE": 112.5, "SE": 135.0, "SSE": 157.5,
	"S":   180.0, "SSW": 202.5, "SW": 225.0, "WSW": 247.5,
	"W":   270.0, "WNW": 292.5, "NW": 315.0, "NNW": 337.5,
}

// CompassPoints lists the compass points in clockwise order, starting at north.
var CompassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func CompassBearing(dir string) (float64, bool) {
	deg,exists := CompassBearings[strings.ToUpper(strings.TrimSpace(dir))]
	return deg,exists
}

// BearingToken is an offset as it appears in a report, e.g. "10 SE" (ten nautical miles
// southeast of the reference facility).
type BearingToken struct {
	DistanceNM  float64
	Direction   string
}

func (bt BearingToken)String() string {
	return fmt.Sprintf("%g %s", bt.DistanceNM, bt.Direction)
}

func (bt BearingToken)DistanceKM() float64 { return bt.DistanceNM * KKMPerNauticalMile }

func (bt BearingToken)BearingDeg() (float64, bool) { return CompassBearing(bt.Direction) }
