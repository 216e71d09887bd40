package uasfix

import(
	"fmt"
)

// SightingFix is the derived position of a single sighting. It is computed per report and never
// persisted by this package.
type SightingFix struct {
	Coordinate

	Bearing   BearingToken
	Hint      FacilityHint
	Origin    AirportRecord  // the airport the hint resolved to

	// Where the fix lies relative to the origin, as a sanity check on the projection
	OffsetKM       float64
	OffsetBearing  float64 // [0,360)
}

func NewSightingFix(c Coordinate, bt BearingToken, hint FacilityHint, origin AirportRecord) SightingFix {
	fix := SightingFix{
		Coordinate: c,
		Bearing: bt,
		Hint: hint,
		Origin: origin,
	}
	fix.OffsetKM = origin.Latlong.DistKM(c.Latlong)
	if fix.OffsetKM > 0 {
		fix.OffsetBearing = origin.Latlong.BearingTowards(c.Latlong)
	}
	return fix
}

func (fix SightingFix)String() string {
	return fmt.Sprintf("%s: %s from %s (%s) => %s", fix.Hint, fix.Bearing, fix.Origin.Code,
		fix.Origin.Name, fix.Coordinate)
}
