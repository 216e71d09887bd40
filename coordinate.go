// Package uasfix turns FAA UAS sighting narratives into a geographic fix, and checks that fix
// against controlled airspace.
package uasfix

import(
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// Coordinate is a point on the earth, with an optional altitude (in feet).
type Coordinate struct {
	geo.Latlong

	AltitudeFt   float64
	HasAltitude  bool  // false means "altitude unknown"
}

func NewCoordinate(lat, long float64) Coordinate {
	return Coordinate{Latlong: geo.Latlong{Lat:lat, Long:long}}
}

// {{{ c.String

func (c Coordinate)String() string {
	if !c.HasAltitude {
		return fmt.Sprintf("(%.5f,%.5f) alt:unknown", c.Lat, c.Long)
	}
	return fmt.Sprintf("(%.5f,%.5f) alt:%.0fft", c.Lat, c.Long, c.AltitudeFt)
}

// }}}
// {{{ c.WithAltitude

func (c Coordinate)WithAltitude(ft float64) Coordinate {
	c.AltitudeFt = ft
	c.HasAltitude = true
	return c
}

// }}}
// {{{ c.IsValid

// IsValid is false for NaN/Inf components, or a lat/long outside [-90,90]/[-180,180]. Only valid
// coordinates may be handed to the airspace index.
func (c Coordinate)IsValid() bool {
	for _,v := range []float64{c.Lat, c.Long} {
		if math.IsNaN(v) || math.IsInf(v,0) { return false }
	}
	if c.HasAltitude && (math.IsNaN(c.AltitudeFt) || math.IsInf(c.AltitudeFt,0)) { return false }
	return c.Lat >= -90 && c.Lat <= 90 && c.Long >= -180 && c.Long <= 180
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
