package uasfix

import(
	"math"

	pgeo "github.com/paulmach/go.geo"
	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/skypies/geo"
)

// {{{ Project

// Project moves the origin along the token's compass bearing by its distance, on a spherical
// earth (radius 6378137m). The origin's altitude is carried over unchanged. It returns false if
// either input is absent, the origin is not a valid coordinate, the direction is not one of the
// sixteen compass points, or the arithmetic produces a non-finite result.
func Project(origin *Coordinate, bt *BearingToken) (Coordinate, bool) {
	if origin == nil || bt == nil { return Coordinate{}, false }
	if !origin.IsValid() { return Coordinate{}, false }

	brg,exists := bt.BearingDeg()
	if !exists { return Coordinate{}, false }

	distKM := bt.DistanceKM()
	if math.IsNaN(distKM) || math.IsInf(distKM,0) || distKM < 0 { return Coordinate{}, false }
	if distKM == 0 { return *origin, true }

	p := orbgeo.PointAtBearingAndDistance(orb.Point{origin.Long, origin.Lat}, brg, distKM*1000.0)

	dest := *origin
	dest.Latlong = geo.Latlong{Lat:p[1], Long:normalizeLong(p[0])}
	if !dest.IsValid() { return Coordinate{}, false }

	return dest, true
}

// }}}
// {{{ Inverse

// Inverse returns the initial bearing ([0,360) degrees) and great circle distance (KM) from one
// point to another, on the same sphere that Project uses.
func Inverse(from, to geo.Latlong) (float64, float64) {
	p1 := pgeo.NewPoint(from.Long, from.Lat)
	p2 := pgeo.NewPoint(to.Long, to.Lat)

	brg := math.Mod(p1.BearingTo(p2) + 360.0, 360.0)
	return brg, p1.GeoDistanceFrom(p2, true) / 1000.0
}

// }}}

func normalizeLong(long float64) float64 {
	for long > 180.0 { long -= 360.0 }
	for long < -180.0 { long += 360.0 }
	return long
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
