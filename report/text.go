package report

import(
	"fmt"

	"github.com/jftuga/geodist"

	"github.com/skypies/uasfix/analysis"
)

// Nearest airspaces further away than this are not worth mentioning.
const KNearbyReportKM = 25.0

// {{{ Summary

// Summary is the human readable account of one result.
func Summary(res analysis.Result) string {
	e := res.Extraction
	str := ""

	if e.HasHint {
		str += fmt.Sprintf("Reporting facility: %s\n", e.Hint)
	} else {
		str += "Reporting facility: not found\n"
	}
	if res.Match != nil {
		str += fmt.Sprintf("Origin airport: %s %s (%.5f,%.5f)\n", res.Match.Code, res.Match.Name,
			res.Match.Lat, res.Match.Long)
	}
	if e.HasBearing { str += fmt.Sprintf("Offset: %s\n", e.Bearing) }
	if e.HasAltitude { str += fmt.Sprintf("Altitude: %d ft\n", e.AltitudeFt) }

	if res.Fix == nil {
		return str + "Drone location could not be determined.\n"
	}

	str += fmt.Sprintf("Drone location: %.5f, %.5f\n", res.Fix.Lat, res.Fix.Long)
	if km,err := vincentyKM(res); err == nil {
		str += fmt.Sprintf("  (%.2f km from %s, bearing %.0f)\n", km, res.Fix.Origin.Code,
			res.Fix.OffsetBearing)
	}

	cr := res.Containment
	switch {
	case cr == nil:
		str += "Airspace: not checked\n"
	case cr.IsInside():
		str += "WARNING: drone is inside controlled airspace:\n"
		for _,ap := range cr.Intersecting {
			str += fmt.Sprintf("  - %s (%.0f-%.0f ft)\n", ap.Name, ap.MinAltitude, ap.MaxAltitude)
		}
	default:
		str += "Drone is not inside any known controlled airspace.\n"
		if cr.Nearest != nil && cr.Nearest.DistanceKM < KNearbyReportKM {
			str += fmt.Sprintf("Nearest airspace: %s (%.2f km away)\n", cr.Nearest.Polygon.Name,
				cr.Nearest.DistanceKM)
		}
	}

	return str
}

// }}}

// The ellipsoidal distance from origin to fix, as a cross-check on the spherical projection.
func vincentyKM(res analysis.Result) (float64, error) {
	o := geodist.Coord{Lat:res.Fix.Origin.Lat, Lon:res.Fix.Origin.Long}
	f := geodist.Coord{Lat:res.Fix.Lat, Lon:res.Fix.Long}
	_,km,err := geodist.VincentyDistance(o, f)
	return km, err
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
