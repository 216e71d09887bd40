package report

import(
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/analysis"
)

const KMetresPerFoot = 0.3048

// {{{ GeoJSON

// GeoJSON builds a FeatureCollection with one Polygon feature per airspace (extruded to its
// ceiling via `elevation`), then one Point feature per located result. Unlocated results are
// left out.
func GeoJSON(polys []uasfix.AirspacePolygon, results []analysis.Result) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _,ap := range polys {
		f := geojson.NewFeature(orb.Polygon{ap.Boundary})
		f.Properties["airspace_name"] = ap.Name
		f.Properties["class"] = ap.Class
		f.Properties["min_altitude"] = ap.MinAltitude
		f.Properties["max_altitude"] = ap.MaxAltitude
		f.Properties["elevation"] = ap.MaxAltitude
		fc.Append(f)
	}

	for _,res := range results {
		if res.Fix == nil { continue }

		f := geojson.NewFeature(orb.Point{res.Fix.Long, res.Fix.Lat})
		f.Properties["kind"] = "sighting"
		f.Properties["origin"] = res.Fix.Origin.Code
		f.Properties["bearing"] = res.Fix.Bearing.String()
		if res.Fix.HasAltitude {
			f.Properties["altitude_ft"] = res.Fix.AltitudeFt
			f.Properties["alt_m"] = res.Fix.AltitudeFt * KMetresPerFoot
		}
		if res.Containment != nil {
			f.Properties["inside"] = res.Containment.IsInside()
		}
		fc.Append(f)
	}

	return fc
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
