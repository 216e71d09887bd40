package uasfix

import(
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// KKMPerDegree is the flat conversion used for "nearest airspace" distances. It is a rough
// approximation (it ignores the shrinking of longitude degrees away from the equator).
const KKMPerDegree = 111.0

// AirspacePolygon is one piece of controlled airspace: an exterior ring of (long,lat) vertices,
// plus the altitude band it covers. Holes are not modelled.
type AirspacePolygon struct {
	Name         string
	Class        string  // B, C, D, E ... if the source says so
	Boundary     orb.Ring
	MinAltitude  float64 // feet
	MaxAltitude  float64 // feet
}

func (ap AirspacePolygon)String() string {
	return fmt.Sprintf("%s [%.0f-%.0fft, %d verts]", ap.Name, ap.MinAltitude, ap.MaxAltitude,
		len(ap.Boundary))
}

// Centroid is the planar (area weighted) centroid of the exterior ring, in degrees.
func (ap AirspacePolygon)Centroid() orb.Point {
	c,_ := planar.CentroidArea(orb.Polygon{ap.Boundary})
	return c
}

// CoversAltitude reports whether the altitude falls within the band. It is informational only;
// containment does not consult it.
func (ap AirspacePolygon)CoversAltitude(ft float64) bool {
	return ft >= ap.MinAltitude && ft <= ap.MaxAltitude
}

// Bound is the bounding box of the exterior ring.
func (ap AirspacePolygon)Bound() orb.Bound { return ap.Boundary.Bound() }

// NearestAirspace is reported when a fix is not inside any airspace.
type NearestAirspace struct {
	Polygon     AirspacePolygon
	DistanceKM  float64 // centroid distance; degrees scaled by KKMPerDegree, not geodesic
}

// ContainmentResult: either the airspaces the fix lies within (in dataset order), or the nearest
// airspace when there are none.
type ContainmentResult struct {
	Intersecting []AirspacePolygon
	Nearest      *NearestAirspace
}

func (cr ContainmentResult)IsInside() bool { return len(cr.Intersecting) > 0 }

func (cr ContainmentResult)String() string {
	if cr.IsInside() {
		str := "inside:"
		for _,ap := range cr.Intersecting { str += " " + ap.Name }
		return str
	} else if cr.Nearest != nil {
		return fmt.Sprintf("outside; nearest %s at %.2fKM", cr.Nearest.Polygon.Name,
			cr.Nearest.DistanceKM)
	}
	return "outside; no airspace known"
}
