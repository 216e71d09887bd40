// Package airspace answers "which controlled airspace is this point in" questions, against a
// fixed set of airspace polygons.
//
// Containment is two dimensional: a point is inside an airspace if it lies inside (or on the
// boundary of) its exterior ring, whatever its altitude. The altitude bands are carried along
// for reporting only.
package airspace

import(
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/skypies/uasfix"
)

// Bounding boxes are padded by this many degrees, since the rtree treats touching boxes as
// disjoint, and we want boundary points to count.
const kPadDeg = 1e-9

// Index is built once from the polygon set, and never changes afterwards; it is safe for
// concurrent use.
type Index struct {
	polys      []uasfix.AirspacePolygon
	centroids  []orb.Point
	tree        *rtreego.Rtree
	unindexed  []int  // polygons with a degenerate bounding box; always tested
}

type treeEntry struct {
	i     int
	rect  rtreego.Rect
}
func (te *treeEntry)Bounds() rtreego.Rect { return te.rect }

// {{{ NewIndex

func NewIndex(polys []uasfix.AirspacePolygon) *Index {
	idx := Index{
		polys: append([]uasfix.AirspacePolygon{}, polys...),
		tree: rtreego.NewTree(2, 25, 50),
	}

	for i,ap := range idx.polys {
		idx.centroids = append(idx.centroids, ap.Centroid())

		b := ap.Bound()
		rect,err := rtreego.NewRect(rtreego.Point{b.Min[0]-kPadDeg, b.Min[1]-kPadDeg},
			[]float64{b.Max[0]-b.Min[0]+2*kPadDeg, b.Max[1]-b.Min[1]+2*kPadDeg})
		if err != nil || len(ap.Boundary) == 0 {
			idx.unindexed = append(idx.unindexed, i)
			continue
		}
		idx.tree.Insert(&treeEntry{i:i, rect:rect})
	}

	return &idx
}

// }}}

func (idx *Index)Len() int { return len(idx.polys) }

// Polygons returns the full polygon set, in dataset order (e.g. for display).
func (idx *Index)Polygons() []uasfix.AirspacePolygon {
	return append([]uasfix.AirspacePolygon{}, idx.polys...)
}

// {{{ idx.candidates

// Indices of polygons whose bounding box contains the point, in dataset order.
func (idx *Index)candidates(pt orb.Point) []int {
	ret := append([]int{}, idx.unindexed...)

	query,err := rtreego.NewRect(rtreego.Point{pt[0]-kPadDeg, pt[1]-kPadDeg},
		[]float64{2*kPadDeg, 2*kPadDeg})
	if err != nil {
		// Can't happen for finite points; fall back to testing everything
		ret = ret[:0]
		for i,_ := range idx.polys { ret = append(ret, i) }
		return ret
	}

	for _,s := range idx.tree.SearchIntersect(query) {
		ret = append(ret, s.(*treeEntry).i)
	}
	sort.Ints(ret)
	return ret
}

// }}}
// {{{ idx.Contains

// Contains returns the airspaces whose exterior ring contains the point (boundary inclusive), in
// dataset order. Altitude is ignored. The caller must only pass valid coordinates.
func (idx *Index)Contains(c uasfix.Coordinate) []uasfix.AirspacePolygon {
	pt := orb.Point{c.Long, c.Lat}
	ret := []uasfix.AirspacePolygon{}

	for _,i := range idx.candidates(pt) {
		if len(idx.polys[i].Boundary) < 3 { continue }
		if planar.RingContains(idx.polys[i].Boundary, pt) {
			ret = append(ret, idx.polys[i])
		}
	}

	return ret
}

// }}}
// {{{ idx.Nearest

// Nearest finds the airspace whose centroid is closest to the point. The distance is the flat
// Euclidean distance in degrees, scaled by uasfix.KKMPerDegree; it is an approximation, not a
// geodesic distance. Ties go to the earlier polygon. It is false only if the index is empty.
func (idx *Index)Nearest(c uasfix.Coordinate) (uasfix.NearestAirspace, bool) {
	iBest,dBest := -1, 0.0
	for i,ctr := range idx.centroids {
		d := math.Hypot(ctr[0]-c.Long, ctr[1]-c.Lat)
		if iBest < 0 || d < dBest {
			iBest,dBest = i,d
		}
	}

	if iBest < 0 { return uasfix.NearestAirspace{}, false }

	return uasfix.NearestAirspace{
		Polygon: idx.polys[iBest],
		DistanceKM: dBest * uasfix.KKMPerDegree,
	}, true
}

// }}}
// {{{ idx.Check

// Check runs Contains; if nothing contains the point, it fills in the nearest airspace instead.
func (idx *Index)Check(c uasfix.Coordinate) uasfix.ContainmentResult {
	cr := uasfix.ContainmentResult{Intersecting: idx.Contains(c)}
	if !cr.IsInside() {
		if nearest,found := idx.Nearest(c); found {
			cr.Nearest = &nearest
		}
	}
	return cr
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
