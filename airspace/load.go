package airspace

import(
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"google.golang.org/api/option"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/source"
)

// Property names, in order of preference. The lowercase ones are what our own exports use; the
// uppercase ones come from the FAA Class_Airspace dataset.
var(
	KNameProps  = []string{"airspace_name", "NAME", "name", "IDENT"}
	KClassProps = []string{"CLASS", "class", "airspace_class"}
	KMinProps   = []string{"min_altitude", "LOWER_VAL", "lower_val"}
	KMaxProps   = []string{"max_altitude", "UPPER_VAL", "upper_val"}
)

// Files that sit alongside a .shp; directory listings skip them.
var kShapefileSidecars = map[string]bool{
	".dbf":true, ".shx":true, ".prj":true, ".cpg":true, ".sbn":true, ".sbx":true, ".qix":true,
	".xml":true,
}

// Extensions (after any compression suffix) that Load reads from a directory listing.
var kAirspaceExts = map[string]bool{".geojson":true, ".json":true, ".shp":true, ".zip":true}

// dataExt is the extension under any .gz/.zst suffixes. Zip archives are taken on trust, since
// the member name is only known once opened.
func dataExt(u string) string {
	name := strings.ToLower(path.Base(u))
	for {
		switch ext := path.Ext(name); ext {
		case ".gz", ".zst":
			name = strings.TrimSuffix(name, ext)
		default:
			return ext
		}
	}
}

// {{{ LoadIndex, Load

// LoadIndex loads every polygon found at uri (a file, a local directory, or a gs:// prefix
// ending in '/') and builds an index over them. Failures wrap uasfix.ErrDataLoad.
func LoadIndex(ctx context.Context, uri string, opts ...option.ClientOption) (*Index, string, error) {
	polys,str,err := Load(ctx, uri, opts...)
	if err != nil { return nil, str, err }
	return NewIndex(polys), str, nil
}

func Load(ctx context.Context, uri string, opts ...option.ClientOption) ([]uasfix.AirspacePolygon, string, error) {
	uris,err := source.Expand(ctx, uri, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: airspace %s: %v", uasfix.ErrDataLoad, uri, err)
	}

	// Only files found by listing a directory get skipped; a named file must load
	listed := len(uris) != 1 || uris[0] != uri

	str := ""
	polys := []uasfix.AirspacePolygon{}
	for _,u := range uris {
		var these []uasfix.AirspacePolygon
		var deb string

		ext := strings.ToLower(path.Ext(u))
		if kShapefileSidecars[ext] { continue }
		if listed && !kAirspaceExts[dataExt(u)] {
			str += fmt.Sprintf("* %s: skipping, not airspace data\n", u)
			continue
		}

		if ext == ".shp" {
			these,deb,err = LoadShapefile(u)
		} else {
			these,deb,err = loadGeoJSON(ctx, u, opts...)
		}
		if err != nil {
			return nil, str, fmt.Errorf("%w: airspace %s: %v", uasfix.ErrDataLoad, u, err)
		}
		str += deb
		polys = append(polys, these...)
	}

	if len(polys) == 0 {
		return nil, str, fmt.Errorf("%w: airspace %s: no polygons found", uasfix.ErrDataLoad, uri)
	}

	return polys, str, nil
}

// }}}
// {{{ loadGeoJSON

func loadGeoJSON(ctx context.Context, uri string, opts ...option.ClientOption) ([]uasfix.AirspacePolygon, string, error) {
	b,name,err := source.ReadAll(ctx, uri, opts...)
	if err != nil { return nil, "", err }

	switch ext := strings.ToLower(name[strings.LastIndex(name, ".")+1:]); ext {
	case "geojson", "json":
	default:
		return nil, "", fmt.Errorf("unknown format %q", name)
	}

	return DecodeGeoJSON(b)
}

// }}}
// {{{ DecodeGeoJSON

// DecodeGeoJSON turns a FeatureCollection into airspace polygons. Each Polygon feature yields its
// exterior ring; each MultiPolygon yields one polygon per member exterior ring, all sharing the
// feature's properties. Other geometries, and rings with fewer than three vertices, are skipped
// (and noted in the debug string).
func DecodeGeoJSON(b []byte) ([]uasfix.AirspacePolygon, string, error) {
	fc,err := geojson.UnmarshalFeatureCollection(b)
	if err != nil { return nil, "", err }

	str := ""
	polys := []uasfix.AirspacePolygon{}

	for i,f := range fc.Features {
		tmpl := uasfix.AirspacePolygon{
			Name: propString(f.Properties, KNameProps),
			Class: propString(f.Properties, KClassProps),
			MinAltitude: propFloat(f.Properties, KMinProps),
			MaxAltitude: propFloat(f.Properties, KMaxProps),
		}
		if tmpl.Name == "" { tmpl.Name = fmt.Sprintf("airspace-%d", i) }

		rings := []orb.Ring{}
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			if len(g) > 0 { rings = append(rings, g[0]) }
		case orb.MultiPolygon:
			for _,p := range g {
				if len(p) > 0 { rings = append(rings, p[0]) }
			}
		default:
			str += fmt.Sprintf("* feature %d (%s): skipping geometry %T\n", i, tmpl.Name, f.Geometry)
			continue
		}

		for _,r := range rings {
			ap := tmpl
			if ap.Boundary = closeRing(r); ap.Boundary == nil {
				str += fmt.Sprintf("* feature %d (%s): degenerate ring\n", i, tmpl.Name)
				continue
			}
			polys = append(polys, ap)
		}
	}

	return polys, fmt.Sprintf("---- geojson: %d features, %d polygons\n", len(fc.Features),
		len(polys)) + str, nil
}

// }}}
// {{{ LoadShapefile

// LoadShapefile reads polygons from an ESRI shapefile (local paths only; the .dbf must sit
// alongside). Exterior rings are the clockwise parts; if a shape has none, its first part is
// taken.
func LoadShapefile(fn string) ([]uasfix.AirspacePolygon, string, error) {
	r,err := shp.Open(fn)
	if err != nil { return nil, "", err }
	defer r.Close()

	fields := map[string]int{}
	for i,f := range r.Fields() {
		fields[f.String()] = i
	}
	attr := func(row int, names []string) string {
		for _,name := range names {
			if i,exists := fields[name]; exists {
				return strings.Trim(r.ReadAttribute(row, i), " \x00")
			}
		}
		return ""
	}

	str := ""
	polys := []uasfix.AirspacePolygon{}
	nShapes := 0

	for r.Next() {
		n,shape := r.Shape()
		nShapes++

		p,ok := shape.(*shp.Polygon)
		if !ok {
			str += fmt.Sprintf("* shape %d: skipping %T\n", n, shape)
			continue
		}

		tmpl := uasfix.AirspacePolygon{
			Name: attr(n, KNameProps),
			Class: attr(n, KClassProps),
			MinAltitude: parseAltitude(attr(n, KMinProps)),
			MaxAltitude: parseAltitude(attr(n, KMaxProps)),
		}
		if tmpl.Name == "" { tmpl.Name = fmt.Sprintf("airspace-%d", n) }

		for _,ring := range exteriorRings(p) {
			ap := tmpl
			if ap.Boundary = closeRing(ring); ap.Boundary == nil { continue }
			polys = append(polys, ap)
		}
	}

	return polys, fmt.Sprintf("---- shapefile %s: %d shapes, %d polygons\n", fn, nShapes,
		len(polys)) + str, nil
}

// }}}
// {{{ exteriorRings

func exteriorRings(p *shp.Polygon) []orb.Ring {
	parts := []orb.Ring{}
	for i,start := range p.Parts {
		end := int32(len(p.Points))
		if i+1 < len(p.Parts) { end = p.Parts[i+1] }
		if start < 0 || end > int32(len(p.Points)) || start >= end { continue }

		ring := orb.Ring{}
		for _,pt := range p.Points[start:end] {
			ring = append(ring, orb.Point{pt.X, pt.Y})
		}
		parts = append(parts, ring)
	}

	ext := []orb.Ring{}
	for _,ring := range parts {
		if signedArea(ring) < 0 { ext = append(ext, ring) }
	}
	if len(ext) == 0 && len(parts) > 0 { ext = append(ext, parts[0]) }
	return ext
}

// }}}

// closeRing returns a copy of the ring with the first vertex repeated at the end, or nil if
// there are fewer than three distinct vertices.
func closeRing(r orb.Ring) orb.Ring {
	ring := append(orb.Ring{}, r...)
	if len(ring) > 0 && !ring[0].Equal(ring[len(ring)-1]) {
		ring = append(ring, ring[0])
	}
	if len(ring) < 4 { return nil }
	return ring
}

// Shoelace; positive for counter-clockwise rings.
func signedArea(r orb.Ring) float64 {
	a := 0.0
	for i:=0; i<len(r); i++ {
		j := (i+1) % len(r)
		a += r[i][0]*r[j][1] - r[j][0]*r[i][1]
	}
	return a / 2.0
}

func propString(p geojson.Properties, names []string) string {
	for _,name := range names {
		if v,exists := p[name]; exists && v != nil {
			return strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return ""
}

func propFloat(p geojson.Properties, names []string) float64 {
	for _,name := range names {
		switch v := p[name].(type) {
		case float64:
			return v
		case string:
			return parseAltitude(v)
		}
	}
	return 0
}

// FAA data sometimes says SFC/GND rather than 0.
func parseAltitude(s string) float64 {
	f,err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil { return 0 }
	return f
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
