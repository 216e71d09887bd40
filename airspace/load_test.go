package airspace

import(
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonas-p/go-shp"

	"github.com/skypies/uasfix"
)

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"NAME": "NASHVILLE CLASS C", "CLASS": "C", "LOWER_VAL": 0, "UPPER_VAL": "4800"},
      "geometry": {"type": "Polygon", "coordinates": [[[-87.0,36.0],[-86.0,36.0],[-86.0,37.0],[-87.0,37.0]]]}
    },
    {
      "type": "Feature",
      "properties": {"airspace_name": "Twin", "min_altitude": 100, "max_altitude": 2000},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[0,0],[1,0],[1,1],[0,1],[0,0]]],
        [[[5,5],[6,5],[6,6],[5,6],[5,5]]]
      ]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "a point"},
      "geometry": {"type": "Point", "coordinates": [1,1]}
    }
  ]
}`

func TestDecodeGeoJSON(t *testing.T) {
	polys,str,err := DecodeGeoJSON([]byte(testGeoJSON))
	if err != nil { t.Fatalf("decode: %v", err) }

	if len(polys) != 3 {
		t.Fatalf("expected 3 polygons, got %d\n%s", len(polys), str)
	}

	if polys[0].Name != "NASHVILLE CLASS C" || polys[0].Class != "C" ||
		polys[0].MinAltitude != 0 || polys[0].MaxAltitude != 4800 {
		t.Errorf("bad first polygon: %s (%s)", polys[0], polys[0].Class)
	}
	if n := len(polys[0].Boundary); n != 5 {
		t.Errorf("ring was not closed; %d verts", n)
	}
	for _,ap := range polys[1:] {
		if ap.Name != "Twin" || ap.MinAltitude != 100 || ap.MaxAltitude != 2000 {
			t.Errorf("multipolygon member lost its properties: %s", ap)
		}
	}

	idx := NewIndex(polys)
	if got := idx.Contains(uasfix.NewCoordinate(5.5, 5.5)); len(got) != 1 || got[0].Name != "Twin" {
		t.Errorf("second member not indexed: %v", got)
	}
}

func TestDecodeGeoJSONBad(t *testing.T) {
	if _,_,err := DecodeGeoJSON([]byte(`{"type": "nope"`)); err == nil {
		t.Errorf("bad json did not error")
	}
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	empty := filepath.Join(dir, "empty.geojson")
	os.WriteFile(empty, []byte(`{"type":"FeatureCollection","features":[]}`), 0644)
	garbage := filepath.Join(dir, "garbage.geojson")
	os.WriteFile(garbage, []byte(`this is not json`), 0644)
	wrongExt := filepath.Join(dir, "airspace.kml")
	os.WriteFile(wrongExt, []byte(`<kml/>`), 0644)

	for _,uri := range []string{filepath.Join(dir, "missing.geojson"), empty, garbage, wrongExt} {
		if _,_,err := LoadIndex(ctx, uri); !errors.Is(err, uasfix.ErrDataLoad) {
			t.Errorf("%s: expected ErrDataLoad, got %v", uri, err)
		}
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.geojson"), []byte(testGeoJSON), 0644)
	os.WriteFile(filepath.Join(dir, "b.json"), []byte(testGeoJSON), 0644)

	os.WriteFile(filepath.Join(dir, "README.md"), []byte("FAA class airspace, 2024 cycle"), 0644)
	os.WriteFile(filepath.Join(dir, "LICENSE"), []byte("public domain"), 0644)

	idx,str,err := LoadIndex(context.Background(), dir)
	if err != nil { t.Fatalf("load: %v", err) }
	if idx.Len() != 6 {
		t.Errorf("expected 6 polygons from two files, got %d", idx.Len())
	}
	if !strings.Contains(str, "README.md: skipping") || !strings.Contains(str, "LICENSE: skipping") {
		t.Errorf("skipped files not noted:\n%s", str)
	}
}

func TestLoadShapefile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "airspace.shp")

	w,err := shp.Create(fn, shp.POLYGON)
	if err != nil { t.Fatalf("create: %v", err) }
	w.SetFields([]shp.Field{
		shp.StringField("NAME", 40),
		shp.StringField("CLASS", 4),
		shp.StringField("LOWER_VAL", 10),
		shp.StringField("UPPER_VAL", 10),
	})

	// Clockwise, as shapefiles want exterior rings
	poly := shp.NewPolyLine([][]shp.Point{{
		{X:-87.0, Y:36.0}, {X:-87.0, Y:37.0}, {X:-86.0, Y:37.0}, {X:-86.0, Y:36.0}, {X:-87.0, Y:36.0},
	}})
	w.Write(&shp.Polygon{Box:poly.Box, NumParts:poly.NumParts, NumPoints:poly.NumPoints,
		Parts:poly.Parts, Points:poly.Points})
	w.WriteAttribute(0, 0, "BNA CLASS C")
	w.WriteAttribute(0, 1, "C")
	w.WriteAttribute(0, 2, "SFC")
	w.WriteAttribute(0, 3, "4800")
	w.Close()

	polys,_,err := LoadShapefile(fn)
	if err != nil { t.Fatalf("load: %v", err) }
	if len(polys) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(polys))
	}
	if polys[0].Name != "BNA CLASS C" || polys[0].MinAltitude != 0 || polys[0].MaxAltitude != 4800 {
		t.Errorf("bad polygon: %s", polys[0])
	}

	idx := NewIndex(polys)
	if got := idx.Contains(uasfix.NewCoordinate(36.5, -86.5)); len(got) != 1 {
		t.Errorf("shapefile polygon did not contain its centre")
	}
}
