package main

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/skypies/geo"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/airspace"
)

var(
	fAirspace  string
	fList      bool
	fAltitude  float64
)

func init() {
	flag.StringVar(&fAirspace, "airspace", os.Getenv("UASFIX_AIRSPACE"), "airspace polygons")
	flag.BoolVar(&fList, "list", false, "list every polygon")
	flag.Float64Var(&fAltitude, "alt", -1, "altitude (ft) of the points, if known")
	flag.Parse()
}

// airspace -airspace airspaces.geojson 36.0068,-86.5328 41.97,-87.90
func main() {
	ctx,cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	idx,str,err := airspace.LoadIndex(ctx, fAirspace)
	if err != nil {
		log.Fatalf("airspace.LoadIndex error: %v\n", err)
	}
	log.Printf("Airspace :-\n%s", str)

	if fList {
		for i,ap := range idx.Polygons() {
			ctr := ap.Centroid()
			fmt.Printf("[%3d] %-40s class:%-2s centroid:(%.4f,%.4f)\n", i, ap, ap.Class, ctr[1], ctr[0])
		}
	}

	for _,arg := range flag.Args() {
		c := uasfix.Coordinate{Latlong:geo.NewLatlong(arg)}
		if fAltitude >= 0 { c = c.WithAltitude(fAltitude) }
		if !c.IsValid() {
			fmt.Printf("%s: not a valid position\n", arg)
			continue
		}

		cr := idx.Check(c)
		fmt.Printf("%s: %s\n", c, cr)
		for _,ap := range cr.Intersecting {
			if c.HasAltitude && !ap.CoversAltitude(c.AltitudeFt) {
				fmt.Printf("  (note: %.0fft is outside the %s band)\n", c.AltitudeFt, ap.Name)
			}
		}
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
