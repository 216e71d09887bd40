package main

import(
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/skypies/geo"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/extract"
)

var(
	fVerbosity int
)
	
func init() {
	flag.IntVar(&fVerbosity, "v", 0, "verbosity level")
	flag.Parse()
}

// fgeo 36.1245,-86.6782 10 SE
//  or, without an offset, just echoes the parsed position
func main() {
	if len(flag.Args()) == 0 {
		log.Fatal("usage: fgeo 36.1245,-86.6782 [10 SE]\n")
	}

	in := strings.Join(flag.Args(), " ")
	posStr,offsetStr := in, ""
	if i := strings.IndexAny(in, " \t"); i > 0 && strings.Contains(in[:i], ",") {
		posStr,offsetStr = in[:i], in[i+1:]
	}

	pos := geo.NewLatlong(posStr)
	fmt.Printf(">>>> %s\n  << (%.7f, %.7f)\n", posStr, pos.Lat, pos.Long)

	if strings.TrimSpace(offsetStr) == "" { return }

	bt,ok := extract.Bearing(offsetStr)
	if !ok {
		log.Fatalf("could not parse offset '%s'; want e.g. '10 SE'\n", offsetStr)
	}

	origin := uasfix.Coordinate{Latlong:pos}
	dest,ok := uasfix.Project(&origin, &bt)
	if !ok {
		log.Fatalf("could not project %s from %s\n", bt, origin)
	}

	brg,distKM := uasfix.Inverse(pos, dest.Latlong)
	fmt.Printf(">>>> %s (%.3fKM)\n  << (%.7f, %.7f)\n", bt, bt.DistanceKM(), dest.Lat, dest.Long)
	if fVerbosity > 0 {
		fmt.Printf("  << inverse: bearing %.2f, %.3fKM\n", brg, distKM)
		fmt.Printf("  << {pos:{lat: %.7f , lng:  %.7f}},\n", dest.Lat, dest.Long)
	}
}


// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
