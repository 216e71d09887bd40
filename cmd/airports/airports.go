package main

import(
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/skypies/geo"
	"github.com/skypies/util/histogram"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/ref"
)

var(
	ctx = context.Background()
	fAirports string
	fCmd      string
	fVerbose  bool
)
func init() {
	flag.StringVar(&fAirports, "airports", os.Getenv("UASFIX_AIRPORTS"), "airport table")
	flag.StringVar(&fCmd, "cmd", "stats", "what to do: {stats, resolve, lookup}")
	flag.BoolVar(&fVerbose, "v", false, "print the load notes")
	flag.Parse()
}

// {{{ pprint

func pprint(m map[string]int) string {
	str := ""
	keys := []string{}
	for k,_ := range m { keys = append(keys, k ) }
	sort.Strings(keys)
	small := 0
	for _,k := range keys {
		if m[k] < 10 {
			small += m[k]
			continue
		}
		str += fmt.Sprintf("  %-12.12s:  %5d\n", k, m[k])
	}
	if small > 0 {
		str += fmt.Sprintf("  %-12.12s:  %5d\n", "{smalls}", small)
	}
	return str
}

// }}}
// {{{ stats

func stats(at *ref.AirportTable) {
	states := map[string]int{}
	types := map[string]int{}
	h := histogram.NewSet(1000)
	var bbox *geo.LatlongBox

	for _,ar := range at.Airports() {
		types[strings.ToUpper(ar.Type)]++
		if !ar.IsAirport() { continue }
		states[strings.ToUpper(ar.State)]++
		h.RecordValue("name-tokens", int64(len(strings.Fields(ar.Name))))

		if bbox == nil {
			tmp := ar.Latlong.BoxTo(ar.Latlong)
			bbox = &tmp
		}
		bbox.Enclose(ar.Latlong)
	}

	fmt.Printf("%s\n", at)
	if bbox != nil {
		wd,ht := bbox.NW().DistKM(bbox.NE), bbox.NW().DistKM(bbox.SW)
		fmt.Printf("Airport area (%.1fKM x %.1fKM) : %s\n", wd, ht, *bbox)
	}
	fmt.Printf("Facility types:-\n%s", pprint(types))
	fmt.Printf("Airports per state:-\n%s", pprint(states))
	fmt.Printf("Stats:-\n%s", h)
}

// }}}
// {{{ resolve

// resolve "Nashville TN" ...
func resolve(at *ref.AirportTable, args []string) {
	for _,arg := range args {
		fields := strings.Fields(arg)
		if len(fields) < 2 {
			log.Fatalf("resolve '%s': want 'City ST'\n", arg)
		}
		hint := uasfix.FacilityHint{
			City: strings.Join(fields[:len(fields)-1], " "),
			State: fields[len(fields)-1],
		}
		if m,found := at.Resolve(&hint); found {
			fmt.Printf("%-24s => %s (score %d, %d candidates)\n", hint, m.AirportRecord, m.Score,
				m.NCandidates)
		} else {
			fmt.Printf("%-24s => no airports in %s\n", hint, hint.State)
		}
	}
}

// }}}

func main() {
	at,str,err := ref.LoadAirports(ctx, fAirports)
	if err != nil {
		log.Fatalf("load: %v\n", err)
	}
	if fVerbose { fmt.Print(str) }

	switch fCmd {
	case "stats": stats(at)
	case "resolve": resolve(at, flag.Args())
	case "lookup":
		for _,code := range flag.Args() {
			if ar,exists := at.LookupCode(code); exists {
				fmt.Printf("%s\n", ar)
			} else {
				fmt.Printf("%s: not found\n", code)
			}
		}
	default: log.Fatalf("command '%s' not known", fCmd)
	}
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
