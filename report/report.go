// Package report renders analysis results: a human readable summary per narrative, a batch CSV
// (in the column layout the 3-D viewer reads), and GeoJSON for maps.
package report

import(
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	"github.com/skypies/uasfix/analysis"
)

// Report accumulates results from a batch run, in the order they are added.
type Report struct {
	Name        string

	Results   []analysis.Result
	HeadersText []string
	RowsText  [][]string

	I         map[string]int
	H         histogram.Histogram  // offset from origin, in KM
	Stats     histogram.Set        // analysis time, in micros

	Log string
}

func BlankReport(name string) Report {
	return Report{
		Name: name,
		Results: []analysis.Result{},
		HeadersText: KCSVHeaders,
		RowsText: [][]string{},
		I: map[string]int{},
		H: histogram.Histogram{ValMin:0, ValMax:100, NumBuckets:20},
		Stats: histogram.NewSet(40000), // maxval, in micros; 40ms == 40000us
	}
}

func (r *Report)Infof(s string, args ...interface{}) { r.Log += fmt.Sprintf(s, args...) }

// {{{ r.Add

func (r *Report)Add(res analysis.Result, elapsed time.Duration) {
	r.I["[A] Narratives"]++
	r.Stats.RecordValue("analyse", elapsed.Nanoseconds()/1000)

	for _,m := range res.Misses {
		r.I[fmt.Sprintf("[B] Miss: %s", m)]++
	}

	if res.Located() {
		r.I["[C] Located"]++
		r.H.Add(histogram.ScalarVal(res.Fix.OffsetKM))
	}
	if res.Containment != nil {
		if res.Containment.IsInside() {
			r.I["[D] Inside airspace"]++
		} else if n := res.Containment.Nearest; n != nil && n.DistanceKM < KNearbyReportKM {
			r.I["[D] Near airspace"]++
		}
	}

	r.Results = append(r.Results, res)
	r.RowsText = append(r.RowsText, CSVRow(res))
}

// }}}
// {{{ r.MetadataTable

// MetadataTable is the counters, as sorted key/value rows.
func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}
	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] offset KM, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] offset KM, Mean"] = fmt.Sprintf("%.1f", stats.Mean)
		all["[Z] offset KM, Stddev"] = fmt.Sprintf("%.1f", stats.Stddev)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}
	return out
}

// }}}
// {{{ r.FinishSummary

func (r *Report)FinishSummary() string {
	str := fmt.Sprintf("**** %s: %d narratives\n", r.Name, len(r.Results))
	for _,row := range r.MetadataTable() {
		str += fmt.Sprintf("  %-32.32s: %s\n", row[0], row[1])
	}
	str += fmt.Sprintf("Stats (in micros):-\n%s", r.Stats)
	return str
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
