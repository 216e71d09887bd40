package report

import(
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/skypies/uasfix/analysis"
)

// The first four columns are what the 3-D viewer reads.
var KCSVHeaders = []string{
	"summary", "drone_latitude", "drone_longitude", "drone_altitude_ft",
	"facility", "origin_code", "bearing", "airspaces", "nearest_airspace", "nearest_km", "misses",
}

// {{{ CSVRow

// CSVRow flattens a result; unknown values are empty cells.
func CSVRow(res analysis.Result) []string {
	row := make([]string, len(KCSVHeaders))
	row[0] = res.Text

	if res.Fix != nil {
		row[1] = fmt.Sprintf("%.6f", res.Fix.Lat)
		row[2] = fmt.Sprintf("%.6f", res.Fix.Long)
		if res.Fix.HasAltitude { row[3] = fmt.Sprintf("%.0f", res.Fix.AltitudeFt) }
	}

	if res.Extraction.HasHint { row[4] = res.Extraction.Hint.String() }
	if res.Match != nil { row[5] = res.Match.Code }
	if res.Extraction.HasBearing { row[6] = res.Extraction.Bearing.String() }

	if cr := res.Containment; cr != nil {
		names := []string{}
		for _,ap := range cr.Intersecting { names = append(names, ap.Name) }
		row[7] = strings.Join(names, ";")
		if cr.Nearest != nil {
			row[8] = cr.Nearest.Polygon.Name
			row[9] = fmt.Sprintf("%.2f", cr.Nearest.DistanceKM)
		}
	}

	row[10] = res.MissString()
	return row
}

// }}}
// {{{ r.OutputAsCSV

func (r *Report)OutputAsCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Write(r.HeadersText)
	for _,row := range r.RowsText {
		csvWriter.Write(row)
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
