package analysis

import(
	"fmt"
	"strings"
	"time"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/extract"
	"github.com/skypies/uasfix/ref"
)

// Miss records a stage of the pipeline that came up empty. Misses are not errors; the stages
// after it carry on with whatever is known.
type Miss int
const(
	MissFacility Miss = iota  // no "FROM FAA OPS: CITY, ST"
	MissBearing               // no "<n> <compass point>"
	MissAltitude              // no "<n> FEET"
	MissAirport               // no airport in the hint's state
	MissProjection            // no origin or bearing, so no fix
)

func (m Miss)String() string {
	switch m {
	case MissFacility:   return "facility-not-found"
	case MissBearing:    return "bearing-not-found"
	case MissAltitude:   return "altitude-not-found"
	case MissAirport:    return "airport-not-resolved"
	case MissProjection: return "location-not-determined"
	}
	return fmt.Sprintf("miss-%d", int(m))
}

// Result is everything known about one narrative. Nil pointers mean "unknown".
type Result struct {
	Text         string
	Extraction   extract.Extraction
	Match        *ref.Match
	Fix          *uasfix.SightingFix
	Containment  *uasfix.ContainmentResult  // nil whenever Fix is
	Misses       []Miss
}

func (r *Result)miss(m Miss) { r.Misses = append(r.Misses, m) }

func (r Result)HasMiss(m Miss) bool {
	for _,x := range r.Misses {
		if x == m { return true }
	}
	return false
}

// Located is true if a fix was determined.
func (r Result)Located() bool { return r.Fix != nil }

func (r Result)FixString() string {
	if r.Fix == nil { return "unknown" }
	return r.Fix.String()
}

func (r Result)MissString() string {
	s := []string{}
	for _,m := range r.Misses { s = append(s, m.String()) }
	return strings.Join(s, ",")
}

// {{{ r.String

func (r Result)String() string {
	str := fmt.Sprintf("* extraction: hint=%v(%s) bearing=%v(%s) alt=%v(%d)\n",
		r.Extraction.HasHint, r.Extraction.Hint, r.Extraction.HasBearing, r.Extraction.Bearing,
		r.Extraction.HasAltitude, r.Extraction.AltitudeFt)
	if r.Match != nil {
		str += fmt.Sprintf("* origin: %s (score %d of %d candidates)\n", r.Match.AirportRecord,
			r.Match.Score, r.Match.NCandidates)
	}
	str += fmt.Sprintf("* fix: %s\n", r.FixString())
	if r.Containment != nil {
		str += fmt.Sprintf("* airspace: %s\n", r.Containment)
	}
	if len(r.Misses) > 0 {
		str += fmt.Sprintf("* misses: %s\n", r.MissString())
	}
	return str
}

// }}}
// {{{ r.ForBigQuery

// ForBigQuery flattens the result into a row. The key should be unique per report; it doubles
// as the streaming insert ID.
func (r Result)ForBigQuery(key string, t time.Time) uasfix.SightingForBigQuery {
	row := uasfix.SightingForBigQuery{
		ReportKey: key,
		AnalysedUTC: t.UTC(),
		Summary: r.Text,
		Airspaces: []string{},
		Misses: []string{},
	}

	if r.Extraction.HasHint { row.Facility = r.Extraction.Hint.String() }
	if r.Extraction.HasBearing { row.Bearing = r.Extraction.Bearing.String() }
	if r.Match != nil {
		row.OriginCode = r.Match.Code
		row.OriginName = r.Match.Name
	}
	if r.Fix != nil {
		row.Located = true
		row.Lat,row.Long = r.Fix.Lat, r.Fix.Long
		row.HasAltitude,row.AltitudeFt = r.Fix.HasAltitude, r.Fix.AltitudeFt
	}
	if r.Containment != nil {
		for _,ap := range r.Containment.Intersecting {
			row.Airspaces = append(row.Airspaces, ap.Name)
		}
		if r.Containment.Nearest != nil {
			row.NearestName = r.Containment.Nearest.Polygon.Name
			row.NearestKM = r.Containment.Nearest.DistanceKM
		}
	}
	for _,m := range r.Misses { row.Misses = append(row.Misses, m.String()) }

	return row
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
