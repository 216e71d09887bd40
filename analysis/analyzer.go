// Package analysis runs the whole pipeline over one narrative: extract the facility, offset and
// altitude; resolve the facility to an airport; project the offset; and check the resulting fix
// against the airspace index.
package analysis

import(
	"fmt"
	"log/slog"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/airspace"
	"github.com/skypies/uasfix/extract"
	"github.com/skypies/uasfix/log"
	"github.com/skypies/uasfix/ref"
)

// Analyzer holds the reference data. Nothing in Analyze writes to it, so one Analyzer can serve
// any number of goroutines.
type Analyzer struct {
	Airports  *ref.AirportTable
	Airspace  *airspace.Index
	Logger    *log.Logger  // may be nil
}

func NewAnalyzer(airports *ref.AirportTable, idx *airspace.Index, l *log.Logger) *Analyzer {
	return &Analyzer{Airports:airports, Airspace:idx, Logger:l}
}

func (a *Analyzer)String() string {
	na,np := 0,0
	if a.Airports != nil { na = a.Airports.Len() }
	if a.Airspace != nil { np = a.Airspace.Len() }
	return fmt.Sprintf("Analyzer{%d airports, %d airspace polygons}", na, np)
}

// {{{ a.Analyze

// Analyze never fails; anything it could not work out is listed in Result.Misses, and the
// corresponding fields are left nil.
func (a *Analyzer)Analyze(text string) Result {
	r := Result{Text: text, Extraction: extract.All(text)}
	e := r.Extraction

	if !e.HasHint     { r.miss(MissFacility) }
	if !e.HasBearing  { r.miss(MissBearing) }
	if !e.HasAltitude { r.miss(MissAltitude) }

	if e.HasHint {
		if m,found := a.Airports.Resolve(&e.Hint); found {
			r.Match = &m
		} else {
			r.miss(MissAirport)
		}
	}

	if r.Match != nil && e.HasBearing {
		origin := r.Match.AirportRecord.Coordinate()
		if e.HasAltitude { origin = origin.WithAltitude(float64(e.AltitudeFt)) }

		if c,ok := uasfix.Project(&origin, &e.Bearing); ok {
			fix := uasfix.NewSightingFix(c, e.Bearing, e.Hint, r.Match.AirportRecord)
			r.Fix = &fix
		}
	}
	if r.Fix == nil { r.miss(MissProjection) }

	// Only valid fixes go anywhere near the index
	if r.Fix != nil && r.Fix.IsValid() && a.Airspace != nil {
		cr := a.Airspace.Check(r.Fix.Coordinate)
		r.Containment = &cr
	}

	a.Logger.Debug("analysed", slog.String("fix", r.FixString()),
		slog.String("misses", r.MissString()))

	return r
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
