// Package ref contains the reference lookups that analyses share: the FAA airport table.
// Tables are built once, and are read-only afterwards; they are safe for concurrent use.
package ref

import(
	"fmt"
	"strings"

	"github.com/skypies/uasfix"
)

type AirportTable struct {
	airports []uasfix.AirportRecord
	byCode     map[string]int
}

func NewAirportTable(airports []uasfix.AirportRecord) *AirportTable {
	at := AirportTable{
		airports: append([]uasfix.AirportRecord{}, airports...),
		byCode: map[string]int{},
	}
	for i,ar := range at.airports {
		code := strings.ToUpper(ar.Code)
		if _,exists := at.byCode[code]; !exists && code != "" { at.byCode[code] = i }
	}
	return &at
}

func (at *AirportTable)String() string {
	return fmt.Sprintf("--- airport table (%d entries) ---", len(at.airports))
}

func (at *AirportTable)Len() int { return len(at.airports) }

// Airports returns a copy of the table, in load order.
func (at *AirportTable)Airports() []uasfix.AirportRecord {
	return append([]uasfix.AirportRecord{}, at.airports...)
}

func (at *AirportTable)LookupCode(code string) (uasfix.AirportRecord, bool) {
	if i,exists := at.byCode[strings.ToUpper(strings.TrimSpace(code))]; exists {
		return at.airports[i], true
	}
	return uasfix.AirportRecord{}, false
}

// Match is the outcome of resolving a facility hint.
type Match struct {
	uasfix.AirportRecord
	Score     int // TokenSetRatio of the hint's city against the airport name
	NCandidates int // how many airports survived the state/type filter
}

// {{{ at.Resolve

// Resolve picks the airport a facility hint most likely refers to: among the airports in the
// hint's state (whose facility type contains AIRPORT), the one whose name best matches the
// city. Ties go to the earlier airport in the table. There is no minimum score, so a poor
// match is still a match. It returns false for a nil hint, or when no airport passes the filter.
func (at *AirportTable)Resolve(hint *uasfix.FacilityHint) (Match, bool) {
	if at == nil || hint == nil { return Match{}, false }

	state := strings.TrimSpace(hint.State)
	best := Match{Score:-1}

	for _,ar := range at.airports {
		if !strings.EqualFold(ar.State, state) || !ar.IsAirport() { continue }
		best.NCandidates++

		if score := TokenSetRatio(hint.City, ar.Name); score > best.Score {
			best.AirportRecord = ar
			best.Score = score
		}
	}

	if best.NCandidates == 0 { return Match{}, false }
	return best, true
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
