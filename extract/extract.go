// Package extract pulls the fixed-pattern fields out of an FAA UAS incident narrative.
//
// FAA ops summaries look like this:
//
//   PRELIM INFO FROM FAA OPS: NASHVILLE, TN/UAS INCIDENT/1205C/
//   NASHVILLE APCH ADVISED CESSNA C650, REPORTED A WHITE UAS FROM THE 10 O'CLOCK
//   POSITION WHILE NE BOUND AT 4,000 FEET 10 SE NASHVILLE. NO EVASIVE ACTION
//   REPORTED. NASHVILLE ARPT PD NOTIFIED. WOC 7-3333 DJ/ER
//
// From this we want the reporting facility (NASHVILLE, TN), the offset from it (10 SE, in
// nautical miles) and the altitude (4,000 FEET). Each extraction is independent; a failure to
// match is reported as ok==false, and never as an error.
package extract

import(
	"regexp"
	"strconv"
	"strings"

	"github.com/skypies/uasfix"
)

var(
	cityStateRegexp = regexp.MustCompile(`FROM FAA OPS:\s+([A-Z\s]+),\s+([A-Z]{2})`)

	// Longest compass points first, so that e.g. "NNE" is not read as "N". The whitespace is
	// required: local time stamps like "/1430E/" must not read as an offset.
	bearingRegexp = regexp.MustCompile(
		`\b([0-9]+(?:\.[0-9]+)?)\s+(NNE|NNW|ENE|ESE|SSE|SSW|WSW|WNW|NE|NW|SE|SW|N|E|S|W)\b`)

	altitudeRegexp = regexp.MustCompile(`([0-9,]+)\s+FEET`)
)

// Extraction holds whatever could be found in a narrative; the Has* flags say which fields are set.
type Extraction struct {
	Hint         uasfix.FacilityHint
	HasHint      bool

	Bearing      uasfix.BearingToken
	HasBearing   bool

	AltitudeFt   int
	HasAltitude  bool
}

// All runs every extraction over the text.
func All(text string) Extraction {
	e := Extraction{}
	e.Hint,e.HasHint = CityState(text)
	e.Bearing,e.HasBearing = Bearing(text)
	e.AltitudeFt,e.HasAltitude = Altitude(text)
	return e
}

// {{{ CityState

// CityState finds "FROM FAA OPS: <CITY>, <ST>". The city comes back title-cased.
func CityState(text string) (uasfix.FacilityHint, bool) {
	m := cityStateRegexp.FindStringSubmatch(strings.ToUpper(text))
	if m == nil || len(m) != 3 { return uasfix.FacilityHint{}, false }

	city := titleCase(strings.Join(strings.Fields(m[1]), " "))
	if city == "" { return uasfix.FacilityHint{}, false }

	return uasfix.FacilityHint{City:city, State:m[2]}, true
}

// }}}
// {{{ Bearing

// Bearing finds the first "<distance> <compass point>" token, e.g. "10 SE" or "2.5 NNW".
func Bearing(text string) (uasfix.BearingToken, bool) {
	m := bearingRegexp.FindStringSubmatch(strings.ToUpper(text))
	if m == nil || len(m) != 3 { return uasfix.BearingToken{}, false }

	dist,err := strconv.ParseFloat(m[1], 64)
	if err != nil { return uasfix.BearingToken{}, false }

	return uasfix.BearingToken{DistanceNM:dist, Direction:m[2]}, true
}

// }}}
// {{{ Altitude

// Altitude finds the first "<number> FEET"; thousands separators are allowed. If that first
// candidate does not parse (e.g. ", FEET") then there is no altitude; later candidates are not
// considered.
func Altitude(text string) (int, bool) {
	m := altitudeRegexp.FindStringSubmatch(strings.ToUpper(text))
	if m == nil || len(m) != 2 { return 0, false }

	alt,err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil { return 0, false }

	return alt, true
}

// }}}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i,w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
