package uasfix

import(
	"fmt"
	"strings"

	"github.com/skypies/geo"
)

// FacilityHint is the reporting facility named in the narrative ("NASHVILLE, TN"). It is only
// a hint; the airport resolver decides which airport it refers to.
type FacilityHint struct {
	City   string
	State  string // two-letter code
}

func (fh FacilityHint)String() string { return fh.City + " " + fh.State }

// AirportRecord is one row of the FAA airport reference table.
type AirportRecord struct {
	Code   string // FAA location id, e.g. BNA
	Name   string // facility name, e.g. NASHVILLE INTL
	City   string
	State  string
	Type   string // facility type; only those containing AIRPORT take part in resolution

	geo.Latlong
}

func (ar AirportRecord)String() string {
	return fmt.Sprintf("%s [%s] %s, %s (%.4f,%.4f)", ar.Code, ar.Type, ar.Name, ar.State,
		ar.Lat, ar.Long)
}

func (ar AirportRecord)IsAirport() bool {
	return strings.Contains(strings.ToUpper(ar.Type), "AIRPORT")
}

// Coordinate returns the airport reference point, without altitude.
func (ar AirportRecord)Coordinate() Coordinate {
	return Coordinate{Latlong: ar.Latlong}
}
