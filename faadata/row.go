package faadata

import(
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/skypies/geo"
	"github.com/skypies/uasfix"
)

// {{{ notes

/* The FAA airport reference data ("all-airport-data") comes as a spreadsheet, sometimes zipped,
   sometimes exported as CSV. The headers move around between dumps, so we turn each row into a
   map from (lowercased) header name to value.

The columns we care about look like this:

  Loc Id, Name, City, State Id, Facility Type, ..., ARP Latitude DD, ARP Longitude DD

E.g.:

  BNA, NASHVILLE INTL, NASHVILLE, TN, AIRPORT, ..., 36.1245, -86.6782

Hand-built tables tend to use snake_case names instead (faa_code, latitude, longitude, state),
so each field has a list of aliases.

 */

// }}}

// ErrLongRow is returned for a row with more values than there are headers. The reader can carry
// on past it.
var ErrLongRow = errors.New("header/val mismatch")

// RecordReader is satisfied by *csv.Reader; spreadsheet rows get wrapped to look the same.
type RecordReader interface {
	Read() ([]string, error)
}

type RowReader struct {
	rdr        RecordReader
	headers  []string
}

func NewRowReader(ioreader io.Reader) *RowReader {
	csvreader := csv.NewReader(ioreader)
	csvreader.FieldsPerRecord = -1 // we check lengths ourselves
	csvreader.TrimLeadingSpace = true
	return NewRecordRowReader(csvreader)
}

func NewRecordRowReader(rr RecordReader) *RowReader {
	rdr := RowReader{rdr: rr}
	headers,_ := rr.Read() // Discard err, we'll get it when we try to get next row
	for i,h := range headers {
		if i == 0 { h = strings.TrimPrefix(h, "\ufeff") }
		rdr.headers = append(rdr.headers, normalizeHeader(h))
	}
	return &rdr
}

func (r *RowReader)Headers() []string { return r.headers }

// {{{ rdr.Read()

// Spreadsheet exports drop trailing empty cells, so short rows are padded out; long rows are
// an error.
func (r *RowReader)Read() (Row,error) {
	m := map[string]string{}

	vals,err := r.rdr.Read()
	if err != nil {
		return m,err
	} else if len(r.headers) == 0 {
		return m, fmt.Errorf("no headers")
	} else if len(vals) > len(r.headers) {
		return m, fmt.Errorf("%w (%d/%d)", ErrLongRow, len(r.headers), len(vals))
	}

	for i,_ := range vals {
		m[r.headers[i]] = strings.TrimSpace(vals[i])
	}

	return m,nil
}

// }}}

// SliceRecordReader serves up pre-parsed rows (e.g. from a spreadsheet), header row first.
type SliceRecordReader struct {
	Rows [][]string
	i      int
}

func (s *SliceRecordReader)Read() ([]string, error) {
	if s.i >= len(s.Rows) { return nil, io.EOF }
	s.i++
	return s.Rows[s.i-1], nil
}

type Row map[string]string

var(
	KCodeColumns  = []string{"loc id", "loc_id", "faa_code", "faa code", "ident"}
	KNameColumns  = []string{"name", "facility name", "facility_name"}
	KCityColumns  = []string{"city", "associated city"}
	KStateColumns = []string{"state id", "state_id", "state", "state code"}
	KTypeColumns  = []string{"facility type", "facility_type", "site type", "type"}
	KLatColumns   = []string{"arp latitude dd", "latitude", "lat"}
	KLongColumns  = []string{"arp longitude dd", "longitude", "long", "lon"}
)

// Get returns the value of the first of the named columns that is present in the row.
func (r Row)Get(names ...string) string {
	for _,name := range names {
		if v,exists := r[normalizeHeader(name)]; exists { return v }
	}
	return ""
}

// {{{ row.ToAirportRecord

// Rows without a usable position are an error; the caller should skip them.
func (r Row)ToAirportRecord() (uasfix.AirportRecord, error) {
	ar := uasfix.AirportRecord{
		Code:  r.Get(KCodeColumns...),
		Name:  r.Get(KNameColumns...),
		City:  r.Get(KCityColumns...),
		State: strings.ToUpper(r.Get(KStateColumns...)),
		Type:  r.Get(KTypeColumns...),
	}

	lat,err := strconv.ParseFloat(r.Get(KLatColumns...), 64)
	if err != nil {
		return ar, fmt.Errorf("%s: bad latitude: %v", ar.Code, err)
	}
	long,err := strconv.ParseFloat(r.Get(KLongColumns...), 64)
	if err != nil {
		return ar, fmt.Errorf("%s: bad longitude: %v", ar.Code, err)
	}

	ar.Latlong = geo.Latlong{Lat:lat, Long:long}
	if !ar.Coordinate().IsValid() {
		return ar, fmt.Errorf("%s: position out of range (%f,%f)", ar.Code, lat, long)
	}

	return ar, nil
}

// }}}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.Join(strings.Fields(h), " "))
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
