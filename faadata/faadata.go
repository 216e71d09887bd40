// Package faadata decodes FAA reference data dumps into uasfix model objects.
package faadata

import(
	"errors"
	"fmt"
	"io"

	"github.com/skypies/uasfix"
)

// NewAirportCallback is handed each decoded airport; returning an error aborts the read.
type NewAirportCallback func(uasfix.AirportRecord) error

// {{{ ReadFrom

// ReadFrom decodes every row, passing the airports to the callback. Rows without a position, and
// rows with too many values, are skipped (and noted in the returned debug string); any other read
// error aborts.
func ReadFrom(name string, rowReader *RowReader, cb NewAirportCallback) (int, string, error) {
	str := ""
	i := 1
	nAdded,nSkipped := 0,0

	for {
		row,err := rowReader.Read()
		if err == io.EOF { break }
		i++
		if err != nil && !errors.Is(err, ErrLongRow) {
			return nAdded,str,fmt.Errorf("%s:%d: %v", name, i, err)
		}

		ar := uasfix.AirportRecord{}
		if err == nil {
			ar,err = row.ToAirportRecord()
		}
		if err != nil {
			nSkipped++
			if nSkipped <= 10 {
				str += fmt.Sprintf("%s:%d: skipped: %v\n", name, i, err)
			}
			continue
		}

		if err := cb(ar); err != nil {
			return nAdded,str,err
		}
		nAdded++
	}

	str = fmt.Sprintf("---- %s read, %d rows, %d airports added, %d skipped\n", name, i-1,
		nAdded, nSkipped) + str

	return nAdded,str,nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
