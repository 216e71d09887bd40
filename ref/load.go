package ref

import(
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"google.golang.org/api/option"

	"github.com/skypies/uasfix"
	"github.com/skypies/uasfix/faadata"
	"github.com/skypies/uasfix/source"
)

// {{{ LoadAirports

// LoadAirports reads an FAA airport table from a CSV or XLSX file (possibly compressed, possibly
// in GCS; see package source). Any failure wraps uasfix.ErrDataLoad. The debug string has
// per-row notes about skipped rows.
func LoadAirports(ctx context.Context, uri string, opts ...option.ClientOption) (*AirportTable, string, error) {
	src,err := source.Open(ctx, uri, opts...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: airports: %v", uasfix.ErrDataLoad, err)
	}
	defer src.Close()

	var rowReader *faadata.RowReader
	switch src.Ext() {
	case ".xlsx":
		rows,err := xlsxRows(src)
		if err != nil {
			return nil, "", fmt.Errorf("%w: airports %s: %v", uasfix.ErrDataLoad, uri, err)
		}
		rowReader = faadata.NewRecordRowReader(&faadata.SliceRecordReader{Rows:rows})
	case ".csv", ".txt":
		rowReader = faadata.NewRowReader(src)
	default:
		return nil, "", fmt.Errorf("%w: airports %s: unknown format %q", uasfix.ErrDataLoad, uri,
			src.Ext())
	}

	airports := []uasfix.AirportRecord{}
	cb := func(ar uasfix.AirportRecord) error {
		airports = append(airports, ar)
		return nil
	}

	_,str,err := faadata.ReadFrom(src.Name, rowReader, cb)
	if err != nil {
		return nil, str, fmt.Errorf("%w: airports: %v", uasfix.ErrDataLoad, err)
	} else if len(airports) == 0 {
		return nil, str, fmt.Errorf("%w: airports %s: no usable rows", uasfix.ErrDataLoad, uri)
	}

	return NewAirportTable(airports), str, nil
}

// }}}
// {{{ xlsxRows

// The FAA spreadsheet has the data on its first sheet.
func xlsxRows(src *source.Source) ([][]string, error) {
	f,err := excelize.OpenReader(src)
	if err != nil { return nil, err }
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 { return nil, fmt.Errorf("no sheets") }

	return f.GetRows(sheets[0])
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
