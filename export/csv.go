package export

import (
	"encoding/csv"
	"io"

	"github.com/syssam/recordgen/schema/field"
)

// CSVFormat renders a header row of field names followed by one row of
// values. Null values are empty cells and bytes are base64 encoded.
type CSVFormat struct{}

// Name implements Format.
func (CSVFormat) Name() string { return CSV }

// Export implements Format.
func (CSVFormat) Export(w io.Writer, fields Fields) error {
	row := make([]string, len(fields))
	for i, f := range fields {
		switch {
		case f.Value.IsNull():
		case f.Value.Type() == field.TypeBytes:
			row[i] = f.Value.Base64()
		default:
			row[i] = f.Value.String()
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(fields.Names()); err != nil {
		return err
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
