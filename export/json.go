package export

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/syssam/recordgen/schema/field"
)

// JSONFormat renders fields as a single JSON object whose keys keep the
// field order. Null fields are kept as JSON null.
type JSONFormat struct{}

// Name implements Format.
func (JSONFormat) Name() string { return JSON }

// Export implements Format.
func (JSONFormat) Export(w io.Writer, fields Fields) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		v, err := jsonValue(f.Value)
		if err != nil {
			return err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	_, err := w.Write(buf.Bytes())
	return err
}

func jsonValue(v field.Value) ([]byte, error) {
	if v.IsNull() {
		return []byte("null"), nil
	}
	switch v.Type() {
	case field.TypeTime, field.TypeUUID:
		return json.Marshal(v.String())
	default:
		return json.Marshal(v.Any())
	}
}
