package export

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/syssam/recordgen/schema/field"
)

// MsgPackFormat renders fields as a MessagePack map whose keys keep the
// field order. UUIDs are encoded in their string form.
type MsgPackFormat struct{}

// Name implements Format.
func (MsgPackFormat) Name() string { return MsgPack }

// Export implements Format.
func (MsgPackFormat) Export(w io.Writer, fields Fields) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.EncodeMapLen(len(fields)); err != nil {
		return err
	}
	for _, f := range fields {
		if err := enc.EncodeString(f.Name); err != nil {
			return err
		}
		if err := encodeMsgPack(enc, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func encodeMsgPack(enc *msgpack.Encoder, v field.Value) error {
	if v.IsNull() {
		return enc.EncodeNil()
	}
	switch v.Type() {
	case field.TypeBool:
		return enc.EncodeBool(v.Bool())
	case field.TypeInt:
		return enc.EncodeInt(v.Int64())
	case field.TypeFloat:
		return enc.EncodeFloat64(v.Float64())
	case field.TypeTime:
		return enc.EncodeTime(v.Time())
	case field.TypeBytes:
		return enc.EncodeBytes(v.Bytes())
	default:
		return enc.EncodeString(v.String())
	}
}
