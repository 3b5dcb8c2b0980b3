package export

import (
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/syssam/recordgen/schema/field"
)

const xmlProlog = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// XMLFormat renders fields as children of a <data> root element. String
// values are wrapped in CDATA sections, bytes are base64 encoded and
// null fields are omitted. Characters that XML cannot represent, and
// invalid UTF-8, are replaced with U+FFFD.
type XMLFormat struct{}

type cdata struct {
	Value string `xml:",cdata"`
}

// Name implements Format.
func (XMLFormat) Name() string { return XML }

// Export implements Format.
func (XMLFormat) Export(w io.Writer, fields Fields) error {
	if _, err := io.WriteString(w, xmlProlog); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	root := xml.StartElement{Name: xml.Name{Local: "data"}}
	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	for _, f := range fields {
		if f.Value.IsNull() {
			continue
		}
		start := xml.StartElement{Name: xml.Name{Local: f.Name}}
		var err error
		switch f.Value.Type() {
		case field.TypeString:
			err = enc.EncodeElement(cdata{Value: xmlChars(f.Value.Str())}, start)
		case field.TypeBytes:
			err = enc.EncodeElement(f.Value.Base64(), start)
		default:
			err = enc.EncodeElement(f.Value.String(), start)
		}
		if err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// xmlChars replaces the characters outside the XML Char production.
func xmlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D,
			r >= 0x20 && r <= 0xD7FF,
			r >= 0xE000 && r <= 0xFFFD,
			r >= 0x10000 && r <= 0x10FFFF:
			return r
		}
		return utf8.RuneError
	}, s)
}
