package export

import (
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/recordgen/schema/field"
)

// YAMLFormat renders fields as a YAML mapping whose keys keep the field
// order. Null fields are kept as YAML null and bytes use !!binary.
type YAMLFormat struct{}

// Name implements Format.
func (YAMLFormat) Name() string { return YAML }

// Export implements Format.
func (YAMLFormat) Export(w io.Writer, fields Fields) error {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range fields {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			yamlValue(f.Value),
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{m}}); err != nil {
		return err
	}
	return enc.Close()
}

func yamlValue(v field.Value) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	if v.IsNull() {
		n.Tag, n.Value = "!!null", "null"
		return n
	}
	switch v.Type() {
	case field.TypeBool:
		n.Tag = "!!bool"
	case field.TypeInt:
		n.Tag = "!!int"
	case field.TypeFloat:
		n.Tag, n.Value = "!!float", yamlFloat(v.Float64())
		return n
	case field.TypeTime:
		n.Tag = "!!timestamp"
	case field.TypeBytes:
		n.Tag, n.Value = "!!binary", v.Base64()
		return n
	default:
		n.Tag = "!!str"
	}
	n.Value = v.String()
	return n
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
