package gen

import (
	"context"
	"errors"
	"fmt"

	"github.com/syssam/recordgen/schema"
)

// Graph holds the resolved classes of one generated package.
type Graph struct {
	*Config
	// Nodes are the classes that resolved, in table order.
	Nodes []*Type
}

// NewGraph resolves the given tables. A *ConfigError aborts everything and
// returns a nil graph. Tables that fail to resolve are skipped: their
// *SchemaError values are returned joined, together with a graph holding
// the other tables.
func NewGraph(c *Config, tables ...*schema.Table) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	var (
		g      = &Graph{Config: c}
		errs   []error
		idents = make(map[string]string)
	)
	for _, t := range tables {
		typ, err := NewType(c, t)
		if err == nil {
			err = checkIdents(typ, idents)
		}
		if err != nil {
			c.logger().Warn("skipping table", "table", tableName(t), "error", err)
			errs = append(errs, err)
			continue
		}
		for _, id := range typ.Idents() {
			idents[id] = typ.Table
		}
		g.Nodes = append(g.Nodes, typ)
	}
	return g, errors.Join(errs...)
}

// checkIdents checks that the package level identifiers of t are not
// declared by an already resolved table.
func checkIdents(t *Type, idents map[string]string) error {
	for _, id := range t.Idents() {
		if other, ok := idents[id]; ok {
			return NewSchemaError(t.Table, "", fmt.Sprintf("identifier %s is already declared by table %s", id, other), nil)
		}
	}
	return nil
}

func tableName(t *schema.Table) string {
	if t == nil {
		return ""
	}
	return t.Name()
}

// Gen generates the records of the graph, running the configured hooks
// around the default generator.
func (g *Graph) Gen(ctx context.Context) error {
	var gen Generator = defaultGenerator
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen.Generate(ctx, g)
}

// Type returns the class generated for the named table.
func (g *Graph) Type(table string) (*Type, bool) {
	for _, t := range g.Nodes {
		if t.Table == table {
			return t, true
		}
	}
	return nil, false
}

// Generate resolves the tables and writes a file per class. Tables that
// fail to resolve are reported, joined with any generation error, while
// the others are still written.
func Generate(ctx context.Context, c *Config, tables ...*schema.Table) error {
	g, err := NewGraph(c, tables...)
	if g == nil {
		return err
	}
	return errors.Join(err, g.Gen(ctx))
}
