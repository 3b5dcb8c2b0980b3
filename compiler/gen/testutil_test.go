package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/schema"
)

func authorTable(opts ...schema.TableOption) *schema.Table {
	return schema.NewTable("author", []*schema.Column{
		schema.NewColumn("id", "INTEGER", schema.PrimaryKey(), schema.NotNull()),
		schema.NewColumn("first_name", "VARCHAR(128)", schema.NotNull()),
		schema.NewColumn("last_name", "VARCHAR(128)", schema.NotNull()),
		schema.NewColumn("email", "VARCHAR(128)"),
		schema.NewColumn("age", "INTEGER"),
	}, opts...)
}

func bookTable() *schema.Table {
	return schema.NewTable("book", []*schema.Column{
		schema.NewColumn("id", "INTEGER", schema.PrimaryKey(), schema.NotNull()),
		schema.NewColumn("title", "VARCHAR(255)", schema.NotNull()),
		schema.NewColumn("isbn", "VARCHAR(24)", schema.Comment("ISBN-13")),
		schema.NewColumn("price", "DECIMAL(10,2)", schema.Default("0")),
		schema.NewColumn("publisher_id", "INTEGER"),
		schema.NewColumn("author_id", "INTEGER"),
	})
}

func publisherTable() *schema.Table {
	return schema.NewTable("publisher", []*schema.Column{
		schema.NewColumn("id", "INTEGER", schema.PrimaryKey(), schema.NotNull()),
		schema.NewColumn("name", "VARCHAR(128)", schema.Default("Penguin")),
	}, schema.DefaultFormat("xml"))
}

func newTestConfig(t *testing.T, opts ...Option) *Config {
	t.Helper()
	c, err := NewConfig(append([]Option{
		WithPackage("example.com/bookstore/models"),
		WithTarget(t.TempDir()),
		WithDefaultFormat("text"),
	}, opts...)...)
	require.NoError(t, err)
	return c
}
