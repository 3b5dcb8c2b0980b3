package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/schema"
	"github.com/syssam/recordgen/schema/field"
)

func TestNewType(t *testing.T) {
	c := newTestConfig(t)
	typ, err := NewType(c, authorTable())
	require.NoError(t, err)

	assert.Equal(t, "Author", typ.Name)
	assert.Equal(t, "author", typ.Table)
	assert.Equal(t, "author", typ.Label())
	assert.Equal(t, "author.go", typ.FileName())
	assert.Equal(t, "m", typ.Receiver())
	assert.Equal(t, "NewAuthor", typ.Constructor())
	assert.Equal(t, "AuthorTable", typ.TableConst())
	assert.Equal(t, "authorDescriptor", typ.DescriptorVar())
	assert.Equal(t, "text", typ.DefaultFormat)
	assert.True(t, typ.HasNullable())

	require.Len(t, typ.Fields, 5)
	id := typ.Fields[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, "ID", id.StructName)
	assert.Equal(t, "Id", id.ExportName)
	assert.Equal(t, "AuthorColumnID", id.Constant())
	assert.Equal(t, field.TypeInt, id.Type)
	assert.True(t, id.PrimaryKey)
	assert.False(t, id.Nullable)
	assert.Equal(t, []string{"ID", "SetID"}, id.Methods())

	email := typ.Fields[3]
	assert.Equal(t, 3, email.Index)
	assert.Equal(t, "Email", email.ExportName)
	assert.Equal(t, []string{"Email", "SetEmail", "ClearEmail"}, email.Methods())
	assert.Equal(t, "Str", email.ValueMethod())
	assert.Equal(t, "String", email.ValueFunc())
	assert.Nil(t, email.DefaultCode())

	pk := typ.PrimaryKey()
	require.Len(t, pk, 1)
	assert.Same(t, id, pk[0])

	f, ok := typ.FieldBy(func(f *Field) bool { return f.Name == "age" })
	require.True(t, ok)
	assert.Equal(t, "Age", f.StructName)
	_, ok = typ.FieldBy(func(f *Field) bool { return f.Name == "missing" })
	assert.False(t, ok)

	assert.Equal(t, []string{
		"Author", "NewAuthor", "AuthorTable", "AuthorColumns", "authorDescriptor",
		"AuthorColumnID", "AuthorColumnFirstName", "AuthorColumnLastName", "AuthorColumnEmail", "AuthorColumnAge",
	}, typ.Idents())
}

func TestNewTypeOverrides(t *testing.T) {
	c := newTestConfig(t)
	typ, err := NewType(c, authorTable(schema.Class("Writer"), schema.DefaultFormat("json"), schema.TableComment("Writer of books.")))
	require.NoError(t, err)
	assert.Equal(t, "Writer", typ.Name)
	assert.Equal(t, "writer.go", typ.FileName())
	assert.Equal(t, "json", typ.DefaultFormat)
	assert.Equal(t, "Writer of books.", typ.Comment)
	assert.Equal(t, "WriterColumnFirstName", typ.Fields[1].Constant())
}

func TestNewTypeDefaults(t *testing.T) {
	c := newTestConfig(t)
	typ, err := NewType(c, schema.NewTable("item", []*schema.Column{
		schema.NewColumn("name", "TEXT", schema.Default("Penguin")),
		schema.NewColumn("count", "INTEGER", schema.Default("-4")),
		schema.NewColumn("price", "REAL", schema.Default("2.5")),
		schema.NewColumn("active", "BOOLEAN", schema.Default("TRUE")),
		schema.NewColumn("created", "DATE", schema.Default("2024-05-06")),
		schema.NewColumn("note", "TEXT", schema.Default("NULL")),
	}))
	require.NoError(t, err)

	want := []string{"Penguin", "-4", "2.5", "true", "2024-05-06T00:00:00Z"}
	for i, w := range want {
		f := typ.Fields[i]
		assert.True(t, f.HasDefault, f.Name)
		assert.Equal(t, w, f.Default.String(), f.Name)
		assert.NotNil(t, f.DefaultCode(), f.Name)
	}
	assert.False(t, typ.Fields[5].HasDefault, "a null default means no default")
	assert.Nil(t, typ.Fields[5].DefaultCode())
}

func TestNewTypeErrors(t *testing.T) {
	c := newTestConfig(t)
	col := func(name string) *schema.Column { return schema.NewColumn(name, "INTEGER") }
	tests := []struct {
		name    string
		table   *schema.Table
		column  string
		message string
	}{
		{"nil table", nil, "", "nil table definition"},
		{"empty name", schema.NewTable(" ", []*schema.Column{col("id")}), "", "table name cannot be empty"},
		{"path name", schema.NewTable("../author", []*schema.Column{col("id")}), "", "path separator"},
		{"invalid class", schema.NewTable("author", []*schema.Column{col("id")}, schema.Class("author")), "", "not a valid exported Go identifier"},
		{"class conflicts with record", schema.NewTable("record", []*schema.Column{col("id")}), "", "conflicts with the embedded record"},
		{"test file", schema.NewTable("author_test", []*schema.Column{col("id")}), "", "compiled as a test file"},
		{"no columns", schema.NewTable("author", nil), "", "table has no columns"},
		{"unknown format", schema.NewTable("author", []*schema.Column{col("id")}, schema.DefaultFormat("pdf")), "", `default format "pdf" is not registered`},
		{"nil column", schema.NewTable("author", []*schema.Column{nil}), "", "nil column definition at position 0"},
		{"empty column", schema.NewTable("author", []*schema.Column{col("")}), "", "column name cannot be empty"},
		{"invalid accessor", schema.NewTable("author", []*schema.Column{col("1st")}), "1st", "not a valid Go identifier"},
		{"unsupported type", schema.NewTable("author", []*schema.Column{schema.NewColumn("shape", "GEOMETRY")}), "shape", `cannot resolve type "GEOMETRY"`},
		{"ambiguous type", schema.NewTable("author", []*schema.Column{schema.NewColumn("price", "NUMERIC")}), "price", `cannot resolve type "NUMERIC"`},
		{"invalid default", schema.NewTable("author", []*schema.Column{schema.NewColumn("age", "INTEGER", schema.Default("old"))}), "age", `invalid default value "old"`},
		{"null default on required", schema.NewTable("author", []*schema.Column{schema.NewColumn("age", "INTEGER", schema.NotNull(), schema.Default("null"))}), "age", "null default on a non-nullable column"},
		{"redeclared", schema.NewTable("author", []*schema.Column{col("id"), col("id")}), "id", "column redeclared"},
		{"record method", schema.NewTable("author", []*schema.Column{col("value")}), "value", "accessor Value conflicts with a record method"},
		{"state method", schema.NewTable("author", []*schema.Column{schema.NewColumn("is_new", "BOOLEAN")}), "is_new", "accessor IsNew conflicts with a record method"},
		{"stringer", schema.NewTable("author", []*schema.Column{schema.NewColumn("string", "TEXT")}), "string", "accessor String conflicts with a record method"},
		{"accessor collision", schema.NewTable("author", []*schema.Column{col("first_name"), col("first-name")}), "first-name", "accessor FirstName conflicts with column first_name"},
		{"clearer collision", schema.NewTable("author", []*schema.Column{col("id"), col("clear_id")}), "clear_id", "accessor ClearID conflicts with column id"},
		{"export collision", schema.NewTable("account", []*schema.Column{col("user_id"), col("userId")}), "userId", "export name UserId conflicts with column user_id"},
		{"export matches column", schema.NewTable("account", []*schema.Column{col("UserId"), col("user_id")}), "user_id", "export name UserId conflicts with column UserId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, err := NewType(c, tt.table)
			require.Error(t, err)
			assert.Nil(t, typ)
			errs := SchemaErrors(err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.column, errs[0].Column)
			assert.Contains(t, errs[0].Error(), tt.message)
			assert.True(t, errors.Is(err, ErrInvalidSchema))
		})
	}
}

func TestNewTypeCollectsFieldErrors(t *testing.T) {
	c := newTestConfig(t)
	_, err := NewType(c, schema.NewTable("author", []*schema.Column{
		schema.NewColumn("shape", "GEOMETRY"),
		schema.NewColumn("id", "INTEGER"),
		schema.NewColumn("price", "NUMERIC"),
	}))
	errs := SchemaErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "shape", errs[0].Column)
	assert.Equal(t, "price", errs[1].Column)
	assert.True(t, errors.Is(err, field.ErrUnsupportedType))
	assert.True(t, errors.Is(err, field.ErrAmbiguousType))
}

func TestFieldGoType(t *testing.T) {
	c := newTestConfig(t)
	typ, err := NewType(c, schema.NewTable("all", []*schema.Column{
		schema.NewColumn("b", "BOOLEAN"),
		schema.NewColumn("i", "BIGINT"),
		schema.NewColumn("f", "DOUBLE"),
		schema.NewColumn("s", "TEXT"),
		schema.NewColumn("t", "TIMESTAMP"),
		schema.NewColumn("u", "UUID"),
		schema.NewColumn("y", "BLOB"),
	}))
	require.NoError(t, err)
	want := []struct{ method, fn string }{
		{"Bool", "Bool"}, {"Int64", "Int"}, {"Float64", "Float"}, {"Str", "String"},
		{"Time", "Time"}, {"UUID", "UUID"}, {"Bytes", "Bytes"},
	}
	for i, w := range want {
		f := typ.Fields[i]
		assert.Equal(t, w.method, f.ValueMethod(), f.Name)
		assert.Equal(t, w.fn, f.ValueFunc(), f.Name)
		assert.NotNil(t, f.GoType(), f.Name)
	}
}
