package gen

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/schema"
)

func render(t *testing.T, c *Config, table *schema.Table) string {
	t.Helper()
	g, err := NewGraph(c, table)
	require.NoError(t, err)
	require.Len(t, g.Nodes, 1)
	src, err := NewBuilder(g).Render(g.Nodes[0])
	require.NoError(t, err)
	return string(src)
}

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "record.go", src, parser.ParseComments)
	require.NoError(t, err, src)
	return f
}

func funcs(f *ast.File) []string {
	var names []string
	for _, d := range f.Decls {
		if fd, ok := d.(*ast.FuncDecl); ok {
			names = append(names, fd.Name.Name)
		}
	}
	return names
}

func TestBuilderRenderAuthor(t *testing.T) {
	t.Parallel()
	src := render(t, newTestConfig(t), authorTable())
	f := parse(t, src)

	assert.True(t, strings.HasPrefix(src, "// Code generated by recordgen. DO NOT EDIT.\n"))
	assert.Equal(t, "models", f.Name.Name)
	assert.Equal(t, []string{
		"NewAuthor",
		"ID", "SetID",
		"FirstName", "SetFirstName",
		"LastName", "SetLastName",
		"Email", "SetEmail", "ClearEmail",
		"Age", "SetAge", "ClearAge",
		"Copy",
	}, funcs(f))

	assert.Contains(t, src, `"github.com/syssam/recordgen"`)
	assert.Contains(t, src, `"github.com/syssam/recordgen/schema/field"`)
	assert.NotContains(t, src, `"github.com/google/uuid"`)
	assert.Regexp(t, `AuthorTable\s+= "author"`, src)
	assert.Regexp(t, `AuthorColumnFirstName\s+= "first_name"`, src)
	assert.Regexp(t, `Name:\s+"FirstName"`, src)
	assert.Regexp(t, `Name:\s+"Id"`, src)
	assert.Regexp(t, `DefaultFormat:\s+"text"`, src)
	assert.NotContains(t, src, "Formats:")

	assert.Contains(t, src, "type Author struct {\n\trecordgen.Record\n}")
	assert.Contains(t, src, "return &Author{Record: recordgen.NewRecord(authorDescriptor)}")
	assert.Contains(t, src, "func (m *Author) FirstName() (string, bool) {\n\tv := m.Value(1)\n\treturn v.Str(), !v.IsNull()\n}")
	assert.Contains(t, src, "func (m *Author) SetAge(v int64) *Author {\n\tm.SetValue(4, field.Int(v))\n\treturn m\n}")
	assert.Contains(t, src, "func (m *Author) ClearEmail() *Author {\n\tm.SetValue(3, field.Null(field.TypeString))\n\treturn m\n}")
	assert.NotContains(t, src, "ClearFirstName")
	assert.Contains(t, src, "m.CopyInto(&c.Record)")
	assert.Contains(t, src, `except its primary key "id"`)
	assert.Contains(t, src, "var _ fmt.Stringer = (*Author)(nil)")
}

func TestBuilderRenderDefaults(t *testing.T) {
	t.Parallel()
	src := render(t, newTestConfig(t), publisherTable())
	parse(t, src)
	assert.Regexp(t, `Default:\s+field\.String\("Penguin"\)`, src)
	assert.Regexp(t, `DefaultFormat:\s+"xml"`, src)

	src = render(t, newTestConfig(t), schema.NewTable("item", []*schema.Column{
		schema.NewColumn("id", "UUID", schema.Default("7b6a1c1e-5e8f-4c9b-9d1a-0a2b3c4d5e6f")),
		schema.NewColumn("count", "INTEGER", schema.NotNull(), schema.Default("-4")),
		schema.NewColumn("active", "BOOLEAN", schema.Default("true")),
		schema.NewColumn("ratio", "REAL", schema.Default("NaN")),
		schema.NewColumn("at", "TIMESTAMP"),
	}))
	parse(t, src)
	assert.Regexp(t, `Default:\s+field\.MustParse\(field\.TypeUUID, "7b6a1c1e-5e8f-4c9b-9d1a-0a2b3c4d5e6f"\)`, src)
	assert.Regexp(t, `Default:\s+field\.Int\(-4\)`, src)
	assert.Regexp(t, `Default:\s+field\.Bool\(true\)`, src)
	assert.Regexp(t, `Default:\s+field\.MustParse\(field\.TypeFloat, "NaN"\)`, src)
	assert.Contains(t, src, `"github.com/google/uuid"`)
	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, "func (m *Item) SetID(v uuid.UUID) *Item {")
	assert.Contains(t, src, "func (m *Item) At() (time.Time, bool) {")
}

func TestBuilderRenderComments(t *testing.T) {
	t.Parallel()
	src := render(t, newTestConfig(t, WithHeader("Code generated by hand. DO NOT EDIT.")), authorTable(schema.TableComment("Author writes books.")))
	assert.True(t, strings.HasPrefix(src, "// Code generated by hand. DO NOT EDIT.\n"))
	assert.Contains(t, src, "// Author writes books.\n//\n// Author is the record of the \"author\" table.\ntype Author struct")

	src = render(t, newTestConfig(t), bookTable())
	assert.Contains(t, src, `// Isbn returns the value of the "isbn" column (ISBN-13) and whether it is set.`)
}

func TestBuilderCustomFormats(t *testing.T) {
	t.Parallel()
	c := newTestConfig(t)
	c.FormatsRef = &FuncRef{Path: "example.com/bookstore/formats", Name: "Registry"}
	src := render(t, c, authorTable())
	assert.Regexp(t, `Formats:\s+formats\.Registry\(\)`, src)
	assert.Contains(t, src, `"example.com/bookstore/formats"`)
}

// TestBuilderFieldOrder verifies that accessors address the columns by
// their declared position.
func TestBuilderFieldOrder(t *testing.T) {
	t.Parallel()
	c := newTestConfig(t)
	a := render(t, c, authorTable())
	b := render(t, c, authorTable().Reorder("email", "age"))
	assert.NotEqual(t, a, b)
	assert.Contains(t, b, "func (m *Author) Email() (string, bool) {\n\tv := m.Value(0)")
	assert.Contains(t, b, "func (m *Author) ID() (int64, bool) {\n\tv := m.Value(2)")
	assert.Less(t, strings.Index(b, "AuthorColumnEmail,"), strings.Index(b, "AuthorColumnID,"))
}

func TestBuilderGenerate(t *testing.T) {
	t.Parallel()
	c := newTestConfig(t, WithWorkers(2))
	c.Target = filepath.Join(c.Target, "nested", "models")
	g, err := NewGraph(c, authorTable(), bookTable(), publisherTable())
	require.NoError(t, err)

	b := NewBuilder(g)
	require.NoError(t, b.Generate(context.Background()))
	m := b.Metrics()
	assert.Equal(t, 3, m.FilesGenerated)
	assert.Zero(t, m.FilesSkipped)
	assert.Positive(t, m.TotalBytes)

	for _, name := range []string{"author.go", "book.go", "publisher.go"} {
		content, err := os.ReadFile(filepath.Join(c.Target, name))
		require.NoError(t, err)
		parse(t, string(content))
	}

	t.Run("unchanged files are skipped", func(t *testing.T) {
		path := filepath.Join(c.Target, "author.go")
		before, err := os.Stat(path)
		require.NoError(t, err)

		b := NewBuilder(g)
		require.NoError(t, b.Generate(context.Background()))
		assert.Equal(t, 3, b.Metrics().FilesSkipped)
		assert.Zero(t, b.Metrics().FilesGenerated)

		after, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime())
	})

	t.Run("output is deterministic", func(t *testing.T) {
		first, err := NewBuilder(g).Render(g.Nodes[1])
		require.NoError(t, err)
		for range 5 {
			again, err := NewBuilder(g).Render(g.Nodes[1])
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}

func TestBuilderGenerateErrors(t *testing.T) {
	t.Parallel()
	c := newTestConfig(t)
	g, err := NewGraph(c, authorTable())
	require.NoError(t, err)

	t.Run("missing target", func(t *testing.T) {
		g := &Graph{Config: &Config{Package: c.Package, DefaultFormat: "text"}, Nodes: g.Nodes}
		assert.True(t, IsConfigError(NewBuilder(g).Generate(context.Background())))
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, NewBuilder(g).Generate(ctx), context.Canceled)
	})

	t.Run("unwritable target", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		cc := *c
		cc.Target = file
		err := NewBuilder(&Graph{Config: &cc, Nodes: g.Nodes}).Generate(context.Background())
		assert.True(t, IsGenerationError(err))
	})
}
