package gen

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/recordgen/export"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithHeader("Code generated by hand. DO NOT EDIT.")(c))
		assert.Equal(t, "Code generated by hand. DO NOT EDIT.", c.header())
	})

	t.Run("empty header means default", func(t *testing.T) {
		c := &Config{Header: "existing"}
		require.NoError(t, WithHeader("")(c))
		assert.Equal(t, DefaultHeader, c.header())
	})
}

func TestWithPackage(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithPackage("example.com/bookstore/models")(c))
	assert.Equal(t, "example.com/bookstore/models", c.Package)
	assert.Equal(t, "models", c.PackageName())

	err := WithPackage("")(c)
	assert.True(t, IsConfigError(err))
}

func TestWithTarget(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithTarget("./models")(c))
	assert.Equal(t, "./models", c.Target)
	assert.True(t, IsConfigError(WithTarget("")(c)))
}

func TestWithDefaultFormat(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithDefaultFormat("xml")(c))
	assert.Equal(t, "xml", c.DefaultFormat)
	assert.True(t, IsConfigError(WithDefaultFormat("")(c)))
}

func TestWithFormats(t *testing.T) {
	reg, err := export.Builtin().With(export.FormatFunc{FormatName: "keys"})
	require.NoError(t, err)

	c := &Config{}
	require.NoError(t, WithFormats(reg, "example.com/bookstore/formats", "Registry")(c))
	assert.Same(t, reg, c.Registry())
	assert.Equal(t, &FuncRef{Path: "example.com/bookstore/formats", Name: "Registry"}, c.FormatsRef)

	assert.True(t, IsConfigError(WithFormats(nil, "p", "F")(c)))
	assert.Same(t, export.Builtin(), (&Config{}).Registry())
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	assert.Equal(t, runtime.GOMAXPROCS(0), c.workers())
	require.NoError(t, WithWorkers(3)(c))
	assert.Equal(t, 3, c.workers())

	err := WithWorkers(-1)(c)
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Workers", cfgErr.Option)
	assert.Equal(t, -1, cfgErr.Value)
}

func TestWithHooks(t *testing.T) {
	noop := func(next Generator) Generator { return next }
	c := &Config{}
	require.NoError(t, WithHooks(noop)(c))
	require.NoError(t, WithHooks(noop, noop)(c))
	assert.Len(t, c.Hooks, 3)
}

func TestWithLogger(t *testing.T) {
	c := &Config{}
	assert.NotNil(t, c.logger())
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.logger())
}

func TestApply(t *testing.T) {
	c := &Config{}
	err := c.Apply(WithPackage("a/b"), WithWorkers(-1), WithTarget(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Workers")
	assert.Equal(t, "a/b", c.Package)
	assert.Empty(t, c.Target, "options after the failing one are not applied")
}

func TestApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(WithWorkers(-1), WithTarget(""), WithPackage("a/b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Workers")
	assert.Contains(t, err.Error(), "Target")
	assert.Equal(t, "a/b", c.Package)
}

func TestNewConfig(t *testing.T) {
	c, err := NewConfig(WithPackage("a/models"), WithDefaultFormat("text"))
	require.NoError(t, err)
	assert.Equal(t, "models", c.PackageName())

	_, err = NewConfig(WithPackage(""))
	assert.True(t, IsConfigError(err))
	assert.Panics(t, func() { MustNewConfig(WithWorkers(-2)) })
}

func TestConfigValidate(t *testing.T) {
	custom, err := export.Builtin().With(export.FormatFunc{FormatName: "keys"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		config *Config
		option string
	}{
		{"valid", &Config{Package: "a/models", DefaultFormat: "text"}, ""},
		{"case insensitive format", &Config{Package: "a/models", DefaultFormat: "XML"}, ""},
		{"missing package", &Config{DefaultFormat: "text"}, "Package"},
		{"missing default format", &Config{Package: "a/models"}, "DefaultFormat"},
		{"unknown default format", &Config{Package: "a/models", DefaultFormat: "pdf"}, "DefaultFormat"},
		{"custom registry without ref", &Config{Package: "a/models", DefaultFormat: "keys", Formats: custom}, "FormatsRef"},
		{"invalid ref", &Config{Package: "a/models", DefaultFormat: "keys", Formats: custom, FormatsRef: &FuncRef{Path: "a/formats", Name: "registry"}}, "FormatsRef"},
		{"custom registry", &Config{Package: "a/models", DefaultFormat: "keys", Formats: custom, FormatsRef: &FuncRef{Path: "a/formats", Name: "Registry"}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.option == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}

	err = (&Config{Package: "a/models"}).Validate()
	assert.EqualError(t, err, `recordgen: config error for "DefaultFormat": no default export format configured`)
}

func TestOutputConfig(t *testing.T) {
	c := &Config{Package: "a/models", Target: "out", Header: "h"}
	assert.Equal(t, OutputConfig{Package: "a/models", Target: "out", Header: "h"}, c.Output())
}

func TestGenerateFunc(t *testing.T) {
	var called bool
	g := GenerateFunc(func(context.Context, *Graph) error {
		called = true
		return nil
	})
	require.NoError(t, g.Generate(context.Background(), &Graph{}))
	assert.True(t, called)
}
