package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Configuration sources.
const (
	DefaultConfigFile = "recordgen.yaml"
	EnvPrefix         = "RECORDGEN_"
)

// Defaults.
const (
	DefaultSchema = "schema.yaml"
	DefaultTarget = "models"
	DefaultFormat = "text"
)

// Config holds the settings shared by the commands.
type Config struct {
	// Schema is the path of the YAML schema file.
	Schema string `koanf:"schema"`
	// Target is the directory generated files are written to.
	Target string `koanf:"target"`
	// Package is the import path of the generated package. Empty means
	// the package declared by the schema file.
	Package string `koanf:"package"`
	// DefaultFormat is the default export format. Empty means the format
	// declared by the schema file, or "text".
	DefaultFormat string `koanf:"default_format"`
	// Workers bounds the number of files rendered in parallel.
	Workers int `koanf:"workers"`
	// Header overrides the header comment of generated files.
	Header  string `koanf:"header"`
	Verbose bool   `koanf:"verbose"`

	// File is the config file that was loaded, if any.
	File string `koanf:"-"`
}

// LoadConfig loads the configuration from defaults, the config file,
// environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]any{
		"schema":  DefaultSchema,
		"target":  DefaultTarget,
		"workers": 0,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file. An explicit file must exist.
	used := cfgFile
	if used == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			used = DefaultConfigFile
		}
	}
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment variables: RECORDGEN_DEFAULT_FORMAT -> default_format.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	return &cfg, nil
}

// newLogger returns the text logger of the commands.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
