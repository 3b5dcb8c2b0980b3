// Package cli provides the command-line interface of recordgen.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// app holds the state loaded before a command runs.
type app struct {
	cfg *Config
	log *slog.Logger
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		a       = &app{}
	)
	rootCmd := &cobra.Command{
		Use:   "recordgen",
		Short: "recordgen - persistent record class generator",
		Long: `recordgen generates Go record classes from table definitions.

Each class has typed accessors for its columns, tracks whether it is new,
modified or deleted, and exports itself as text, XML, JSON, YAML, CSV or
MessagePack.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, err := LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				a.log.Debug("using config file", "file", cfg.File)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./recordgen.yaml)")
	rootCmd.PersistentFlags().String("schema", "", "Path to the YAML schema file")
	rootCmd.PersistentFlags().String("target", "", "Directory generated files are written to")
	rootCmd.PersistentFlags().String("package", "", "Import path of the generated package")
	rootCmd.PersistentFlags().String("default-format", "", "Default export format of generated classes")
	rootCmd.PersistentFlags().Int("workers", 0, "Files rendered in parallel (0 for GOMAXPROCS)")
	rootCmd.PersistentFlags().String("header", "", "Header comment of generated files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newFormatsCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command until it completes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
