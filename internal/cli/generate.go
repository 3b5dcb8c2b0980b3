package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/recordgen/compiler/gen"
	"github.com/syssam/recordgen/compiler/load"
)

// debounce is the quiet period after a schema change before regenerating.
const debounce = 100 * time.Millisecond

func newGenerateCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate record classes from a schema file",
		Long: `Generate one Go file per table of the schema file.

Tables that fail to resolve are reported and skipped, the others are still
generated; the command then exits with an error. With --watch the schema
file is regenerated on every change until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch {
				return a.watch(cmd.Context())
			}
			return a.generate(cmd.Context())
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate when the schema file changes")
	return cmd
}

// generate generates the classes of the configured schema file.
func (a *app) generate(ctx context.Context) error {
	f, err := load.ReadFile(a.cfg.Schema)
	if err != nil {
		return err
	}
	c, err := a.genConfig(f)
	if err != nil {
		return err
	}
	err = gen.Generate(ctx, c, f.Schema()...)
	if errs := gen.SchemaErrors(err); len(errs) > 0 {
		skipped := make(map[string]bool)
		for _, e := range errs {
			a.log.Error("table skipped", "table", e.Table, "column", e.Column, "error", e.Message)
			skipped[e.Table] = true
		}
		if len(skipped) >= len(f.Tables) {
			return fmt.Errorf("no table generated: %w", err)
		}
		return fmt.Errorf("%d of %d tables skipped: %w", len(skipped), len(f.Tables), err)
	}
	return err
}

// genConfig returns the generator configuration. Settings left empty
// fall back to the ones declared in the schema file.
func (a *app) genConfig(f *load.File) (*gen.Config, error) {
	pkg := a.cfg.Package
	if pkg == "" {
		pkg = f.Package
	}
	format := a.cfg.DefaultFormat
	if format == "" {
		format = f.DefaultFormat
	}
	if format == "" {
		format = DefaultFormat
	}
	opts := []gen.Option{
		gen.WithPackage(pkg),
		gen.WithTarget(a.cfg.Target),
		gen.WithDefaultFormat(format),
		gen.WithWorkers(a.cfg.Workers),
		gen.WithLogger(a.log),
	}
	if a.cfg.Header != "" {
		opts = append(opts, gen.WithHeader(a.cfg.Header))
	}
	c := &gen.Config{}
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// watch generates the classes, then regenerates them whenever the schema
// file changes, until ctx is done. Generation errors are logged.
func (a *app) watch(ctx context.Context) error {
	return a.watchWith(ctx, a.generate)
}

// watchWith is watch with the generation step given by run. It returns
// once no run is in flight.
func (a *app) watchWith(ctx context.Context, run func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace files instead of writing them,
	// so the directory is watched.
	schema, err := filepath.Abs(a.cfg.Schema)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(schema)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(schema), err)
	}

	var (
		mu       sync.Mutex
		inflight sync.WaitGroup
		timer    *time.Timer
	)
	regen := func() {
		mu.Lock()
		defer mu.Unlock()
		if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.log.Error("generation failed", "error", err)
		}
	}
	// Each scheduled run holds the wait group until it completes or its
	// timer is stopped before firing.
	stop := func() {
		if timer != nil && timer.Stop() {
			inflight.Done()
		}
	}
	defer func() {
		stop()
		inflight.Wait()
	}()

	regen()
	a.log.Info("watching schema", "file", schema)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != schema || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			stop()
			inflight.Add(1)
			timer = time.AfterFunc(debounce, func() {
				defer inflight.Done()
				if ctx.Err() != nil {
					return
				}
				a.log.Info("schema changed", "file", schema)
				regen()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.Warn("watch error", "error", err)
		}
	}
}
