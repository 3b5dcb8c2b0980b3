package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Builder renders the classes of a graph with jennifer and writes them,
// one file per class, in parallel.
type Builder struct {
	graph *Graph
	w     *writer
}

// NewBuilder returns a builder for the given graph.
func NewBuilder(g *Graph) *Builder {
	return &Builder{graph: g, w: newWriter(g.Target)}
}

// File returns the jennifer file of the given class.
func (b *Builder) File(t *Type) *jen.File {
	return genRecord(b.graph.Config, t)
}

// Render returns the formatted source of the given class.
func (b *Builder) Render(t *Type) ([]byte, error) {
	src, _, err := b.render(t)
	return src, err
}

func (b *Builder) render(t *Type) (src, raw []byte, err error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := b.File(t).Render(&buf); err != nil {
		return nil, nil, NewGenerationError("render", t.FileName(), "rendering failed", err)
	}
	rendered := time.Now()
	src, err = imports.Process(t.FileName(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	b.w.observe(rendered.Sub(start), time.Since(rendered))
	if err != nil {
		return nil, buf.Bytes(), NewGenerationError("format", t.FileName(), "formatting failed", err)
	}
	return src, nil, nil
}

// Generate writes the files of all classes to the target directory.
func (b *Builder) Generate(ctx context.Context) error {
	g := b.graph
	if g.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := os.MkdirAll(g.Target, 0o755); err != nil {
		return NewGenerationError("write", "", "create output directory", err)
	}
	log := g.logger()
	start := time.Now()

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers())
	for _, t := range g.Nodes {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return b.generateFile(t)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	m := b.w.snapshot()
	log.Info("generated records",
		"target", g.Target,
		"written", m.FilesGenerated,
		"unchanged", m.FilesSkipped,
		"bytes", m.TotalBytes,
		"duration", time.Since(start),
	)
	return nil
}

func (b *Builder) generateFile(t *Type) error {
	src, raw, err := b.render(t)
	if raw != nil {
		path := b.w.debug(t.FileName(), raw)
		return fmt.Errorf("%w (unformatted written to %s)", err, path)
	}
	if err != nil {
		return err
	}
	written, err := b.w.write(t.FileName(), src)
	if err != nil {
		return NewGenerationError("write", filepath.Join(b.graph.Target, t.FileName()), "writing failed", err)
	}
	b.graph.logger().Debug("record file", "class", t.Name, "file", t.FileName(), "written", written)
	return nil
}

// Metrics returns the metrics of the files generated so far.
func (b *Builder) Metrics() WriterMetrics {
	return b.w.snapshot()
}
