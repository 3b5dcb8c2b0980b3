package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	FilesSkipped   int // Files whose content did not change.
	TotalBytes     int64
	RenderTime     int64 // nanoseconds
	FormatTime     int64 // nanoseconds
	WriteTime      int64 // nanoseconds
}

// writer writes generated files to the target directory and
// accumulates the metrics of the run.
type writer struct {
	dir string

	mu      sync.Mutex
	metrics WriterMetrics
}

func newWriter(dir string) *writer {
	return &writer{dir: dir}
}

// write writes content to the named file. Files that already hold the
// same content are not touched, so regenerating an unchanged schema keeps
// modification times. It reports whether the file was written.
func (w *writer) write(name string, content []byte) (bool, error) {
	start := time.Now()
	path := filepath.Join(w.dir, name)
	if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, content) {
		w.mu.Lock()
		w.metrics.FilesSkipped++
		w.mu.Unlock()
		return false, nil
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return false, fmt.Errorf("write %s: %w", name, err)
	}
	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(content))
	w.metrics.WriteTime += int64(time.Since(start))
	w.mu.Unlock()
	return true, nil
}

// debug writes the unformatted source of a file that failed to format
// next to it. Errors are ignored as the caller is already failing.
func (w *writer) debug(name string, content []byte) string {
	path := filepath.Join(w.dir, name+".error")
	_ = os.WriteFile(path, content, 0o644)
	return path
}

func (w *writer) observe(render, format time.Duration) {
	w.mu.Lock()
	w.metrics.RenderTime += int64(render)
	w.metrics.FormatTime += int64(format)
	w.mu.Unlock()
}

func (w *writer) snapshot() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}
