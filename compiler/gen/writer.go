package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/tools/imports"
)

// fileWriter renders outputs into a directory and keeps track of what it
// wrote. It is safe for concurrent use.
type fileWriter struct {
	dialect string
	outDir  string

	mu      sync.Mutex
	written []string
	metrics WriterMetrics
}

// WriterMetrics tracks the files written by a generation run.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

func newFileWriter(dialect, outDir string) *fileWriter {
	return &fileWriter{dialect: dialect, outDir: outDir}
}

// write renders the output in memory and writes it, so a failing renderer
// never leaves a partial file behind. Go sources are passed through
// goimports first.
func (w *fileWriter) write(o *Output) (string, error) {
	path := w.path(o)
	dir := filepath.Dir(path)

	// 1. Render
	var buf bytes.Buffer
	if err := o.Render(&buf); err != nil {
		return "", NewGenerationError(w.dialect, path, "render", err)
	}
	content := buf.Bytes()

	// 2. Format
	if strings.HasSuffix(o.Name, ".go") {
		formatted, err := imports.Process(path, content, nil)
		if err != nil {
			// Keep the unformatted source next to the target for debugging.
			debugPath := path + ".error"
			_ = os.MkdirAll(dir, 0o755)
			_ = os.WriteFile(debugPath, content, 0o644)
			return "", NewGenerationError(w.dialect, path, "format (unformatted written to "+debugPath+")", err)
		}
		content = formatted
	}

	// 3. Write
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", NewGenerationError(w.dialect, path, "create directory", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", NewGenerationError(w.dialect, path, "write", err)
	}

	w.mu.Lock()
	w.written = append(w.written, path)
	w.metrics.FilesGenerated++
	w.metrics.TotalBytes += int64(len(content))
	w.mu.Unlock()
	return path, nil
}

// path returns the file the output is written to.
func (w *fileWriter) path(o *Output) string {
	return filepath.Join(w.outDir, o.Dir, o.Name)
}

// checkPaths fails on two outputs writing the same file. Paths are compared
// case-insensitively so that no output overwrites another on
// case-insensitive file systems.
func (w *fileWriter) checkPaths(outputs []*Output) error {
	seen := make(map[string]bool, len(outputs))
	for _, o := range outputs {
		path := w.path(o)
		key := strings.ToLower(path)
		if seen[key] {
			return NewGenerationError(w.dialect, path, "duplicate output path", nil)
		}
		seen[key] = true
	}
	return nil
}

func (w *fileWriter) files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.written...)
}

func (w *fileWriter) stats() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}
