package gen

import (
	"context"
	"os"
	"runtime"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Generator writes the outputs of a dialect for a graph. Files are rendered
// and written in parallel.
type Generator struct {
	graph   *Graph
	workers int
	outDir  string

	dialect Dialect
	// Optional interface implementation detected at runtime
	typeGen TypeGenerator

	writer *fileWriter
}

// NewGenerator creates a new generator writing to outDir. An empty outDir
// falls back to the configured target.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	generator := gen.NewGenerator(graph, "./models").
//		WithDialect(text.NewDialect()).
//		WithWorkers(4)
//	err := generator.Generate(ctx)
func NewGenerator(g *Graph, outDir string) *Generator {
	if outDir == "" {
		outDir = g.Output().Target
	}
	return &Generator{
		graph:   g,
		workers: runtime.GOMAXPROCS(0),
		outDir:  outDir,
	}
}

// WithWorkers sets the number of parallel workers.
func (g *Generator) WithWorkers(n int) *Generator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithDialect sets the output dialect.
// Per-type generation is detected via TypeGenerator.
func (g *Generator) WithDialect(d Dialect) *Generator {
	if d != nil {
		g.dialect = d
		if tg, ok := d.(TypeGenerator); ok {
			g.typeGen = tg
		} else {
			g.typeGen = nil
		}
	}
	return g
}

// Generate renders and writes all files of the dialect.
// Returns an error if no dialect has been set via WithDialect(), or if two
// outputs would be written to the same path; nothing is written then.
func (g *Generator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewOptionError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if g.outDir == "" {
		return NewOptionError("Target", nil, "no output directory")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError(g.dialect.Name(), g.outDir, "create output directory", err)
	}
	w := newFileWriter(g.dialect.Name(), g.outDir)
	g.writer = w
	log := g.graph.logger().With("run", uuid.NewString(), "dialect", g.dialect.Name())
	log.Info("generating", "types", len(g.graph.Nodes), "target", g.outDir)

	var outputs []*Output
	if g.typeGen != nil {
		for _, t := range g.graph.Nodes {
			if o := g.typeGen.GenType(t); o != nil {
				outputs = append(outputs, o)
			}
		}
	}
	outputs = append(outputs, g.dialect.GenGraph(g.graph)...)
	if err := w.checkPaths(outputs); err != nil {
		return err
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, o := range outputs {
		errg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			path, err := w.write(o)
			if err != nil {
				return err
			}
			log.Debug("wrote file", "path", path)
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	stats := w.stats()
	log.Info("generated", "files", stats.FilesGenerated, "bytes", stats.TotalBytes)
	return nil
}

// Files returns the paths written by the last Generate call, sorted.
func (g *Generator) Files() []string {
	if g.writer == nil {
		return nil
	}
	files := g.writer.files()
	slices.Sort(files)
	return files
}

// Metrics returns the metrics of the last Generate call.
func (g *Generator) Metrics() WriterMetrics {
	if g.writer == nil {
		return WriterMetrics{}
	}
	return g.writer.stats()
}
