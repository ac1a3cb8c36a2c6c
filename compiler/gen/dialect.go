package gen

import "io"

// Renderer writes the content of one generated file. *jen.File satisfies it.
type Renderer interface {
	Render(w io.Writer) error
}

// Output is a file produced by a dialect.
type Output struct {
	// Dir is the subdirectory relative to the target, empty for the root.
	Dir string
	// Name is the file name.
	Name string
	Renderer
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(w io.Writer) error

// Render calls f(w).
func (f RendererFunc) Render(w io.Writer) error { return f(w) }

// GraphGenerator generates graph-level files.
// It is called once per generation run.
type GraphGenerator interface {
	// GenGraph returns the files describing the whole graph.
	GenGraph(g *Graph) []*Output
}

// TypeGenerator generates per-type files.
// Each method is called once per type in the graph.
type TypeGenerator interface {
	// GenType returns the file for one type, or nil to skip it.
	GenType(t *Type) *Output
}

// Dialect is an output language for the graph. This is the minimum
// interface a dialect must implement; dialects producing one file per type
// also implement TypeGenerator, detected at runtime.
type Dialect interface {
	// Name returns the dialect name (e.g., "text", "golang").
	Name() string
	GraphGenerator
}
