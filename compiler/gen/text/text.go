// Package text implements the plain text dialect: every class declaration
// as produced by gen.Coder, concatenated into a single file.
package text

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/syssam/coder/compiler/gen"
)

// FileName is the name of the generated file.
const FileName = "models.txt"

// Dialect renders the graph as indented class blocks.
type Dialect struct {
	indent string
}

// NewDialect returns the text dialect indenting bodies by four spaces.
func NewDialect() *Dialect {
	return &Dialect{indent: "    "}
}

// Name returns "text".
func (*Dialect) Name() string { return "text" }

// GenGraph returns the single models file.
func (d *Dialect) GenGraph(g *gen.Graph) []*gen.Output {
	header := g.Output().Header
	return []*gen.Output{{
		Name: FileName,
		Renderer: gen.RendererFunc(func(w io.Writer) error {
			return d.Write(w, header, g.Coders())
		}),
	}}
}

// Write writes the header as comment lines followed by one block per coder,
// separated by blank lines.
func (d *Dialect) Write(w io.Writer, header string, coders iter.Seq[*gen.Coder]) error {
	bw := bufio.NewWriter(w)
	if header != "" {
		for _, l := range strings.Split(header, "\n") {
			bw.WriteString("# ")
			bw.WriteString(l)
			bw.WriteByte('\n')
		}
	}
	first := true
	for c := range coders {
		if !first || header != "" {
			bw.WriteByte('\n')
		}
		first = false
		bw.WriteString(c.Header())
		bw.WriteByte('\n')
		for l := range c.Lines() {
			bw.WriteString(d.indent)
			bw.WriteString(l)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
