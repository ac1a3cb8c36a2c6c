package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/syssam/coder/compiler/gen"
	"github.com/syssam/coder/compiler/gen/text"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var namesOnly, asTable bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the eligible classes in generation order",
		Long: `Print every eligible class in generation order together with the lines
of its class declaration. Nothing is written to disk.`,
		Example: `  # Show the class declarations
  coder list

  # Show only the class names
  coder list --names

  # Summarize packages, parents and feature counts
  coder list --table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := NewCommandContext(cmd)
			graph, err := c.LoadGraph()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asTable {
				renderTable(out, graph)
				return nil
			}
			if namesOnly {
				for _, t := range graph.Nodes {
					_, _ = fmt.Fprintln(out, t.Name)
				}
				return nil
			}
			return text.NewDialect().Write(out, "", graph.Coders())
		},
	}
	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print class names only")
	cmd.Flags().BoolVar(&asTable, "table", false, "Print a summary table")
	return cmd
}

func renderTable(w io.Writer, g *gen.Graph) {
	if len(g.Nodes) == 0 {
		_, _ = fmt.Fprintln(w, "(0 classes)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Class", "Package", "Parents", "Attributes", "Enumerations", "Relations"})
	for i, n := range g.Nodes {
		parents := make([]string, len(n.Parents))
		for j, p := range n.Parents {
			parents[j] = p.Name
		}
		t.AppendRow(table.Row{
			i + 1,
			n.Name,
			n.Package,
			strings.Join(parents, ", "),
			len(n.Attributes()),
			len(n.Enumerations()),
			len(n.Relations()),
		})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d classes)\n", len(g.Nodes))
}
