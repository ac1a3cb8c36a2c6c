package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/coder/compiler/gen"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate code for the eligible classes of the model",
		Long: `Load the model, select the eligible classes, order them so that every
superclass precedes its subclasses and write the files of the selected dialect
into the target directory.`,
		Example: `  # Generate the text rendering into ./gen
  coder generate --model model.yaml

  # Generate Go structs, skipping the Vendor package
  coder generate --dialect golang --package events --blacklist Vendor`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := NewCommandContext(cmd)
			g, err := c.Generate(cmd.Context())
			if err != nil {
				return err
			}
			stats := g.Metrics()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Generated %d files (%d bytes) in %s\n",
				stats.FilesGenerated, stats.TotalBytes, c.Cfg.Target)
			if c.Cfg.Verbose {
				for _, f := range g.Files() {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
				}
			}
			return nil
		},
	}
}

// Generate runs one generation of the configured dialect.
func (c *CommandContext) Generate(ctx context.Context) (*gen.Generator, error) {
	d, err := NewDialect(c.Cfg)
	if err != nil {
		return nil, err
	}
	graph, err := c.LoadGraph()
	if err != nil {
		return nil, err
	}
	g := gen.NewGenerator(graph, c.Cfg.Target).
		WithDialect(d).
		WithWorkers(c.Cfg.Workers)
	if err := g.Generate(ctx); err != nil {
		return nil, err
	}
	return g, nil
}
