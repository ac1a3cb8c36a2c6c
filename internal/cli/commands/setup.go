// Package commands implements the coder subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/coder/compiler/gen"
	"github.com/syssam/coder/compiler/gen/golang"
	"github.com/syssam/coder/compiler/gen/graphql"
	"github.com/syssam/coder/compiler/gen/text"
	"github.com/syssam/coder/compiler/load"
	"github.com/syssam/coder/internal/cli/config"
	"github.com/syssam/coder/model"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// NewCommandContext reads the configuration and logger stored in the
// command context by the root command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	ctx := cmd.Context()
	return &CommandContext{
		Cfg:    config.FromContext(ctx),
		Logger: config.GetLogger(ctx),
	}
}

// LoadModel reads the configured model file.
func (c *CommandContext) LoadModel() (*model.Model, error) {
	m, err := load.Load(c.Cfg.Model)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded model", "path", c.Cfg.Model, "classes", m.Len())
	return m, nil
}

// LoadGraph reads the configured model and builds its generation graph.
func (c *CommandContext) LoadGraph() (*gen.Graph, error) {
	m, err := c.LoadModel()
	if err != nil {
		return nil, err
	}
	gc, err := gen.NewConfig(c.Cfg.GenOptions(c.Logger)...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(gc, m)
}

// dialects maps a dialect name to its constructor.
var dialects = map[string]func(*config.Config) gen.Dialect{
	"text":    func(*config.Config) gen.Dialect { return text.NewDialect() },
	"golang":  func(c *config.Config) gen.Dialect { return golang.NewDialect(c.Package) },
	"graphql": func(*config.Config) gen.Dialect { return graphql.NewDialect() },
}

// Dialects returns the names of the available dialects, sorted.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewDialect returns the dialect registered under the configured name.
func NewDialect(cfg *config.Config) (gen.Dialect, error) {
	newDialect, ok := dialects[cfg.Dialect]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (available: %s)", cfg.Dialect, strings.Join(Dialects(), ", "))
	}
	return newDialect(cfg), nil
}
