package gen

import (
	"log/slog"
	"slices"
)

// DefaultHeader is the header comment written at the top of generated files.
const DefaultHeader = "Code generated by coder. DO NOT EDIT."

// Config holds the global code generation options.
type Config struct {
	// Target is the output directory of the generated files.
	Target string
	// Header overrides DefaultHeader when set.
	Header string
	// Blacklist holds names of top-level packages excluded from generation.
	Blacklist []string
	// SkipMalformed drops classes with malformed features instead of
	// failing the whole run.
	SkipMalformed bool
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// OutputConfig groups the settings controlling where and how files are written.
type OutputConfig struct {
	Target string
	Header string
}

// SelectionConfig groups the settings controlling which classes are emitted.
type SelectionConfig struct {
	Blacklist     []string
	SkipMalformed bool
}

// Output returns the output settings. The header falls back to DefaultHeader.
func (c *Config) Output() OutputConfig {
	header := c.Header
	if header == "" {
		header = DefaultHeader
	}
	return OutputConfig{Target: c.Target, Header: header}
}

// Selection returns the class selection settings.
func (c *Config) Selection() SelectionConfig {
	return SelectionConfig{
		Blacklist:     slices.Clone(c.Blacklist),
		SkipMalformed: c.SkipMalformed,
	}
}

func (c *Config) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
