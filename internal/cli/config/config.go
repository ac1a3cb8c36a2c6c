// Package config loads the coder command-line configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/syssam/coder/compiler/gen"
)

// Default configuration values.
const (
	DefaultModel    = "model.yaml"
	DefaultTarget   = "gen"
	DefaultDialect  = "text"
	DefaultPackage  = "models"
	DefaultDebounce = 100 * time.Millisecond
)

// Config holds the settings shared by all commands.
type Config struct {
	Model         string        `koanf:"model"`
	Target        string        `koanf:"target"`
	Dialect       string        `koanf:"dialect"`
	Package       string        `koanf:"package"`
	Header        string        `koanf:"header"`
	Blacklist     []string      `koanf:"blacklist"`
	Workers       int           `koanf:"workers"`
	SkipMalformed bool          `koanf:"skip_malformed"`
	Verbose       bool          `koanf:"verbose"`
	Debounce      time.Duration `koanf:"debounce"`

	// File is the configuration file that was read, if any.
	File string `koanf:"-"`
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Model == "" {
		errs = append(errs, errors.New("model is required"))
	}
	if c.Dialect == "" {
		errs = append(errs, errors.New("dialect is required"))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.Workers))
	}
	if c.Debounce <= 0 {
		errs = append(errs, fmt.Errorf("debounce must be positive, got %s", c.Debounce))
	}
	for _, p := range c.Blacklist {
		if p == "" {
			errs = append(errs, errors.New("blacklist contains an empty package name"))
			break
		}
	}
	return errors.Join(errs...)
}

// GenOptions returns the code generation options described by c.
func (c *Config) GenOptions(logger *slog.Logger) []gen.Option {
	opts := []gen.Option{
		gen.WithBlacklist(c.Blacklist...),
		gen.WithSkipMalformed(c.SkipMalformed),
	}
	if c.Target != "" {
		opts = append(opts, gen.WithTarget(c.Target))
	}
	if c.Header != "" {
		opts = append(opts, gen.WithHeader(c.Header))
	}
	if logger != nil {
		opts = append(opts, gen.WithLogger(logger))
	}
	return opts
}

type (
	configKey struct{}
	loggerKey struct{}
)

// WithConfig returns a copy of ctx carrying c.
func WithConfig(ctx context.Context, c *Config) context.Context {
	return context.WithValue(ctx, configKey{}, c)
}

// FromContext retrieves the configuration stored by WithConfig.
// It falls back to the defaults when none is present.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return Default()
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Model:    DefaultModel,
		Target:   DefaultTarget,
		Dialect:  DefaultDialect,
		Package:  DefaultPackage,
		Debounce: DefaultDebounce,
	}
}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// NewLogger returns the text logger used by the commands. Verbose enables
// debug output.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
