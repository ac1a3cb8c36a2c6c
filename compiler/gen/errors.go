// Package gen provides code generation for class models.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrCycle indicates an inheritance or package-ownership cycle.
	ErrCycle = errors.New("coder: model graph contains a cycle")
	// ErrMalformedModel indicates a feature that cannot be classified.
	ErrMalformedModel = errors.New("coder: malformed model")
	// ErrInvalidOption indicates a configuration option error.
	ErrInvalidOption = errors.New("coder: invalid option")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("coder: code generation failed")
)

// ConfigurationError is returned when a traversal of the class or package
// graph would not terminate.
type ConfigurationError struct {
	// Relation is the traversed relation: "generalization" or "package".
	Relation string
	// Path holds the names along the detected cycle.
	Path    []string
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("coder: configuration error")
	if e.Relation != "" {
		b.WriteString(" in ")
		b.WriteString(e.Relation)
		b.WriteString(" graph")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Path) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(e.Path, " -> "))
		b.WriteString(")")
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrCycle
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(relation, message string, path []string) *ConfigurationError {
	return &ConfigurationError{
		Relation: relation,
		Path:     path,
		Message:  message,
	}
}

// MalformedModelError is returned when an attribute lacks the information
// needed to classify and render it.
type MalformedModelError struct {
	Class     string
	Attribute string
	Message   string
}

// Error implements the error interface.
func (e *MalformedModelError) Error() string {
	var b strings.Builder
	b.WriteString("coder: malformed model")
	if e.Class != "" {
		b.WriteString(" on class ")
		b.WriteString(e.Class)
	}
	if e.Attribute != "" {
		b.WriteString(" attribute ")
		b.WriteString(e.Attribute)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for MalformedModelError.
func (e *MalformedModelError) Is(target error) bool {
	return target == ErrMalformedModel
}

// NewMalformedModelError creates a new MalformedModelError.
func NewMalformedModelError(class, attribute, message string) *MalformedModelError {
	return &MalformedModelError{
		Class:     class,
		Attribute: attribute,
		Message:   message,
	}
}

// OptionError represents a configuration option error.
type OptionError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("coder: option error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("coder: option error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for OptionError.
func (e *OptionError) Is(target error) bool {
	return target == ErrInvalidOption
}

// NewOptionError creates a new OptionError.
func NewOptionError(option string, value any, message string) *OptionError {
	return &OptionError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a failure while writing generated output.
type GenerationError struct {
	Dialect string
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("coder: generation error")
	if e.Dialect != "" {
		b.WriteString(" in dialect ")
		b.WriteString(e.Dialect)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(dialect, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Dialect: dialect,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigurationError reports whether the error is a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsMalformedModelError reports whether the error is a MalformedModelError.
func IsMalformedModelError(err error) bool {
	var mErr *MalformedModelError
	return errors.As(err, &mErr)
}

// IsOptionError reports whether the error is an OptionError.
func IsOptionError(err error) bool {
	var optErr *OptionError
	return errors.As(err, &optErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
