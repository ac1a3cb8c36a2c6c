package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewConfigurationError("generalization", "cycle detected", []string{"A", "B", "A"})

		assert.Contains(t, err.Error(), "coder: configuration error")
		assert.Contains(t, err.Error(), "generalization graph")
		assert.Contains(t, err.Error(), "cycle detected")
		assert.Contains(t, err.Error(), "A -> B -> A")
	})

	t.Run("Error message without path", func(t *testing.T) {
		err := &ConfigurationError{Relation: "package"}
		assert.Contains(t, err.Error(), "package graph")
		assert.NotContains(t, err.Error(), "->")
	})

	t.Run("Is matches ErrCycle", func(t *testing.T) {
		err := NewConfigurationError("package", "", nil)
		assert.True(t, errors.Is(err, ErrCycle))
		assert.False(t, errors.Is(err, ErrMalformedModel))
	})

	t.Run("IsConfigurationError helper", func(t *testing.T) {
		err := fmt.Errorf("order: %w", NewConfigurationError("package", "", nil))
		assert.True(t, IsConfigurationError(err))
		assert.False(t, IsConfigurationError(errors.New("other")))
	})
}

func TestMalformedModelError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewMalformedModelError("Event", "cause", "association target has no name")

		assert.Contains(t, err.Error(), "coder: malformed model")
		assert.Contains(t, err.Error(), "class Event")
		assert.Contains(t, err.Error(), "attribute cause")
		assert.Contains(t, err.Error(), "association target has no name")
	})

	t.Run("Error message with class only", func(t *testing.T) {
		err := &MalformedModelError{Class: "Event"}
		assert.Contains(t, err.Error(), "class Event")
		assert.NotContains(t, err.Error(), "attribute")
	})

	t.Run("Is matches ErrMalformedModel", func(t *testing.T) {
		err := NewMalformedModelError("Event", "", "")
		assert.True(t, errors.Is(err, ErrMalformedModel))
	})

	t.Run("IsMalformedModelError helper", func(t *testing.T) {
		assert.True(t, IsMalformedModelError(NewMalformedModelError("Event", "x", "")))
		assert.False(t, IsMalformedModelError(errors.New("other")))
	})
}

func TestOptionError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewOptionError("Workers", -1, "must be positive")

		assert.Contains(t, err.Error(), "coder: option error")
		assert.Contains(t, err.Error(), "Workers")
		assert.Contains(t, err.Error(), "-1")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewOptionError("Target", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Target")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrInvalidOption", func(t *testing.T) {
		assert.True(t, errors.Is(NewOptionError("Target", nil, ""), ErrInvalidOption))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("write failed")
		err := NewGenerationError("text", "models.txt", "cannot write file", cause)

		assert.Contains(t, err.Error(), "coder: generation error")
		assert.Contains(t, err.Error(), "dialect text")
		assert.Contains(t, err.Error(), "file: models.txt")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "write failed")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("io error")
		err := NewGenerationError("golang", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
	})
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		isConfig    bool
		isMalformed bool
		isOption    bool
		isGen       bool
	}{
		{
			name:     "ConfigurationError",
			err:      NewConfigurationError("package", "", nil),
			isConfig: true,
		},
		{
			name:        "MalformedModelError",
			err:         NewMalformedModelError("Event", "", ""),
			isMalformed: true,
		},
		{
			name:     "OptionError",
			err:      NewOptionError("Target", nil, ""),
			isOption: true,
		},
		{
			name:  "GenerationError",
			err:   NewGenerationError("text", "", "", nil),
			isGen: true,
		},
		{
			name: "Other error",
			err:  errors.New("other"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isConfig, IsConfigurationError(tt.err))
			assert.Equal(t, tt.isMalformed, IsMalformedModelError(tt.err))
			assert.Equal(t, tt.isOption, IsOptionError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}
