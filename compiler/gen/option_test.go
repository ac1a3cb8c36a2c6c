package gen

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithTarget(t *testing.T) {
	t.Run("sets target", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithTarget("./out")(c))
		assert.Equal(t, "./out", c.Target)
	})

	t.Run("empty target fails", func(t *testing.T) {
		err := WithTarget("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsOptionError(err))
		assert.ErrorIs(t, err, ErrInvalidOption)
	})
}

func TestWithBlacklist(t *testing.T) {
	tests := []struct {
		name     string
		initial  []string
		packages []string
		expected []string
		wantErr  bool
	}{
		{"single", nil, []string{"Vendor"}, []string{"Vendor"}, false},
		{"several", nil, []string{"Vendor", "Legacy"}, []string{"Vendor", "Legacy"}, false},
		{"deduplicates", []string{"Vendor"}, []string{"Legacy", "Vendor", "Legacy"}, []string{"Vendor", "Legacy"}, false},
		{"none", []string{"Vendor"}, nil, []string{"Vendor"}, false},
		{"empty name", nil, []string{""}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{Blacklist: tt.initial}
			err := WithBlacklist(tt.packages...)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsOptionError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, c.Blacklist)
			}
		})
	}
}

func TestWithSkipMalformed(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithSkipMalformed(true)(c))
	assert.True(t, c.SkipMalformed)
	require.NoError(t, WithSkipMalformed(false)(c))
	assert.False(t, c.SkipMalformed)
}

func TestWithLogger(t *testing.T) {
	t.Run("sets logger", func(t *testing.T) {
		l := slog.New(slog.DiscardHandler)
		c := &Config{}
		require.NoError(t, WithLogger(l)(c))
		assert.Same(t, l, c.Logger)
	})

	t.Run("nil logger fails", func(t *testing.T) {
		err := WithLogger(nil)(&Config{})
		assert.True(t, IsOptionError(err))
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithTarget("./a"), WithTarget("./b"), WithHeader("h"))
		require.NoError(t, err)
		assert.Equal(t, "./b", c.Target)
		assert.Equal(t, "h", c.Header)
	})

	t.Run("stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithTarget(""), WithHeader("h"))
		require.Error(t, err)
		assert.Empty(t, c.Header)
	})
}

func TestApplyAll(t *testing.T) {
	c := &Config{}
	err := c.ApplyAll(WithTarget(""), WithHeader("h"), WithLogger(nil))
	require.Error(t, err)
	assert.Equal(t, "h", c.Header)

	var optErr *OptionError
	require.True(t, errors.As(err, &optErr))
	assert.Contains(t, err.Error(), `"Target"`)
	assert.Contains(t, err.Error(), `"Logger"`)

	require.NoError(t, c.ApplyAll())
}

func TestNewConfig(t *testing.T) {
	t.Run("valid options", func(t *testing.T) {
		c, err := NewConfig(WithTarget("./out"), WithBlacklist("Vendor"))
		require.NoError(t, err)
		assert.Equal(t, "./out", c.Target)
		assert.Equal(t, []string{"Vendor"}, c.Blacklist)
	})

	t.Run("invalid option", func(t *testing.T) {
		c, err := NewConfig(WithTarget(""))
		require.Error(t, err)
		assert.Nil(t, c)
	})

	t.Run("MustNewConfig panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithTarget("")) })
		assert.NotPanics(t, func() { MustNewConfig() })
	})
}
