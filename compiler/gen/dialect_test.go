package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockGraphDialect implements only Dialect.
type mockGraphDialect struct {
	files []string
}

func (m *mockGraphDialect) Name() string { return "mock" }

func (m *mockGraphDialect) GenGraph(g *Graph) []*Output {
	var outs []*Output
	for _, name := range m.files {
		outs = append(outs, &Output{
			Name: name,
			Renderer: RendererFunc(func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "%d types\n", len(g.Nodes))
				return err
			}),
		})
	}
	return outs
}

// mockTypeDialect implements Dialect and TypeGenerator.
type mockTypeDialect struct {
	mockGraphDialect
	dir string
	err error
}

func (m *mockTypeDialect) GenType(t *Type) *Output {
	if t.Name == "Empty" {
		return nil
	}
	return &Output{
		Dir:  m.dir,
		Name: t.Label() + ".txt",
		Renderer: RendererFunc(func(w io.Writer) error {
			if m.err != nil {
				return m.err
			}
			_, err := io.WriteString(w, t.Coder().String())
			return err
		}),
	}
}

// TestDialectInterface verifies Dialect interface compliance.
func TestDialectInterface(t *testing.T) {
	var _ Dialect = &mockGraphDialect{}
	var _ Dialect = &mockTypeDialect{}
	var _ TypeGenerator = &mockTypeDialect{}
	var _ GraphGenerator = &mockGraphDialect{}
}

// TestCapabilityDetection verifies type assertion for optional capabilities.
func TestCapabilityDetection(t *testing.T) {
	t.Run("graph-only dialect", func(t *testing.T) {
		var d Dialect = &mockGraphDialect{}
		_, ok := d.(TypeGenerator)
		assert.False(t, ok)

		g := NewGenerator(&Graph{Config: &Config{}}, "out").WithDialect(d)
		assert.Nil(t, g.typeGen)
	})

	t.Run("per-type dialect", func(t *testing.T) {
		var d Dialect = &mockTypeDialect{}
		_, ok := d.(TypeGenerator)
		assert.True(t, ok)

		g := NewGenerator(&Graph{Config: &Config{}}, "out").WithDialect(d)
		assert.NotNil(t, g.typeGen)

		g.WithDialect(&mockGraphDialect{})
		assert.Nil(t, g.typeGen, "switching dialect resets detection")
	})

	t.Run("nil dialect is ignored", func(t *testing.T) {
		g := NewGenerator(&Graph{Config: &Config{}}, "out").WithDialect(&mockTypeDialect{})
		g.WithDialect(nil)
		assert.NotNil(t, g.dialect)
	})
}

func TestRendererFunc(t *testing.T) {
	var buf bytes.Buffer
	r := RendererFunc(func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	require.NoError(t, r.Render(&buf))
	assert.Equal(t, "hello", buf.String())

	boom := errors.New("boom")
	assert.ErrorIs(t, RendererFunc(func(io.Writer) error { return boom }).Render(&buf), boom)
}
