package gen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/coder/model"
)

// chainModel returns n classes where every class specializes the previous
// one and owns a few features.
func chainModel(n int) *model.Model {
	m := model.New()
	pkg := m.AddPackage("Bench", model.NoPackage, false)
	for i := range n {
		id := m.AddClass(fmt.Sprintf("C%05d", n-i), pkg)
		if i > 0 {
			m.Generalize(id, id-1)
		}
		m.AddAttribute(id, model.Attribute{Name: "name", TypeValue: "string"})
		m.AddAttribute(id, model.Attribute{Name: "state", TypeValue: "StateKind"})
		m.AddAttribute(id, model.Attribute{Name: "self", Association: &model.Association{Target: id}, Upper: "1"})
	}
	return m
}

func BenchmarkNewGraph(b *testing.B) {
	m := chainModel(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := NewGraph(nil, m)
		require.NoError(b, err)
	}
}

func BenchmarkCoderLines(b *testing.B) {
	m := chainModel(1)
	c, err := Emit(m, 0)
	require.NoError(b, err)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range c.Lines() {
		}
	}
}
