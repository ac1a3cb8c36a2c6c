package gen

import (
	"fmt"
	"iter"
	"strings"

	"github.com/syssam/coder/model"
)

// EmptyBody is the line emitted for a class without attributes.
const EmptyBody = "pass"

// UnnamedClass is the name emitted in the header of a class without a name.
const UnnamedClass = "_"

// Coder emits the declaration of one class: a header line followed by one
// line per feature.
type Coder struct {
	name     string
	features []Feature
}

// NewCoder returns a coder for a class with already resolved features.
func NewCoder(name string, features []Feature) *Coder {
	return &Coder{name: name, features: features}
}

// Emit resolves the features of a single class and returns its coder.
func Emit(m *model.Model, id model.ClassID) (*Coder, error) {
	features, err := ResolveFeatures(m, id)
	if err != nil {
		return nil, err
	}
	return NewCoder(m.Classes[id].Name, features), nil
}

// Header returns the class header line. Unnamed classes are rendered as
// "class _:".
func (c *Coder) Header() string {
	name := c.name
	if name == "" {
		name = UnnamedClass
	}
	return fmt.Sprintf("class %s:", name)
}

// Lines returns the body lines of the class. The sequence can be iterated
// any number of times.
func (c *Coder) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		if len(c.features) == 0 {
			yield(EmptyBody)
			return
		}
		for _, f := range c.features {
			if !yield(Line(f)) {
				return
			}
		}
	}
}

// String returns the header and body lines separated by newlines.
func (c *Coder) String() string {
	var b strings.Builder
	b.WriteString(c.Header())
	for l := range c.Lines() {
		b.WriteByte('\n')
		b.WriteString(l)
	}
	return b.String()
}

// Line renders a single feature declaration.
func Line(f Feature) string {
	switch f := f.(type) {
	case Relation:
		return fmt.Sprintf("%s: relation_%s[%s]", f.Name, f.Cardinality, f.Target)
	case Enumeration:
		return f.Name + ": enumeration"
	case Attribute:
		return fmt.Sprintf("%s: attribute[%s]", f.Name, f.Type)
	default:
		return f.FeatureName() + ": unknown"
	}
}
