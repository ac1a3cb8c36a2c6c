package gen

import (
	"slices"
	"strings"

	"github.com/syssam/coder/model"
)

// Cardinality of a relation.
type Cardinality uint8

// Relation cardinalities.
const (
	One Cardinality = iota + 1
	Many
)

// String returns the lower-case name of the cardinality.
func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "invalid"
	}
}

// The following types are the resolved structural features of a class.
// A Feature is exactly one of Attribute, Enumeration or Relation.
type (
	// Feature is a classified structural feature.
	Feature interface {
		// FeatureName returns the attribute name, empty if absent.
		FeatureName() string
		feature()
	}

	// Attribute is a plain attribute of a primitive type.
	Attribute struct {
		Name string
		Type string
	}

	// Enumeration is an attribute whose type is some enumeration.
	// Type holds the enumeration name for dialects that declare it.
	Enumeration struct {
		Name string
		Type string
	}

	// Relation is an association end.
	Relation struct {
		Name string
		// Target is the name of the related class.
		Target   string
		TargetID model.ClassID
		// Association is the name of the association, if any.
		Association string
		Cardinality Cardinality
	}
)

func (a Attribute) FeatureName() string   { return a.Name }
func (e Enumeration) FeatureName() string { return e.Name }
func (r Relation) FeatureName() string    { return r.Name }

func (Attribute) feature()   {}
func (Enumeration) feature() {}
func (Relation) feature()    {}

// ResolveFeature classifies one attribute of the class owner.
//
// An association end becomes a Relation, a type name ending with "Kind"
// becomes an Enumeration, and anything else a plain Attribute.
func ResolveFeature(m *model.Model, owner model.ClassID, a model.Attribute) (Feature, error) {
	if a.IsAssociation() {
		target, ok := m.Class(a.Association.Target)
		switch {
		case !ok:
			return nil, NewMalformedModelError(className(m, owner), a.Name, "association target is not resolved")
		case target.Name == "":
			return nil, NewMalformedModelError(className(m, owner), a.Name, "association target has no name")
		}
		card := Many
		if a.SingleValued() {
			card = One
		}
		return Relation{
			Name:        a.Name,
			Target:      target.Name,
			TargetID:    a.Association.Target,
			Association: a.Association.Name,
			Cardinality: card,
		}, nil
	}
	switch {
	case a.TypeValue == "":
		return nil, NewMalformedModelError(className(m, owner), a.Name, "attribute has neither type nor association")
	case strings.HasSuffix(a.TypeValue, EnumerationSuffix):
		return Enumeration{Name: a.Name, Type: a.TypeValue}, nil
	default:
		return Attribute{Name: a.Name, Type: a.TypeValue}, nil
	}
}

// ResolveFeatures classifies the directly declared attributes of the class,
// sorted by name. Attributes without a name sort first.
func ResolveFeatures(m *model.Model, id model.ClassID) ([]Feature, error) {
	c, ok := m.Class(id)
	if !ok {
		return nil, unknownClass(id)
	}
	attrs := slices.Clone(c.Attributes)
	slices.SortStableFunc(attrs, func(a, b model.Attribute) int {
		return strings.Compare(a.Name, b.Name)
	})
	features := make([]Feature, 0, len(attrs))
	for _, a := range attrs {
		f, err := ResolveFeature(m, id, a)
		if err != nil {
			return nil, err
		}
		features = append(features, f)
	}
	return features, nil
}
