package gen

import (
	"strings"

	"github.com/syssam/coder/model"
)

// Type represents one eligible class of the graph and the features it
// declares directly.
type Type struct {
	// ID of the class in the source model.
	ID model.ClassID
	// Name of the class.
	Name string
	// Package holds the qualified name of the owning package, e.g. "Core/Types".
	Package string
	// Parents are the nearest ancestors that are part of the graph.
	Parents []*Type
	// Features are the directly declared features, sorted by name.
	Features []Feature

	graph *Graph
}

// Graph returns the graph the type belongs to.
func (t *Type) Graph() *Graph { return t.graph }

// Coder returns the emitter of the type declaration.
func (t *Type) Coder() *Coder { return NewCoder(t.Name, t.Features) }

// Label returns the lower-case name used for file names.
func (t *Type) Label() string { return strings.ToLower(t.Name) }

// IsEnumeration reports whether the type itself is an enumeration class.
func (t *Type) IsEnumeration() bool {
	return t.Name != "" && strings.HasSuffix(t.Name, EnumerationSuffix)
}

// Attributes returns the plain attributes of the type.
func (t *Type) Attributes() []Attribute { return featuresOf[Attribute](t) }

// Enumerations returns the enumeration-valued attributes of the type.
func (t *Type) Enumerations() []Enumeration { return featuresOf[Enumeration](t) }

// Relations returns the association ends of the type.
func (t *Type) Relations() []Relation { return featuresOf[Relation](t) }

func featuresOf[F Feature](t *Type) []F {
	var fs []F
	for _, f := range t.Features {
		if v, ok := f.(F); ok {
			fs = append(fs, v)
		}
	}
	return fs
}
