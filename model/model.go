// Package model holds the in-memory class model consumed by the code generator.
//
// Classes and packages live in two arenas on Model and reference each other by
// index. The generator treats a Model as read-only; it is populated by a loader
// (see compiler/load) or built programmatically:
//
//	m := model.New()
//	core := m.AddPackage("Core", model.NoPackage, false)
//	event := m.AddClass("Event", core)
//	m.AddAttribute(event, model.Attribute{Name: "name", TypeValue: "string"})
package model

// SimpleAttribute is the stereotype marking a class as a primitive-like value.
const SimpleAttribute = "SimpleAttribute"

// ClassID is the index of a class in Model.Classes.
type ClassID int

// PackageID is the index of a package in Model.Packages.
type PackageID int

const (
	// NoClass marks an absent class reference.
	NoClass ClassID = -1
	// NoPackage marks an absent package reference.
	NoPackage PackageID = -1
)

type (
	// Model is an arena of packages and classes.
	Model struct {
		Packages []Package
		Classes  []Class
	}

	// Package is a namespace. Parent is NoPackage for top-level packages.
	Package struct {
		Name   string
		Parent PackageID
		// Profile marks a stereotype-definition package.
		Profile bool
	}

	// Class is a single model class.
	Class struct {
		// Name of the class. Empty means the name is absent.
		Name string
		// Package owning the class, or NoPackage.
		Package PackageID
		// Generalizations point to the parent classes.
		Generalizations []ClassID
		// Attributes holds the directly declared structural features.
		Attributes []Attribute
		// Stereotypes holds the names of applied stereotypes.
		Stereotypes []string
	}

	// Attribute is a structural feature owned by a class.
	Attribute struct {
		Name string
		// TypeValue names a primitive or enumeration type.
		TypeValue string
		// Association is set when the attribute is an association end.
		Association *Association
		// Upper is the multiplicity upper bound, "1" for single-valued.
		Upper string
	}

	// Association describes the relationship an attribute takes part in.
	Association struct {
		Name   string
		Target ClassID
	}
)

// New returns an empty model.
func New() *Model { return &Model{} }

// AddPackage adds a package and returns its id.
func (m *Model) AddPackage(name string, parent PackageID, profile bool) PackageID {
	m.Packages = append(m.Packages, Package{Name: name, Parent: parent, Profile: profile})
	return PackageID(len(m.Packages) - 1)
}

// AddClass adds a class owned by pkg and returns its id.
func (m *Model) AddClass(name string, pkg PackageID) ClassID {
	m.Classes = append(m.Classes, Class{Name: name, Package: pkg})
	return ClassID(len(m.Classes) - 1)
}

// Generalize records parent as a generalization of child.
func (m *Model) Generalize(child, parent ClassID) {
	c := &m.Classes[child]
	c.Generalizations = append(c.Generalizations, parent)
}

// AddAttribute appends an attribute to the class.
func (m *Model) AddAttribute(id ClassID, attr Attribute) {
	c := &m.Classes[id]
	c.Attributes = append(c.Attributes, attr)
}

// Apply applies the named stereotype to the class.
func (m *Model) Apply(id ClassID, stereotype string) {
	c := &m.Classes[id]
	c.Stereotypes = append(c.Stereotypes, stereotype)
}

// HasStereotype reports whether the stereotype is applied directly to the class.
func (m *Model) HasStereotype(id ClassID, stereotype string) bool {
	for _, s := range m.Classes[id].Stereotypes {
		if s == stereotype {
			return true
		}
	}
	return false
}

// Class returns the class with the given id.
// It returns false if the id is out of range.
func (m *Model) Class(id ClassID) (*Class, bool) {
	if id < 0 || int(id) >= len(m.Classes) {
		return nil, false
	}
	return &m.Classes[id], true
}

// Package returns the package with the given id.
// It returns false if the id is out of range.
func (m *Model) Package(id PackageID) (*Package, bool) {
	if id < 0 || int(id) >= len(m.Packages) {
		return nil, false
	}
	return &m.Packages[id], true
}

// ClassByName returns the id of the first class with the given name.
func (m *Model) ClassByName(name string) (ClassID, bool) {
	for i := range m.Classes {
		if m.Classes[i].Name == name {
			return ClassID(i), true
		}
	}
	return NoClass, false
}

// Len returns the number of classes.
func (m *Model) Len() int { return len(m.Classes) }

// IsAssociation reports whether the attribute is an association end.
func (a Attribute) IsAssociation() bool { return a.Association != nil }

// SingleValued reports whether the attribute holds at most one value.
func (a Attribute) SingleValued() bool { return a.Upper == "1" }
