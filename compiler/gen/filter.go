package gen

import (
	"fmt"
	"strings"

	"github.com/syssam/coder/model"
)

// EnumerationSuffix is the name suffix identifying enumeration types.
const EnumerationSuffix = "Kind"

// IsEnumeration reports whether the class is an enumeration, that is,
// its name is present and ends with "Kind".
func IsEnumeration(c *model.Class) bool {
	return c != nil && c.Name != "" && strings.HasSuffix(c.Name, EnumerationSuffix)
}

// IsSimpleAttribute reports whether the class, or any of its ancestors, has
// the SimpleAttribute stereotype applied. The walk stops at the first match.
func IsSimpleAttribute(m *model.Model, id model.ClassID) (bool, error) {
	return walkGeneralizations(m, id, func(c model.ClassID) bool {
		return m.HasStereotype(c, model.SimpleAttribute)
	})
}

// IsInProfile reports whether a package on the owning chain of the class is
// a profile. A class without a package is not in a profile.
func IsInProfile(m *model.Model, id model.ClassID) (bool, error) {
	c, ok := m.Class(id)
	if !ok {
		return false, unknownClass(id)
	}
	return walkPackages(m, c.Package, func(p *model.Package) bool {
		return p.Profile
	})
}

// IsInToplevelPackage reports whether the root package of the owning chain
// of the class is named name.
func IsInToplevelPackage(m *model.Model, id model.ClassID, name string) (bool, error) {
	c, ok := m.Class(id)
	if !ok {
		return false, unknownClass(id)
	}
	var root *model.Package
	if _, err := walkPackages(m, c.Package, func(p *model.Package) bool {
		root = p
		return false
	}); err != nil {
		return false, err
	}
	return root != nil && root.Parent == model.NoPackage && root.Name == name, nil
}

// SuperClasses returns all transitive ancestors of the class in depth-first
// order, each listed once.
func SuperClasses(m *model.Model, id model.ClassID) ([]model.ClassID, error) {
	var supers []model.ClassID
	_, err := walkGeneralizations(m, id, func(c model.ClassID) bool {
		if c != id {
			supers = append(supers, c)
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	return supers, nil
}

// Filter selects the classes eligible for code generation.
type Filter struct {
	model     *model.Model
	blacklist []string
}

// NewFilter returns a filter that also drops classes whose top-level
// package is one of blacklist.
func NewFilter(m *model.Model, blacklist ...string) *Filter {
	return &Filter{model: m, blacklist: blacklist}
}

// Eligible reports whether the class is selected for emission: not owned by
// a profile, not in a blacklisted top-level package, and not a simple
// attribute class.
func (f *Filter) Eligible(id model.ClassID) (bool, error) {
	if in, err := IsInProfile(f.model, id); err != nil || in {
		return false, err
	}
	for _, name := range f.blacklist {
		if in, err := IsInToplevelPackage(f.model, id, name); err != nil || in {
			return false, err
		}
	}
	simple, err := IsSimpleAttribute(f.model, id)
	if err != nil {
		return false, err
	}
	return !simple, nil
}

// Select returns the eligible classes in model order.
func (f *Filter) Select() ([]model.ClassID, error) {
	var ids []model.ClassID
	for i := range f.model.Classes {
		id := model.ClassID(i)
		ok, err := f.Eligible(id)
		if err != nil {
			return nil, fmt.Errorf("filter class %s: %w", className(f.model, id), err)
		}
		if ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// walkGeneralizations visits id and its ancestors depth-first, pre-order.
// Each class is visited once. The walk stops when visit returns true, and
// fails with a ConfigurationError when it re-enters a class on the current
// path.
func walkGeneralizations(m *model.Model, id model.ClassID, visit func(model.ClassID) bool) (bool, error) {
	const (
		active = iota + 1
		done
	)
	if _, ok := m.Class(id); !ok {
		return false, unknownClass(id)
	}
	type frame struct {
		id   model.ClassID
		next int
	}
	state := map[model.ClassID]int{id: active}
	if visit(id) {
		return true, nil
	}
	stack := []frame{{id: id}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		c, _ := m.Class(top.id)
		if top.next >= len(c.Generalizations) {
			state[top.id] = done
			stack = stack[:len(stack)-1]
			continue
		}
		parent := c.Generalizations[top.next]
		top.next++
		switch state[parent] {
		case done:
			continue
		case active:
			path := make([]string, 0, len(stack)+1)
			for i := range stack {
				if stack[i].id == parent || len(path) > 0 {
					path = append(path, className(m, stack[i].id))
				}
			}
			path = append(path, className(m, parent))
			return false, NewConfigurationError("generalization", "inheritance cycle", path)
		}
		if _, ok := m.Class(parent); !ok {
			return false, NewMalformedModelError(className(m, top.id), "", fmt.Sprintf("unknown generalization %d", parent))
		}
		state[parent] = active
		if visit(parent) {
			return true, nil
		}
		stack = append(stack, frame{id: parent})
	}
	return false, nil
}

// walkPackages visits the owning chain starting at pkg, innermost first.
// The walk stops when visit returns true.
func walkPackages(m *model.Model, pkg model.PackageID, visit func(*model.Package) bool) (bool, error) {
	seen := make(map[model.PackageID]bool)
	var path []string
	for id := pkg; id != model.NoPackage; {
		p, ok := m.Package(id)
		if !ok {
			return false, NewMalformedModelError("", "", fmt.Sprintf("unknown package %d", id))
		}
		path = append(path, p.Name)
		if seen[id] {
			return false, NewConfigurationError("package", "owning package cycle", path)
		}
		seen[id] = true
		if visit(p) {
			return true, nil
		}
		id = p.Parent
	}
	return false, nil
}

func className(m *model.Model, id model.ClassID) string {
	if c, ok := m.Class(id); ok && c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%d", id)
}

func unknownClass(id model.ClassID) error {
	return NewMalformedModelError(fmt.Sprintf("#%d", id), "", "unknown class")
}
