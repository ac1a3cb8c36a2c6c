package gen

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/syssam/coder/model"
)

// Graph holds the eligible classes of a model in emission order.
type Graph struct {
	*Config
	// Model is the source model. It must not be mutated while the graph is used.
	Model *model.Model
	// Nodes are the eligible types. Every eligible ancestor of a type
	// precedes it.
	Nodes []*Type
	nodes map[model.ClassID]*Type
}

// NewGraph selects, orders and resolves the classes of m.
//
// Inheritance and package cycles fail with a ConfigurationError. A class
// with a malformed feature fails with a MalformedModelError, unless the
// config asks to skip such classes.
func NewGraph(c *Config, m *model.Model) (*Graph, error) {
	if c == nil {
		c = &Config{}
	}
	var (
		log = c.logger()
		sel = c.Selection()
	)
	ids, err := NewFilter(m, sel.Blacklist...).Select()
	if err != nil {
		return nil, err
	}
	features := make(map[model.ClassID][]Feature, len(ids))
	kept := make([]model.ClassID, 0, len(ids))
	for _, id := range ids {
		fs, err := ResolveFeatures(m, id)
		if err != nil {
			if sel.SkipMalformed && IsMalformedModelError(err) {
				log.Warn("skipping malformed class", "class", className(m, id), "error", err)
				continue
			}
			return nil, err
		}
		features[id] = fs
		kept = append(kept, id)
	}
	order, err := Order(m, kept)
	if err != nil {
		return nil, err
	}
	g := &Graph{
		Config: c,
		Model:  m,
		Nodes:  make([]*Type, 0, len(order)),
		nodes:  make(map[model.ClassID]*Type, len(order)),
	}
	for _, id := range order {
		pkg, err := packagePath(m, m.Classes[id].Package)
		if err != nil {
			return nil, err
		}
		t := &Type{
			ID:       id,
			Name:     m.Classes[id].Name,
			Package:  pkg,
			Features: features[id],
			graph:    g,
		}
		g.Nodes = append(g.Nodes, t)
		g.nodes[id] = t
	}
	for _, t := range g.Nodes {
		t.Parents = g.nearestParents(t.ID)
	}
	log.Debug("graph built", "classes", m.Len(), "eligible", len(ids), "emitted", len(g.Nodes))
	return g, nil
}

// Lookup returns the type generated for the class, if any.
func (g *Graph) Lookup(id model.ClassID) (*Type, bool) {
	t, ok := g.nodes[id]
	return t, ok
}

// Coders yields a coder per type in emission order.
func (g *Graph) Coders() iter.Seq[*Coder] {
	return func(yield func(*Coder) bool) {
		for _, t := range g.Nodes {
			if !yield(t.Coder()) {
				return
			}
		}
	}
}

// Enumerations returns the distinct enumeration type names used by the
// graph, sorted.
func (g *Graph) Enumerations() []string {
	var names []string
	for _, t := range g.Nodes {
		for _, e := range t.Enumerations() {
			if !slices.Contains(names, e.Type) {
				names = append(names, e.Type)
			}
		}
	}
	slices.Sort(names)
	return names
}

// nearestParents returns the closest generated ancestors of id, looking
// through ancestors that are not part of the graph.
func (g *Graph) nearestParents(id model.ClassID) []*Type {
	var (
		parents []*Type
		seen    = make(map[model.ClassID]bool)
		stack   = slices.Clone(g.Model.Classes[id].Generalizations)
	)
	slices.Reverse(stack)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[c] {
			continue
		}
		seen[c] = true
		if t, ok := g.nodes[c]; ok {
			parents = append(parents, t)
			continue
		}
		next := slices.Clone(g.Model.Classes[c].Generalizations)
		slices.Reverse(next)
		stack = append(stack, next...)
	}
	return parents
}

// packagePath returns the "/"-separated qualified name of the package.
func packagePath(m *model.Model, pkg model.PackageID) (string, error) {
	var names []string
	if _, err := walkPackages(m, pkg, func(p *model.Package) bool {
		names = append(names, p.Name)
		return false
	}); err != nil {
		return "", fmt.Errorf("package of class: %w", err)
	}
	slices.Reverse(names)
	return strings.Join(names, "/"), nil
}
