// Package graphql implements the GraphQL dialect: a schema document with
// one object type per class.
package graphql

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/syssam/coder/compiler/gen"
	"github.com/syssam/coder/model"
)

// FileName is the name of the generated schema file.
const FileName = "schema.graphql"

// placeholder is the field given to objects without features, since GraphQL
// objects need at least one field.
const placeholder = "_"

// Dialect generates a GraphQL schema for the graph.
type Dialect struct{}

// NewDialect returns the GraphQL dialect.
func NewDialect() *Dialect { return &Dialect{} }

// Name returns "graphql".
func (*Dialect) Name() string { return "graphql" }

// GenGraph returns the schema file.
func (d *Dialect) GenGraph(g *gen.Graph) []*gen.Output {
	return []*gen.Output{{
		Name: FileName,
		Renderer: gen.RendererFunc(func(w io.Writer) error {
			return Write(w, g)
		}),
	}}
}

// builtins are the scalars every schema declares.
var builtins = []string{"Boolean", "Float", "ID", "Int", "String"}

// Write formats the schema document of the graph to w, preceded by the
// header as comment lines.
func Write(w io.Writer, g *gen.Graph) error {
	if header := g.Output().Header; header != "" {
		for _, l := range strings.Split(header, "\n") {
			if _, err := fmt.Fprintf(w, "# %s\n", l); err != nil {
				return err
			}
		}
	}
	formatter.NewFormatter(w).FormatSchemaDocument(Document(g))
	return nil
}

// Document builds the schema document of the graph. Enumerations are
// declared as custom scalars. Names are made valid GraphQL names: other
// characters become underscores, names clashing with a built-in scalar get
// a "Type" suffix and clashing names a numeric one.
func Document(g *gen.Graph) *ast.SchemaDocument {
	n := newNames(g)
	doc := &ast.SchemaDocument{}
	for _, e := range n.enumOrder {
		doc.Definitions = append(doc.Definitions, &ast.Definition{
			Kind:        ast.Scalar,
			Name:        n.enums[e],
			Description: "Enumeration " + e + ".",
		})
	}
	for _, t := range g.Nodes {
		if name, ok := n.types[t.ID]; ok {
			doc.Definitions = append(doc.Definitions, object(n, g, t, name))
		}
	}
	return doc
}

func object(n *names, g *gen.Graph, t *gen.Type, name string) *ast.Definition {
	def := &ast.Definition{
		Kind:        ast.Object,
		Name:        name,
		Description: description(t),
	}
	used := make(map[string]bool)
	for _, feat := range t.Features {
		if feat.FeatureName() == "" {
			continue
		}
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name: unique(used, fieldName(feat.FeatureName())),
			Type: n.fieldType(g, feat),
		})
	}
	if len(def.Fields) == 0 {
		def.Fields = append(def.Fields, &ast.FieldDefinition{
			Name:        placeholder,
			Description: "Placeholder for a class without attributes.",
			Type:        ast.NamedType("Boolean", nil),
		})
	}
	return def
}

// names holds the GraphQL type names assigned to a graph. Objects are
// named first in graph order, then enumerations in name order.
type names struct {
	types     map[model.ClassID]string
	enums     map[string]string
	enumOrder []string
}

func newNames(g *gen.Graph) *names {
	n := &names{
		types: make(map[model.ClassID]string),
		enums: make(map[string]string),
	}
	used := make(map[string]bool)
	for _, b := range builtins {
		used[b] = true
	}
	for _, t := range g.Nodes {
		if t.Name != "" && !t.IsEnumeration() {
			n.types[t.ID] = unique(used, typeName(t.Name))
		}
	}
	n.enumOrder = g.Enumerations()
	for _, t := range g.Nodes {
		if t.IsEnumeration() && !slices.Contains(n.enumOrder, t.Name) {
			n.enumOrder = append(n.enumOrder, t.Name)
		}
	}
	slices.Sort(n.enumOrder)
	for _, e := range n.enumOrder {
		n.enums[e] = unique(used, typeName(e))
	}
	return n
}

func description(t *gen.Type) string {
	var parents []string
	for _, p := range t.Parents {
		if p.Name != "" {
			parents = append(parents, p.Name)
		}
	}
	var b strings.Builder
	b.WriteString("Class " + t.Name)
	if t.Package != "" {
		b.WriteString(" in package " + t.Package)
	}
	b.WriteString(".")
	if len(parents) > 0 {
		b.WriteString(" Generalizations: " + strings.Join(parents, ", ") + ".")
	}
	return b.String()
}

func (n *names) fieldType(g *gen.Graph, feat gen.Feature) *ast.Type {
	switch f := feat.(type) {
	case gen.Relation:
		target := "String"
		if name, ok := n.types[f.TargetID]; ok {
			target = name
		} else if t, ok := g.Lookup(f.TargetID); ok && t.IsEnumeration() {
			target = n.enums[t.Name]
		}
		if f.Cardinality == gen.Many {
			return ast.NonNullListType(ast.NonNullNamedType(target, nil), nil)
		}
		return ast.NamedType(target, nil)
	case gen.Enumeration:
		return ast.NamedType(n.enums[f.Type], nil)
	case gen.Attribute:
		return ast.NamedType(scalar(f.Type), nil)
	default:
		return ast.NamedType("String", nil)
	}
}

func scalar(typeName string) string {
	switch gen.ParsePrimitive(typeName) {
	case gen.PrimitiveInt:
		return "Int"
	case gen.PrimitiveFloat:
		return "Float"
	case gen.PrimitiveBool:
		return "Boolean"
	default:
		return "String"
	}
}

// fieldName returns a valid GraphQL name: letters, digits and underscores,
// not starting with a digit or with the "__" reserved for introspection.
func fieldName(s string) string {
	s = strings.Map(func(r rune) rune {
		if isNameChar(r) {
			return r
		}
		return '_'
	}, s)
	if s == "" {
		return placeholder
	}
	if c := s[0]; c >= '0' && c <= '9' {
		s = "_" + s
	}
	if strings.HasPrefix(s, "__") {
		s = "X" + s
	}
	return s
}

// typeName is fieldName with built-in scalar names suffixed by "Type".
func typeName(s string) string {
	s = fieldName(s)
	if slices.Contains(builtins, s) {
		s += "Type"
	}
	return s
}

func isNameChar(c rune) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// unique returns name, or name followed by the first free number starting
// at 2, and marks the result as used.
func unique(used map[string]bool, name string) string {
	s := name
	for i := 2; used[s]; i++ {
		s = name + strconv.Itoa(i)
	}
	used[s] = true
	return s
}
