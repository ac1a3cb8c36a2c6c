// Package golang implements the Go dialect: one struct per class, generated
// with Jennifer.
//
// Parents are embedded, plain attributes map to Go primitives, enumerations
// to named string types declared in enums.go, and relations to pointers or
// slices of pointers to the target struct.
package golang

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/coder/compiler/gen"
	"github.com/syssam/coder/model"
)

// EnumsFile is the name of the file declaring enumeration types.
const EnumsFile = "enums.go"

// Dialect generates Go source for the graph.
type Dialect struct {
	pkg string

	mu    sync.Mutex
	graph *gen.Graph
	names *names
}

// NewDialect returns the Go dialect for the given package name.
// An empty name defaults to "models".
func NewDialect(pkg string) *Dialect {
	if pkg == "" {
		pkg = "models"
	}
	return &Dialect{pkg: pkg}
}

// Name returns "golang".
func (*Dialect) Name() string { return "golang" }

// GenType returns the struct file of the type. Unnamed types and
// enumeration classes are skipped; the latter are declared in enums.go.
// Classes whose Go names or file names clash get a numeric suffix.
func (d *Dialect) GenType(t *gen.Type) *gen.Output {
	if t.Name == "" || t.IsEnumeration() {
		return nil
	}
	n := d.namesOf(t.Graph())
	ident := n.types[t.ID]
	f := d.newFile(t.Graph().Output().Header)
	used := make(map[string]bool)
	fields := make([]jen.Code, 0, len(t.Parents)+len(t.Features))
	for _, p := range t.Parents {
		if id, ok := n.types[p.ID]; ok && !used[id] {
			used[id] = true
			fields = append(fields, jen.Id(id))
		}
	}
	for _, feat := range t.Features {
		fields = append(fields, d.field(n, t, feat, used))
	}
	if t.Package != "" {
		f.Commentf("%s is generated from class %s in package %s.", ident, t.Name, t.Package)
	} else {
		f.Commentf("%s is generated from class %s.", ident, t.Name)
	}
	f.Type().Id(ident).Struct(fields...)
	return &gen.Output{Name: n.files[t.ID], Renderer: f}
}

// GenGraph returns enums.go declaring every enumeration used by the graph.
func (d *Dialect) GenGraph(g *gen.Graph) []*gen.Output {
	n := d.namesOf(g)
	if len(n.enumOrder) == 0 {
		return nil
	}
	f := d.newFile(g.Output().Header)
	for _, e := range n.enumOrder {
		f.Commentf("%s is an enumeration type.", n.enums[e])
		f.Type().Id(n.enums[e]).String()
	}
	return []*gen.Output{{Name: EnumsFile, Renderer: f}}
}

// field returns the struct field of one feature.
func (d *Dialect) field(n *names, t *gen.Type, feat gen.Feature, used map[string]bool) jen.Code {
	name := feat.FeatureName()
	var id *jen.Statement
	switch f := feat.(type) {
	case gen.Attribute:
		id = jen.Id(fieldIdent(used, FieldName(name))).Add(primitive(f.Type))
	case gen.Enumeration:
		id = jen.Id(fieldIdent(used, FieldName(name))).Id(n.enums[f.Type])
	case gen.Relation:
		id = jen.Id(fieldIdent(used, d.relationField(f)))
		target := jen.Id("any")
		if ident, ok := n.target(t.Graph(), f.TargetID); ok {
			target = jen.Op("*").Id(ident)
		}
		if f.Cardinality == gen.Many {
			id = id.Index()
		}
		id = id.Add(target)
	default:
		return jen.Null()
	}
	if name == "" {
		return id
	}
	return id.Tag(map[string]string{"json": name + ",omitempty"})
}

func (d *Dialect) relationField(r gen.Relation) string {
	if r.Cardinality == gen.Many && r.Name != "" && inflect.Singularize(r.Name) == r.Name {
		return FieldName(inflect.Pluralize(r.Name))
	}
	return FieldName(r.Name)
}

// namesOf returns the names of the graph, computed once per graph.
func (d *Dialect) namesOf(g *gen.Graph) *names {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.graph != g || d.names == nil {
		d.graph, d.names = g, newNames(g)
	}
	return d.names
}

// names holds the Go identifiers and file names assigned to a graph.
// Struct types are named first in graph order, then enumerations in
// name order.
type names struct {
	types     map[model.ClassID]string
	files     map[model.ClassID]string
	enums     map[string]string
	enumOrder []string
}

func newNames(g *gen.Graph) *names {
	n := &names{
		types: make(map[model.ClassID]string),
		files: make(map[model.ClassID]string),
		enums: make(map[string]string),
	}
	idents := make(map[string]bool)
	files := map[string]bool{EnumsFile: true}
	for _, t := range g.Nodes {
		if t.Name == "" || t.IsEnumeration() {
			continue
		}
		ident := unique(idents, TypeName(t.Name), "")
		n.types[t.ID] = ident
		n.files[t.ID] = unique(files, strings.ToLower(ident), ".go")
	}
	n.enumOrder = g.Enumerations()
	for _, t := range g.Nodes {
		if t.IsEnumeration() && !slices.Contains(n.enumOrder, t.Name) {
			n.enumOrder = append(n.enumOrder, t.Name)
		}
	}
	slices.Sort(n.enumOrder)
	for _, e := range n.enumOrder {
		n.enums[e] = unique(idents, TypeName(e), "")
	}
	return n
}

// target returns the identifier of a relation target, if it is declared.
func (n *names) target(g *gen.Graph, id model.ClassID) (string, bool) {
	if ident, ok := n.types[id]; ok {
		return ident, true
	}
	if t, ok := g.Lookup(id); ok && t.IsEnumeration() {
		return n.enums[t.Name], true
	}
	return "", false
}

// unique returns base+ext, or base followed by the first free number
// starting at 2, and marks the result as used.
func unique(used map[string]bool, base, ext string) string {
	name := base + ext
	for i := 2; used[strings.ToLower(name)]; i++ {
		name = base + strconv.Itoa(i) + ext
	}
	used[strings.ToLower(name)] = true
	return name
}

// fieldIdent is unique for struct fields. Blank fields may repeat.
func fieldIdent(used map[string]bool, ident string) string {
	if ident == "_" {
		return ident
	}
	name := ident
	for i := 2; used[name]; i++ {
		name = ident + strconv.Itoa(i)
	}
	used[name] = true
	return name
}

func (d *Dialect) newFile(header string) *jen.File {
	f := jen.NewFile(d.pkg)
	f.HeaderComment(header)
	return f
}

// TypeName returns the exported Go identifier of a model type name.
func TypeName(name string) string {
	return exported(inflect.Camelize(name))
}

// FieldName returns the exported Go identifier of an attribute name.
// Unnamed attributes become blank fields.
func FieldName(name string) string {
	if name == "" {
		return "_"
	}
	return exported(inflect.Camelize(name))
}

// primitive maps a plain attribute type onto a Go type. Unknown types are
// kept as strings.
func primitive(typeName string) jen.Code {
	switch gen.ParsePrimitive(typeName) {
	case gen.PrimitiveInt:
		return jen.Int()
	case gen.PrimitiveFloat:
		return jen.Float64()
	case gen.PrimitiveBool:
		return jen.Bool()
	default:
		return jen.String()
	}
}

// exported keeps the letters and digits of s and title-cases the result.
// A leading digit is prefixed with an underscore.
func exported(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return "_"
	}
	s = cases.Title(language.Und, cases.NoLower).String(s)
	if r := []rune(s)[0]; unicode.IsDigit(r) {
		s = "_" + s
	}
	return s
}
