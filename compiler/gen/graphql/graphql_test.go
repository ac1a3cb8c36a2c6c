package graphql

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/syssam/coder/compiler/gen"
	"github.com/syssam/coder/model"
)

func newModel() *model.Model {
	m := model.New()
	core := m.AddPackage("Core", model.NoPackage, false)
	vendor := m.AddPackage("Vendor", model.NoPackage, false)

	element := m.AddClass("Element", core)
	event := m.AddClass("Event", core)
	m.Generalize(event, element)
	m.AddAttribute(event, model.Attribute{Name: "name", TypeValue: "string"})
	m.AddAttribute(event, model.Attribute{Name: "severity", TypeValue: "SeverityKind"})
	m.AddAttribute(event, model.Attribute{Name: "cause", Association: &model.Association{Target: event}, Upper: "1"})
	m.AddAttribute(event, model.Attribute{Name: "related", Association: &model.Association{Target: event}, Upper: "*"})
	m.AddAttribute(event, model.Attribute{Name: "weight", TypeValue: "double"})
	m.AddAttribute(event, model.Attribute{Name: "count", TypeValue: "int"})
	m.AddAttribute(event, model.Attribute{Name: "active", TypeValue: "Boolean"})

	widget := m.AddClass("Widget", vendor)
	m.AddAttribute(widget, model.Attribute{Name: "parts", Association: &model.Association{Target: element}})
	m.AddAttribute(widget, model.Attribute{Name: "owner", Association: &model.Association{Target: element}, Upper: "1"})

	m.AddClass("ColorKind", core)
	return m
}

func schema(t *testing.T, opts ...gen.Option) (string, *ast.SchemaDocument) {
	t.Helper()
	g, err := gen.NewGraph(gen.MustNewConfig(opts...), newModel())
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	doc, err := parser.ParseSchema(&ast.Source{Name: FileName, Input: buf.String()})
	require.NoError(t, err, buf.String())
	return buf.String(), doc
}

func fieldType(t *testing.T, doc *ast.SchemaDocument, typeName, field string) string {
	t.Helper()
	def := doc.Definitions.ForName(typeName)
	require.NotNil(t, def, typeName)
	f := def.Fields.ForName(field)
	require.NotNil(t, f, field)
	return f.Type.String()
}

func TestWrite(t *testing.T) {
	out, doc := schema(t)

	assert.True(t, strings.HasPrefix(out, "# "+gen.DefaultHeader+"\n"))
	assert.Contains(t, out, "type Event {\n")
	assert.Contains(t, out, "\tcause: Event\n")

	assert.Equal(t, "Event", fieldType(t, doc, "Event", "cause"))
	assert.Equal(t, "[Event!]!", fieldType(t, doc, "Event", "related"))
	assert.Equal(t, "String", fieldType(t, doc, "Event", "name"))
	assert.Equal(t, "SeverityKind", fieldType(t, doc, "Event", "severity"))
	assert.Equal(t, "Float", fieldType(t, doc, "Event", "weight"))
	assert.Equal(t, "Int", fieldType(t, doc, "Event", "count"))
	assert.Equal(t, "Boolean", fieldType(t, doc, "Event", "active"))
	assert.Equal(t, "[Element!]!", fieldType(t, doc, "Widget", "parts"))
	assert.Equal(t, "Element", fieldType(t, doc, "Widget", "owner"))
}

func TestWriteDefinitions(t *testing.T) {
	_, doc := schema(t)

	severity := doc.Definitions.ForName("SeverityKind")
	require.NotNil(t, severity)
	assert.Equal(t, ast.Scalar, severity.Kind)
	assert.Equal(t, "Enumeration SeverityKind.", severity.Description)

	color := doc.Definitions.ForName("ColorKind")
	require.NotNil(t, color)
	assert.Equal(t, ast.Scalar, color.Kind)

	event := doc.Definitions.ForName("Event")
	require.NotNil(t, event)
	assert.Equal(t, ast.Object, event.Kind)
	assert.Equal(t, "Class Event in package Core. Generalizations: Element.", event.Description)

	element := doc.Definitions.ForName("Element")
	require.NotNil(t, element)
	require.Len(t, element.Fields, 1)
	assert.Equal(t, "_", element.Fields[0].Name)
	assert.Equal(t, "Boolean", element.Fields[0].Type.String())
}

func TestWriteRelationOutsideGraph(t *testing.T) {
	_, doc := schema(t, gen.WithBlacklist("Core"))
	assert.Nil(t, doc.Definitions.ForName("Event"))
	assert.Equal(t, "[String!]!", fieldType(t, doc, "Widget", "parts"))
	assert.Equal(t, "String", fieldType(t, doc, "Widget", "owner"))
}

func TestWriteMultilineHeader(t *testing.T) {
	out, _ := schema(t, gen.WithHeader("first\nsecond"))
	assert.True(t, strings.HasPrefix(out, "# first\n# second\n"))
}

func TestWriteWithoutHeader(t *testing.T) {
	out, _ := schema(t, gen.WithHeader(""))
	assert.NotContains(t, out, "#")
	assert.Contains(t, out, "scalar ColorKind")
}

func TestDocumentNames(t *testing.T) {
	m := model.New()
	integer := m.AddClass("Int", model.NoPackage)
	m.AddAttribute(integer, model.Attribute{Name: "2d", TypeValue: "string"})
	m.AddAttribute(integer, model.Attribute{Name: "__meta", TypeValue: "string"})
	m.AddAttribute(integer, model.Attribute{Name: "a-b", TypeValue: "string"})
	m.AddAttribute(integer, model.Attribute{Name: "a_b", TypeValue: "int"})
	m.AddAttribute(integer, model.Attribute{Name: "level", TypeValue: "Level-Kind"})
	elan := m.AddClass("élan", model.NoPackage)
	m.AddAttribute(elan, model.Attribute{Name: "owner", Association: &model.Association{Target: integer}, Upper: "1"})
	m.AddClass("_lan", model.NoPackage)
	g, err := gen.NewGraph(nil, m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, g))
	doc, err := parser.ParseSchema(&ast.Source{Name: FileName, Input: buf.String()})
	require.NoError(t, err, buf.String())

	var names []string
	for _, def := range doc.Definitions {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"Level_Kind", "IntType", "_lan", "_lan2"}, names)

	assert.Equal(t, "Class Int.", doc.Definitions.ForName("IntType").Description)
	assert.Equal(t, "String", fieldType(t, doc, "IntType", "_2d"))
	assert.Equal(t, "String", fieldType(t, doc, "IntType", "X__meta"))
	assert.Equal(t, "String", fieldType(t, doc, "IntType", "a_b"))
	assert.Equal(t, "Int", fieldType(t, doc, "IntType", "a_b2"))
	assert.Equal(t, "Level_Kind", fieldType(t, doc, "IntType", "level"))
	assert.Equal(t, "IntType", fieldType(t, doc, "_lan2", "owner"))
}

func TestDocumentSkipsUnnamed(t *testing.T) {
	m := model.New()
	id := m.AddClass("Thing", model.NoPackage)
	m.AddAttribute(id, model.Attribute{TypeValue: "string"})
	m.AddAttribute(id, model.Attribute{Name: "label", TypeValue: "string"})
	m.AddClass("", model.NoPackage)
	g, err := gen.NewGraph(nil, m)
	require.NoError(t, err)

	doc := Document(g)
	require.Len(t, doc.Definitions, 1)
	thing := doc.Definitions[0]
	assert.Equal(t, "Class Thing.", thing.Description)
	require.Len(t, thing.Fields, 1)
	assert.Equal(t, "label", thing.Fields[0].Name)
}

func TestGenGraph(t *testing.T) {
	d := NewDialect()
	assert.Equal(t, "graphql", d.Name())
	g, err := gen.NewGraph(nil, newModel())
	require.NoError(t, err)
	outs := d.GenGraph(g)
	require.Len(t, outs, 1)
	assert.Equal(t, FileName, outs[0].Name)
}
