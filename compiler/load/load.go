// Package load reads class models from YAML, JSON or MessagePack documents
// and writes them back.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/syssam/coder/model"
)

// Format of a model document.
type Format string

// Supported document formats.
const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// Separator joins the names of nested packages.
const Separator = "/"

// ErrUnknownFormat is returned for file extensions that map to no format.
var ErrUnknownFormat = errors.New("load: unknown model format")

// Document is the serialized form of a model.
type Document struct {
	Packages []Package `yaml:"packages,omitempty" json:"packages,omitempty" msgpack:"packages,omitempty"`
	Classes  []Class   `yaml:"classes,omitempty" json:"classes,omitempty" msgpack:"classes,omitempty"`
}

// Package declares a package by its qualified name, e.g. "Core/Types".
type Package struct {
	Name    string `yaml:"name" json:"name" msgpack:"name"`
	Profile bool   `yaml:"profile,omitempty" json:"profile,omitempty" msgpack:"profile,omitempty"`
}

// Class declares a class. Package and Generalizations refer to declared
// packages and classes by name.
type Class struct {
	Name            string      `yaml:"name" json:"name" msgpack:"name"`
	Package         string      `yaml:"package,omitempty" json:"package,omitempty" msgpack:"package,omitempty"`
	Generalizations []string    `yaml:"generalizations,omitempty" json:"generalizations,omitempty" msgpack:"generalizations,omitempty"`
	Stereotypes     []string    `yaml:"stereotypes,omitempty" json:"stereotypes,omitempty" msgpack:"stereotypes,omitempty"`
	Attributes      []Attribute `yaml:"attributes,omitempty" json:"attributes,omitempty" msgpack:"attributes,omitempty"`
}

// Attribute declares an owned attribute. Setting Target or Association
// makes it an association end.
type Attribute struct {
	Name        string `yaml:"name" json:"name" msgpack:"name"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty" msgpack:"type,omitempty"`
	Association string `yaml:"association,omitempty" json:"association,omitempty" msgpack:"association,omitempty"`
	Target      string `yaml:"target,omitempty" json:"target,omitempty" msgpack:"target,omitempty"`
	Upper       string `yaml:"upper,omitempty" json:"upper,omitempty" msgpack:"upper,omitempty"`
}

// IsAssociation reports whether the attribute is an association end.
func (a Attribute) IsAssociation() bool {
	return a.Target != "" || a.Association != ""
}

// FormatOf returns the format implied by the file extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and builds the model stored at path.
func Load(path string) (*model.Model, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load: read model: %w", err)
	}
	m, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("load: %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes data in the given format and builds the model.
func Parse(data []byte, format Format) (*model.Model, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Build()
}

// Decode decodes a document. YAML and JSON documents with unknown fields
// are rejected.
func Decode(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return doc, nil
}

// Encode encodes the document in the given format.
func (d *Document) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		return json.MarshalIndent(d, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Marshal encodes m in the given format.
func Marshal(m *model.Model, format Format) ([]byte, error) {
	doc, err := FromModel(m)
	if err != nil {
		return nil, err
	}
	return doc.Encode(format)
}

// Build creates the model described by the document.
//
// Packages are created for every prefix of a declared name. Classes must
// name a declared package and declared generalizations; an association
// target naming no class is kept unresolved so generation reports it.
func (d *Document) Build() (*model.Model, error) {
	var (
		m        = model.New()
		packages = make(map[string]model.PackageID)
		classes  = make(map[string]model.ClassID)
	)
	for _, p := range d.Packages {
		id, err := declarePackage(m, packages, p.Name)
		if err != nil {
			return nil, err
		}
		if p.Profile {
			m.Packages[id].Profile = true
		}
	}
	for _, c := range d.Classes {
		pkg := model.NoPackage
		if c.Package != "" {
			id, ok := packages[c.Package]
			if !ok {
				return nil, fmt.Errorf("class %q: unknown package %q", c.Name, c.Package)
			}
			pkg = id
		}
		id := m.AddClass(c.Name, pkg)
		if c.Name == "" {
			continue
		}
		if _, ok := classes[c.Name]; ok {
			return nil, fmt.Errorf("duplicate class %q", c.Name)
		}
		classes[c.Name] = id
	}
	for i, c := range d.Classes {
		id := model.ClassID(i)
		for _, parent := range c.Generalizations {
			pid, ok := classes[parent]
			if !ok {
				return nil, fmt.Errorf("class %q: unknown generalization %q", c.Name, parent)
			}
			m.Generalize(id, pid)
		}
		for _, s := range c.Stereotypes {
			m.Apply(id, s)
		}
		for _, a := range c.Attributes {
			attr := model.Attribute{Name: a.Name, TypeValue: a.Type, Upper: a.Upper}
			if a.IsAssociation() {
				target, ok := classes[a.Target]
				if !ok {
					target = model.NoClass
				}
				attr.Association = &model.Association{Name: a.Association, Target: target}
			}
			m.AddAttribute(id, attr)
		}
	}
	return m, nil
}

// declarePackage returns the package with the qualified name, creating it
// and its missing parents.
func declarePackage(m *model.Model, packages map[string]model.PackageID, name string) (model.PackageID, error) {
	if name == "" {
		return model.NoPackage, errors.New("package without name")
	}
	var (
		parent = model.NoPackage
		path   string
	)
	for _, part := range strings.Split(name, Separator) {
		if part == "" {
			return model.NoPackage, fmt.Errorf("package %q: empty path element", name)
		}
		if path != "" {
			path += Separator
		}
		path += part
		id, ok := packages[path]
		if !ok {
			id = m.AddPackage(part, parent, false)
			packages[path] = id
		}
		parent = id
	}
	return parent, nil
}

// FromModel returns the document describing m. Generalizations and
// association targets must refer to named classes.
func FromModel(m *model.Model) (*Document, error) {
	doc := &Document{}
	paths := make([]string, len(m.Packages))
	for i := range m.Packages {
		p, err := qualifiedName(m, model.PackageID(i))
		if err != nil {
			return nil, err
		}
		paths[i] = p
		doc.Packages = append(doc.Packages, Package{Name: p, Profile: m.Packages[i].Profile})
	}
	for _, c := range m.Classes {
		dc := Class{
			Name:        c.Name,
			Stereotypes: c.Stereotypes,
		}
		if c.Package != model.NoPackage {
			if int(c.Package) >= len(paths) {
				return nil, fmt.Errorf("class %q: unknown package %d", c.Name, c.Package)
			}
			dc.Package = paths[c.Package]
		}
		for _, g := range c.Generalizations {
			parent, ok := m.Class(g)
			if !ok || parent.Name == "" {
				return nil, fmt.Errorf("class %q: generalization %d has no name", c.Name, g)
			}
			dc.Generalizations = append(dc.Generalizations, parent.Name)
		}
		for _, a := range c.Attributes {
			da := Attribute{Name: a.Name, Type: a.TypeValue, Upper: a.Upper}
			if a.Association != nil {
				da.Association = a.Association.Name
				if target, ok := m.Class(a.Association.Target); ok {
					da.Target = target.Name
				}
				if da.Association == "" && da.Target == "" {
					return nil, fmt.Errorf("class %q: attribute %q: association cannot be encoded", c.Name, a.Name)
				}
			}
			dc.Attributes = append(dc.Attributes, da)
		}
		doc.Classes = append(doc.Classes, dc)
	}
	return doc, nil
}

// qualifiedName returns the Separator-joined path of the package.
func qualifiedName(m *model.Model, id model.PackageID) (string, error) {
	var (
		names []string
		seen  = make(map[model.PackageID]bool)
	)
	for id != model.NoPackage {
		p, ok := m.Package(id)
		if !ok {
			return "", fmt.Errorf("unknown package %d", id)
		}
		if seen[id] {
			return "", fmt.Errorf("package %q: owning package cycle", p.Name)
		}
		seen[id] = true
		names = append([]string{p.Name}, names...)
		id = p.Parent
	}
	return strings.Join(names, Separator), nil
}
