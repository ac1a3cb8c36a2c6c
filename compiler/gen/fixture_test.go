package gen

import "github.com/syssam/coder/model"

// eventModel returns the model
//
//	Core
//	  Element
//	  Event : Element { name: string, severity: SeverityKind, cause -> Event [1] }
//	  Severity <<SimpleAttribute>>
//	  Level : Severity
//	  Types
//	    Timestamp { value: int }
//	Profiles (profile)
//	  Stereotype
//	Vendor
//	  Widget { parts -> Element [*] }
//	Empty (no package)
type eventModel struct {
	*model.Model

	core, types, profiles, vendor model.PackageID

	element, event, severity, level, timestamp, stereotype, widget, empty model.ClassID
}

func newEventModel() *eventModel {
	m := &eventModel{Model: model.New()}
	m.core = m.AddPackage("Core", model.NoPackage, false)
	m.types = m.AddPackage("Types", m.core, false)
	m.profiles = m.AddPackage("Profiles", model.NoPackage, true)
	m.vendor = m.AddPackage("Vendor", model.NoPackage, false)

	m.element = m.AddClass("Element", m.core)
	m.event = m.AddClass("Event", m.core)
	m.Generalize(m.event, m.element)
	m.AddAttribute(m.event, model.Attribute{Name: "name", TypeValue: "string"})
	m.AddAttribute(m.event, model.Attribute{Name: "severity", TypeValue: "SeverityKind"})
	m.AddAttribute(m.event, model.Attribute{
		Name:        "cause",
		Association: &model.Association{Target: m.event},
		Upper:       "1",
	})

	m.severity = m.AddClass("Severity", m.core)
	m.Apply(m.severity, model.SimpleAttribute)
	m.level = m.AddClass("Level", m.core)
	m.Generalize(m.level, m.severity)

	m.timestamp = m.AddClass("Timestamp", m.types)
	m.AddAttribute(m.timestamp, model.Attribute{Name: "value", TypeValue: "int"})

	m.stereotype = m.AddClass("Stereotype", m.profiles)

	m.widget = m.AddClass("Widget", m.vendor)
	m.AddAttribute(m.widget, model.Attribute{
		Name:        "parts",
		Association: &model.Association{Name: "composition", Target: m.element},
		Upper:       "*",
	})

	m.empty = m.AddClass("Empty", model.NoPackage)
	return m
}

// names returns the class names of ids.
func names(m *model.Model, ids []model.ClassID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = m.Classes[id].Name
	}
	return out
}
