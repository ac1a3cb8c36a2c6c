package gen

import "golang.org/x/text/cases"

// Primitive classifies the type name of a plain attribute for dialects that
// map it onto a native type.
type Primitive uint8

// Primitive kinds.
const (
	PrimitiveUnknown Primitive = iota
	PrimitiveString
	PrimitiveInt
	PrimitiveFloat
	PrimitiveBool
)

// ParsePrimitive classifies a type name, ignoring case.
// Unrecognized names yield PrimitiveUnknown.
func ParsePrimitive(name string) Primitive {
	// Casers are stateful; one per call.
	switch cases.Fold().String(name) {
	case "string", "str", "text", "char", "character":
		return PrimitiveString
	case "int", "integer", "long", "short", "natural", "unlimitednatural":
		return PrimitiveInt
	case "float", "double", "real", "decimal", "number":
		return PrimitiveFloat
	case "bool", "boolean":
		return PrimitiveBool
	default:
		return PrimitiveUnknown
	}
}

// String returns the canonical lower-case name of the primitive.
func (p Primitive) String() string {
	switch p {
	case PrimitiveString:
		return "string"
	case PrimitiveInt:
		return "int"
	case PrimitiveFloat:
		return "float"
	case PrimitiveBool:
		return "bool"
	default:
		return "unknown"
	}
}
