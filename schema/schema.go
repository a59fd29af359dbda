package schema

import "strings"

// Kind identifies the shape of a type descriptor.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindOptional
	KindList
	KindMap
	KindLiteral
)

// Type describes the expected shape of a configuration value. Descriptors
// compose: lists, maps, and optionals take inner descriptors, so arbitrary
// nesting such as optional<map<one-of, int>> is expressible.
//
// Build descriptors with the package constructors. The zero Type is invalid
// and is rejected by Validate rather than silently accepted.
type Type struct {
	kind    Kind
	elem    *Type    // Optional inner type or List element type
	key     *Type    // Map key type
	value   *Type    // Map value type
	allowed []string // Literal members
}

// String returns the string primitive descriptor.
func String() Type { return Type{kind: KindString} }

// Int returns the integer primitive descriptor.
func Int() Type { return Type{kind: KindInt} }

// Float returns the floating-point primitive descriptor.
func Float() Type { return Type{kind: KindFloat} }

// Bool returns the boolean primitive descriptor.
func Bool() Type { return Type{kind: KindBool} }

// Optional wraps inner so that the absence sentinel (nil) is also valid.
func Optional(inner Type) Type { return Type{kind: KindOptional, elem: &inner} }

// ListOf returns a descriptor for a sequence whose elements all match elem.
func ListOf(elem Type) Type { return Type{kind: KindList, elem: &elem} }

// MapOf returns a descriptor for a key/value collection whose keys all match
// key and whose values all match value.
func MapOf(key, value Type) Type {
	return Type{kind: KindMap, key: &key, value: &value}
}

// Literal returns a descriptor for a string restricted to the allowed set.
func Literal(allowed ...string) Type {
	return Type{kind: KindLiteral, allowed: allowed}
}

// Kind returns the descriptor's shape.
func (t Type) Kind() Kind { return t.kind }

// String renders the descriptor the way it appears in error messages,
// e.g. "optional<map<one of [iad sea], int>>".
func (t Type) String() string {
	switch t.kind {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindOptional:
		return "optional<" + t.elem.String() + ">"
	case KindList:
		return "list<" + t.elem.String() + ">"
	case KindMap:
		return "map<" + t.key.String() + ", " + t.value.String() + ">"
	case KindLiteral:
		return "one of [" + strings.Join(t.allowed, " ") + "]"
	default:
		return "invalid"
	}
}
