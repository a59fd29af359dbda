// Package schema validates runtime values against explicit type descriptors.
//
// Descriptors are a small sum type built once with the package constructors:
//
//	t := schema.Optional(schema.MapOf(schema.Literal("iad", "sea"), schema.Int()))
//	err := schema.Validate("regions", value, t)
//
// Validation is a pure recursive descent over the descriptor: the first
// mismatch aborts with an *InvalidFieldValueError naming the field, the
// expected shape, and the offending value.
package schema
