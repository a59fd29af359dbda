package schema

import (
	"fmt"
	"reflect"
)

// Validate checks value against the descriptor t, recursively. field labels
// validation failures and may be empty. The first mismatch aborts the whole
// check; there is no error accumulation. Validate never mutates value.
func Validate(field string, value any, t Type) error {
	switch t.kind {
	case KindString, KindInt, KindFloat, KindBool:
		return validatePrimitive(field, value, t)
	case KindOptional:
		if isAbsent(value) {
			return nil
		}
		return Validate(field, value, *t.elem)
	case KindList:
		return validateList(field, value, t)
	case KindMap:
		return validateMap(field, value, t)
	case KindLiteral:
		return validateLiteral(field, value, t)
	default:
		return fmt.Errorf("%w (kind %d)", ErrUnsupportedType, t.kind)
	}
}

func validatePrimitive(field string, value any, t Type) error {
	rv := reflect.ValueOf(value)
	matched := false
	if rv.IsValid() {
		switch t.kind {
		case KindString:
			matched = rv.Kind() == reflect.String
		case KindInt:
			switch rv.Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
				matched = true
			}
		case KindFloat:
			matched = rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64
		case KindBool:
			matched = rv.Kind() == reflect.Bool
		}
	}

	if !matched {
		return &InvalidFieldValueError{Field: field, Expected: t.String(), Value: value}
	}
	return nil
}

func validateLiteral(field string, value any, t Type) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return &InvalidFieldValueError{Field: field, Expected: "string", Value: value}
	}

	s := rv.String()
	for _, allowed := range t.allowed {
		if s == allowed {
			return nil
		}
	}
	return &InvalidFieldValueError{Field: field, Expected: t.String(), Value: value}
}

func validateList(field string, value any, t Type) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return &InvalidFieldValueError{Field: field, Expected: t.String(), Value: value}
	}

	for i := 0; i < rv.Len(); i++ {
		if err := Validate(qualify(field, "item"), rv.Index(i).Interface(), *t.elem); err != nil {
			return err
		}
	}
	return nil
}

func validateMap(field string, value any, t Type) error {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return &InvalidFieldValueError{Field: field, Expected: t.String(), Value: value}
	}

	iter := rv.MapRange()
	for iter.Next() {
		if err := Validate(qualify(field, "key"), iter.Key().Interface(), *t.key); err != nil {
			return err
		}
		if err := Validate(qualify(field, "value"), iter.Value().Interface(), *t.value); err != nil {
			return err
		}
	}
	return nil
}

// qualify appends a context label to a field name for nested failures.
func qualify(field, label string) string {
	if field == "" {
		return ""
	}
	return field + " " + label
}

// isAbsent reports whether value is the explicit no-value sentinel: a nil
// interface or a nil pointer. Empty (even nil) maps and slices are present.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
