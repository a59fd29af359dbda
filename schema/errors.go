package schema

import (
	"errors"
	"fmt"
)

// ErrUnsupportedType is returned when a descriptor cannot be interpreted by
// the matcher. The constructors never produce such a descriptor; this guards
// against zero-value or hand-built Types passing validation unchecked.
var ErrUnsupportedType = errors.New("schema: unsupported type descriptor")

// InvalidFieldValueError reports a value that does not match its declared
// type. Field carries the configuration key, qualified with an "item", "key",
// or "value" label when the failure happened inside a list or map.
type InvalidFieldValueError struct {
	Field    string // qualified field name, may be empty
	Expected string // declared type or allowed set
	Value    any    // the offending runtime value
}

func (e *InvalidFieldValueError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid value: expected %s, got %v (%T)", e.Expected, e.Value, e.Value)
	}
	return fmt.Sprintf("invalid value for %s: expected %s, got %v (%T)", e.Field, e.Expected, e.Value, e.Value)
}
