package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by Load when the config file does not exist.
var ErrNotFound = errors.New("config file not found")

// UnknownFieldError reports keys that are not part of the config schema.
type UnknownFieldError struct {
	Fields []string // sorted
}

func (e *UnknownFieldError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("unknown config field %q", e.Fields[0])
	}
	return fmt.Sprintf("unknown config fields: %s", strings.Join(e.Fields, ", "))
}
