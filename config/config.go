package config

import (
	"os"
	"reflect"
	"sort"

	"github.com/hoverctl/hover/schema"
)

// DefaultFile is the conventional name of the deployment config file.
// Callers resolve the directory themselves and pass a full path; the package
// never consults the working directory.
const DefaultFile = "cloud.yml"

// VMTypes is the allowed set of virtual machine sizes.
var VMTypes = []string{
	"c1m.5", "c1m1", "c1m2",
	"c2m.5", "c2m1", "c2m2", "c2m4",
	"c4m1", "c4m2", "c4m4", "c4m8",
}

// Regions is the allowed set of deployment region codes.
var Regions = []string{
	"ams", "arn", "atl", "bog", "bom", "bos", "cdg", "den", "dfw", "ewr",
	"eze", "fra", "gdl", "gig", "gru", "hkg", "iad", "jnb", "lax", "lhr",
	"mad", "mia", "nrt", "ord", "otp", "phx", "qro", "scl", "sea", "sin",
	"sjc", "syd", "waw", "yul", "yyz",
}

// Optional distinguishes "not set" from "zero value".
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the wrapped value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// OrDefault returns the wrapped value or the provided default.
func (o Optional[T]) OrDefault(defaultVal T) T {
	if o.Set {
		return o.Value
	}
	return defaultVal
}

// Config is the validated deployment configuration record.
type Config struct {
	Name        Optional[string]
	Description Optional[string]
	VMType      Optional[string]
	Regions     Optional[map[string]int]
	Hostname    Optional[string]
	Envfile     string
	Project     Optional[string]
	Packages    []string

	path string
}

// fieldSpec pairs a config key with its declared type. Order matters:
// validation walks fields in declaration order and the first failure aborts.
type fieldSpec struct {
	name string
	typ  schema.Type
}

var fields = []fieldSpec{
	{"name", schema.Optional(schema.String())},
	{"description", schema.Optional(schema.String())},
	{"vmtype", schema.Optional(schema.Literal(VMTypes...))},
	{"regions", schema.Optional(schema.MapOf(schema.Literal(Regions...), schema.Int()))},
	{"hostname", schema.Optional(schema.String())},
	{"envfile", schema.String()},
	{"project", schema.Optional(schema.String())},
	{"packages", schema.ListOf(schema.String())},
}

// New builds a Config from raw field values (e.g. a decoded config file).
// Missing keys take their defaults, unknown keys are rejected, and every
// field is validated against its declared type before the record is bound.
// path records where the values came from; it may be empty.
func New(values map[string]any, path string) (*Config, error) {
	merged := map[string]any{
		"envfile":  ".env",
		"packages": []any{},
	}
	for k, v := range values {
		merged[k] = v
	}

	if err := checkKeys(merged); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if err := schema.Validate(f.name, merged[f.name], f.typ); err != nil {
			return nil, err
		}
	}

	cfg := &Config{path: path}
	cfg.bind(merged)
	return cfg, nil
}

// WithOverrides returns a derived copy with the given fields replaced.
// The copy passes through the same validation as original construction, so
// an override that violates the schema is rejected. Overriding a field with
// nil clears it (optionals only). The receiver is never modified.
func (c *Config) WithOverrides(overrides map[string]any) (*Config, error) {
	merged := c.values()
	for k, v := range overrides {
		merged[k] = v
	}
	return New(merged, c.path)
}

// Exists reports whether the record's backing file is present on disk.
func (c *Config) Exists() bool {
	if c.path == "" {
		return false
	}
	_, err := os.Stat(c.path)
	return err == nil
}

// Path returns the record's backing file path, possibly empty.
func (c *Config) Path() string {
	return c.path
}

func checkKeys(values map[string]any) error {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.name] = true
	}

	var unknown []string
	for k := range values {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return &UnknownFieldError{Fields: unknown}
}

// bind copies validated raw values into the typed fields. The values have
// already passed schema validation, so the conversions cannot fail.
func (c *Config) bind(values map[string]any) {
	if v, ok := present(values, "name"); ok {
		c.Name = Some(asString(v))
	}
	if v, ok := present(values, "description"); ok {
		c.Description = Some(asString(v))
	}
	if v, ok := present(values, "vmtype"); ok {
		c.VMType = Some(asString(v))
	}
	if v, ok := present(values, "regions"); ok {
		c.Regions = Some(asIntMap(v))
	}
	if v, ok := present(values, "hostname"); ok {
		c.Hostname = Some(asString(v))
	}
	c.Envfile = asString(values["envfile"])
	if v, ok := present(values, "project"); ok {
		c.Project = Some(asString(v))
	}
	c.Packages = asStringSlice(values["packages"])
}

// values re-materializes the record as raw field values, suitable for
// merging with overrides and re-validating. Absent optionals are omitted.
func (c *Config) values() map[string]any {
	out := make(map[string]any, len(fields))
	if v, ok := c.Name.Get(); ok {
		out["name"] = v
	}
	if v, ok := c.Description.Get(); ok {
		out["description"] = v
	}
	if v, ok := c.VMType.Get(); ok {
		out["vmtype"] = v
	}
	if v, ok := c.Regions.Get(); ok {
		out["regions"] = v
	}
	if v, ok := c.Hostname.Get(); ok {
		out["hostname"] = v
	}
	out["envfile"] = c.Envfile
	if v, ok := c.Project.Get(); ok {
		out["project"] = v
	}
	out["packages"] = c.Packages
	return out
}

func present(values map[string]any, key string) (any, bool) {
	v, ok := values[key]
	if !ok || v == nil {
		return nil, false
	}
	// Mirror the validator's absence sentinel: nil pointers are "not set",
	// non-nil pointers contribute their pointee.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		return rv.Elem().Interface(), true
	}
	return v, true
}

func asString(v any) string {
	return reflect.ValueOf(v).String()
}

func asInt(v any) int {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	}
	return 0
}

func asStringSlice(v any) []string {
	rv := reflect.ValueOf(v)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = asString(rv.Index(i).Interface())
	}
	return out
}

func asIntMap(v any) map[string]int {
	rv := reflect.ValueOf(v)
	out := make(map[string]int, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[asString(iter.Key().Interface())] = asInt(iter.Value().Interface())
	}
	return out
}
