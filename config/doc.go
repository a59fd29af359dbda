// Package config holds the validated deployment configuration record
// (cloud.yml).
//
// A Config is constructed once from raw field values and validated at
// construction: a caller never receives a record with an invalid field.
// Derived copies made with WithOverrides pass through the same validation.
// File locations are always explicit parameters; the package keeps no
// process-wide default path.
package config
