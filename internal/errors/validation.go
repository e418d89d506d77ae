package errors

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

// MetaFields is the meta key holding a validation failure's FieldErrors
const MetaFields = "validation_errors"

// FieldErrors maps a field path ("position.z", "redis.endpoints") to its problems
type FieldErrors map[string][]string

// String lists fields in sorted order
func (f FieldErrors) String() string {
	if len(f) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(f))
	for _, field := range slices.Sorted(maps.Keys(f)) {
		parts = append(parts, field+": "+strings.Join(f[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidationBuilder accumulates field errors; Build returns nil when there are none
type ValidationBuilder struct {
	fields FieldErrors
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{fields: FieldErrors{}}
}

// Field records a problem with a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf records a formatted problem with a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records a field rejected for reason
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// Required records field when value is blank
func (vb *ValidationBuilder) Required(field, value string) *ValidationBuilder {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
	return vb
}

// Positive records field unless value is a finite number above zero.
// Room measurements and zoom factors go through here.
func (vb *ValidationBuilder) Positive(field string, value float64) *ValidationBuilder {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		vb.Fieldf(field, "must be positive, got %g", value)
	}
	return vb
}

// Between records field unless lo <= value <= hi
func (vb *ValidationBuilder) Between(field string, value, lo, hi float64) *ValidationBuilder {
	if math.IsNaN(value) || value < lo || value > hi {
		vb.Fieldf(field, "must be between %g and %g, got %g", lo, hi, value)
	}
	return vb
}

// OneOf records field unless value is in allowed
func (vb *ValidationBuilder) OneOf(field, value string, allowed ...string) *ValidationBuilder {
	if !slices.Contains(allowed, value) {
		vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
	}
	return vb
}

// Fields returns the recorded problems
func (vb *ValidationBuilder) Fields() FieldErrors {
	return vb.fields
}

// Build returns an InvalidArgument error carrying the fields as meta, or nil
func (vb *ValidationBuilder) Build() error {
	if len(vb.fields) == 0 {
		return nil
	}
	return InvalidArgument(vb.fields.String()).WithMeta(MetaFields, vb.fields)
}

// FieldsOf extracts the FieldErrors from a validation failure
func FieldsOf(err error) FieldErrors {
	fields, _ := GetMeta(err)[MetaFields].(FieldErrors)
	return fields
}
