package messages

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type dateRule struct {
	validation.DateRule
	layout, format string
}

// Date returns a rule that checks a string against the given time layout.
// format names the schema format (e.g. "date", "date-time").
func Date(layout, format string) Rule {
	return &dateRule{
		validation.Date(layout),
		layout,
		format,
	}
}

func (r *dateRule) Validate(value any) error {
	// Ozzo skips empty strings; a date element carries a value or fails.
	if s, ok := stringValue(value); ok && s == "" {
		return r.mismatch()
	}
	if err := r.DateRule.Validate(value); err != nil {
		return r.mismatch()
	}
	return nil
}

func (r *dateRule) mismatch() *ValidationError {
	return NewValidationError(CodeBadPattern, "is not a valid "+r.format+" ("+r.layout+")")
}

func (r *dateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.format
	return nil
}
