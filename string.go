package messages

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type stringRule struct {
	validation.StringRule
	predicate func(string) bool
	desc      string
}

// NewStringRule returns a rule built from a string predicate, using desc as
// both the error message and the schema description.
func NewStringRule(predicate func(string) bool, desc string) Rule {
	return stringRule{
		validation.NewStringRule(predicate, desc),
		predicate,
		desc,
	}
}

func (r stringRule) Validate(value any) error {
	// Ozzo skips empty strings; run the predicate on them explicitly.
	if s, ok := stringValue(value); ok && s == "" {
		if !r.predicate("") {
			return NewValidationError(CodeBadPattern, r.desc)
		}
		return nil
	}
	if err := r.StringRule.Validate(value); err != nil {
		return NewValidationError(CodeBadPattern, r.desc)
	}
	return nil
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref.Value, r.desc)
	return nil
}

// Country returns a rule that checks for an ISO 3166-1 alpha-2 country code
// registered with the standard, not merely two capital letters.
func Country() Rule {
	return NewStringRule(govalidator.IsISO3166Alpha2, "must be a registered ISO 3166-1 alpha-2 country code")
}

// Currency returns a rule that checks for a registered ISO 4217 currency
// code.
func Currency() Rule {
	return NewStringRule(govalidator.IsISO4217, "must be a registered ISO 4217 currency code")
}
