package messages

import (
	"fmt"
	"unicode/utf8"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a rule that checks if a string's rune length is within the
// given window. XSD minLength maps to min, maxLength to max.
func Length(min, max int) Rule {
	return &lengthRule{
		validation.RuneLength(min, max),
		min,
		max,
	}
}

func (r *lengthRule) Validate(value any) error {
	s, ok := stringValue(value)
	if !ok {
		return r.LengthRule.Validate(value)
	}
	// Ozzo treats empty strings as absent and skips them; the catalog's
	// minLength facet still applies.
	n := utf8.RuneCountInString(s)
	if n == 0 {
		if r.min > 0 {
			return r.tooShort()
		}
		return nil
	}
	if err := r.LengthRule.Validate(s); err != nil {
		if r.max > 0 && n > r.max {
			return r.tooLong()
		}
		return r.tooShort()
	}
	return nil
}

func (r *lengthRule) tooShort() *ValidationError {
	return NewValidationError(CodeTooShort, fmt.Sprintf("is shorter than the minimum length of %d", r.min))
}

func (r *lengthRule) tooLong() *ValidationError {
	return NewValidationError(CodeTooLong, fmt.Sprintf("exceeds the maximum length of %d", r.max))
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.MinLength = uint64(r.min)
	if r.max > 0 {
		max := uint64(r.max)
		ref.Value.MaxLength = &max
	}
	return nil
}
