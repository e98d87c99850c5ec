package messages

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type oneOfRule struct {
	validation.InRule
	values []string
}

// OneOf returns a rule that checks membership in a closed code set, in
// schema terms an enumeration facet.
func OneOf(values ...string) Rule {
	vs := make([]any, len(values))
	for i := range values {
		vs[i] = values[i]
	}
	return &oneOfRule{
		validation.In(vs...),
		values,
	}
}

func (r *oneOfRule) Validate(value any) error {
	s, ok := stringValue(value)
	if !ok {
		return NewValidationError(CodeNotInSet, r.message(fmt.Sprintf("%v", value)))
	}
	// Ozzo skips empty strings; an empty code is still outside the set.
	if s == "" {
		return NewValidationError(CodeNotInSet, r.message(""))
	}
	if err := r.InRule.Validate(s); err != nil {
		return NewValidationError(CodeNotInSet, r.message(s))
	}
	return nil
}

func (r *oneOfRule) message(got string) string {
	return fmt.Sprintf("'%s' is not one of %s", got, strings.Join(r.values, ", "))
}

func (r *oneOfRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	enum := make([]any, len(r.values))
	for i := range r.values {
		enum[i] = r.values[i]
	}
	ref.Value.Enum = enum
	return nil
}
