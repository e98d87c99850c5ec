package messages

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type patternRule struct {
	validation.MatchRule
	re *regexp.Regexp
}

// Pattern returns a rule that checks a string against the given regexp.
// XSD pattern facets anchor implicitly, so compile them with ^...$.
func Pattern(re *regexp.Regexp) Rule {
	return &patternRule{
		validation.Match(re),
		re,
	}
}

func (r *patternRule) Validate(value any) error {
	// Ozzo skips empty strings; the pattern facet applies regardless.
	if s, ok := stringValue(value); ok && s == "" {
		if r.re.MatchString("") {
			return nil
		}
		return r.mismatch()
	}
	if err := r.MatchRule.Validate(value); err != nil {
		return r.mismatch()
	}
	return nil
}

func (r *patternRule) mismatch() *ValidationError {
	return NewValidationError(CodeBadPattern, "does not match the required pattern "+r.re.String())
}

func (r *patternRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.re.String()
	return nil
}
