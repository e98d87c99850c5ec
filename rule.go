package messages

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Rule is a single schema facet: it validates a value and can describe
// itself on an OpenAPI schema. Describe receives both the parent schema
// (for object-level facets such as required) and the ref of the value
// being described.
type Rule interface {
	Validate(value any) error
	Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
}

// Validator is implemented by every catalog type.
type Validator interface {
	Validate() error
}

// ValueRuler is implemented by simple types (text wrappers, identifiers,
// code sets) that are fully described by a flat rule list.
type ValueRuler interface {
	ValueRules() []Rule
}

type customRule struct {
	f    func(any) error
	desc string
}

// Custom returns a rule that uses f for validation and desc for
// documentation.
func Custom(f func(any) error, desc string) Rule {
	return customRule{f: f, desc: desc}
}

func (r customRule) Validate(value any) error {
	return r.f(value)
}

func (r customRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref.Value, r.desc)
	return nil
}

type describeRule struct {
	desc string
}

// Describe returns a documentation-only rule that appends desc to the
// schema description.
func Describe(desc string) Rule {
	return describeRule{desc: desc}
}

func (r describeRule) Validate(_ any) error {
	return nil
}

func (r describeRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref.Value, r.desc)
	return nil
}

func appendDescription(s *openapi3.Schema, desc string) {
	if s.Description != "" && !strings.HasSuffix(s.Description, " ") {
		s.Description += " "
	}
	s.Description += desc
}
