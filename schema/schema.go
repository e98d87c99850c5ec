// Package schema generates OpenAPI 3 schemas for the message catalog.
// Facets carried by the value types (length, pattern, enum, bounds) are
// folded into the generated schema, so the same rules that drive
// Validate also document the wire format.
package schema

import (
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"

	messages "github.com/codetiger/messages-sub000"
)

// applyValueRules checks whether t carries its own validation rules and
// applies each rule's Describe to the schema. This is how facets of
// types like Max35Text or a currency code end up as minLength,
// maxLength, pattern or enum in the output.
func applyValueRules(t reflect.Type, name string, schema *openapi3.Schema) error {
	inst := reflect.New(t)
	vr, ok := inst.Interface().(messages.ValueRuler)
	if !ok {
		return nil
	}
	ref := &openapi3.SchemaRef{Value: schema}
	for _, rule := range vr.ValueRules() {
		if err := rule.Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}

func customizer() openapi3gen.SchemaCustomizerFn {
	return func(name string, t reflect.Type, _ reflect.StructTag, schema *openapi3.Schema) error {
		return applyValueRules(t, name, schema)
	}
}

// NewSchemaRefForValue generates an OpenAPI schema for the given
// message or component, applying the validation rules of every
// [messages.ValueRuler] in its type tree.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(customizer()))
	return g.NewSchemaRefForValue(value, nil)
}
