package messages

import (
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/require"
)

func newSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	return openapi3.NewSchema(), &openapi3.SchemaRef{Value: openapi3.NewSchema()}
}

func TestCustom(t *testing.T) {
	bad := errors.New("checksum mismatch")
	r := Custom(func(v any) error {
		if v == "bad" {
			return bad
		}
		return nil
	}, "must pass the checksum")

	require.Nil(t, ValidateValue("good", r))
	require.ErrorIs(t, ValidateValue("bad", r), bad)
}

func TestCustomDescribe(t *testing.T) {
	r := Custom(func(any) error { return nil }, "must pass the checksum")

	schema, ref := newSchemaRef()
	require.NoError(t, r.Describe("field", schema, ref))
	require.Equal(t, "must pass the checksum", ref.Value.Description)
}

func TestDescribe(t *testing.T) {
	r := Describe("an opaque reference assigned by the sender")

	require.Nil(t, r.Validate("anything"))

	schema, ref := newSchemaRef()
	require.NoError(t, r.Describe("field", schema, ref))
	require.Equal(t, "an opaque reference assigned by the sender", ref.Value.Description)
}

func TestDescribeAppends(t *testing.T) {
	schema, ref := newSchemaRef()
	ref.Value.Description = "existing"

	require.NoError(t, Describe("suffix").Describe("field", schema, ref))
	require.Equal(t, "existing suffix", ref.Value.Description)
}
