package schema

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codetiger/messages-sub000/common"
)

func TestNewSchemaRefForValue_TextFacets(t *testing.T) {
	ref, err := NewSchemaRefForValue(&common.MessageIdentification1{})
	require.NoError(t, err)
	require.NotNil(t, ref.Value)

	id := ref.Value.Properties["Id"]
	require.NotNil(t, id)
	require.Equal(t, uint64(1), id.Value.MinLength)
	require.NotNil(t, id.Value.MaxLength)
	require.Equal(t, uint64(35), *id.Value.MaxLength)
}

func TestNewSchemaRefForValue_PatternFacet(t *testing.T) {
	type holder struct {
		LEI common.LEIIdentifier `json:"LEI"`
	}

	ref, err := NewSchemaRefForValue(&holder{})
	require.NoError(t, err)

	lei := ref.Value.Properties["LEI"]
	require.NotNil(t, lei)
	require.NotEmpty(t, lei.Value.Pattern)
}

func TestNewSchemaRefForValue_EnumFacet(t *testing.T) {
	type holder struct {
		Ind common.CreditDebitCode `json:"Ind"`
	}

	ref, err := NewSchemaRefForValue(&holder{})
	require.NoError(t, err)

	ind := ref.Value.Properties["Ind"]
	require.NotNil(t, ind)
	require.ElementsMatch(t, []any{"CRDT", "DBIT"}, ind.Value.Enum)
}

func TestNewSchemaRefForValue_NestedComposite(t *testing.T) {
	ref, err := NewSchemaRefForValue(&common.PostalAddress24{})
	require.NoError(t, err)

	ctry := ref.Value.Properties["Ctry"]
	require.NotNil(t, ctry)
	require.NotEmpty(t, ctry.Value.Pattern)

	adrLine := ref.Value.Properties["AdrLine"]
	require.NotNil(t, adrLine)
	require.NotNil(t, adrLine.Value.Items)
}
