package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type refText string

func (v refText) Validate() error {
	return ValidateValue(string(v), Length(1, 4))
}

func TestValidateValueShortCircuits(t *testing.T) {
	err := ValidateValue("", Length(1, 35), OneOf("CRDT", "DBIT"))
	require.NotNil(t, err)
	// the length rule fires first
	require.Equal(t, CodeTooShort, err.(*ValidationError).Code)
}

func TestValidateEach(t *testing.T) {
	require.Nil(t, ValidateEach("Ref", []refText{"a", "b"}))

	err := ValidateEach("Ref", []refText{"a", "toolong", "b"})
	require.NotNil(t, err)
	require.Equal(t, "Ref[1]", err.(*ValidationError).Path)
}

func TestAtPathBuildsDottedTrail(t *testing.T) {
	err := NewValidationError(CodeBadPattern, "does not match")
	werr := AtPath(AtIndex(AtPath(error(err), "Ccy"), "Ntry", 2), "Ntfctn")
	require.Equal(t, "Ntfctn.Ntry[2].Ccy", werr.(*ValidationError).Path)
	require.Contains(t, werr.Error(), "Ntfctn.Ntry[2].Ccy: does not match (code 1005)")
}

func TestAtPathPassesNilThrough(t *testing.T) {
	require.Nil(t, AtPath(nil, "MsgId"))
}
