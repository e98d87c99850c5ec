package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOneOf(t *testing.T) {
	r := OneOf("CRDT", "DBIT")

	require.Nil(t, r.Validate("CRDT"))
	require.Nil(t, r.Validate("DBIT"))

	err := r.Validate("XXXX")
	require.NotNil(t, err)
	require.Equal(t, CodeNotInSet, err.(*ValidationError).Code)
	require.Contains(t, err.Error(), "CRDT, DBIT")

	err = r.Validate("")
	require.NotNil(t, err)
	require.Equal(t, CodeNotInSet, err.(*ValidationError).Code)
}
