package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	r := Length(1, 35)

	require.Nil(t, r.Validate("A"))
	require.Nil(t, r.Validate("ABCDEFGHIJKLMNOPQRSTUVWXYZ123456789")) // 35

	err := r.Validate("ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890") // 36
	require.NotNil(t, err)
	require.Equal(t, CodeTooLong, err.(*ValidationError).Code)

	err = r.Validate("")
	require.NotNil(t, err)
	require.Equal(t, CodeTooShort, err.(*ValidationError).Code)
}

func TestLengthCountsRunes(t *testing.T) {
	r := Length(1, 4)
	require.Nil(t, r.Validate("äöüß"))
	require.NotNil(t, r.Validate("äöüßé"))
}
