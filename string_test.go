package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountry(t *testing.T) {
	r := Country()

	require.Nil(t, r.Validate("DE"))
	require.Nil(t, r.Validate("US"))

	// shaped like a country code but not registered
	err := r.Validate("XX")
	require.NotNil(t, err)
	require.Equal(t, CodeBadPattern, err.(*ValidationError).Code)

	require.NotNil(t, r.Validate(""))
}

func TestCurrency(t *testing.T) {
	r := Currency()

	require.Nil(t, r.Validate("EUR"))
	require.Nil(t, r.Validate("CHF"))
	require.NotNil(t, r.Validate("EUROS"))
	require.NotNil(t, r.Validate("ZZZ"))
}
