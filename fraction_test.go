package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFractionDigits(t *testing.T) {
	r := FractionDigits(5)

	require.Nil(t, r.Validate(150.0))
	require.Nil(t, r.Validate(150.12345))

	err := r.Validate(0.123456)
	require.NotNil(t, err)
	require.Equal(t, CodeBadFraction, err.(*ValidationError).Code)
}

func TestFractionDigitsOnStrings(t *testing.T) {
	r := FractionDigits(2)
	require.Nil(t, r.Validate("150.12"))
	require.NotNil(t, r.Validate("150.123"))
}
