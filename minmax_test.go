package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMin(t *testing.T) {
	r := Min(0)

	require.Nil(t, r.Validate(0.0))
	require.Nil(t, r.Validate(150.75))

	err := r.Validate(-0.01)
	require.NotNil(t, err)
	require.Equal(t, CodeBelowMin, err.(*ValidationError).Code)
}

func TestMinZeroValueStillChecked(t *testing.T) {
	err := Min(1).Validate(0.0)
	require.NotNil(t, err)
	require.Equal(t, CodeBelowMin, err.(*ValidationError).Code)
}

func TestMax(t *testing.T) {
	r := Max(100)

	require.Nil(t, r.Validate(100.0))

	err := r.Validate(100.5)
	require.NotNil(t, err)
	require.Equal(t, CodeAboveMax, err.(*ValidationError).Code)
}
