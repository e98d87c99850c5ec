package messages

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDate(t *testing.T) {
	r := Date("2006-01-02", "date")

	require.Nil(t, r.Validate("2024-02-29"))

	err := r.Validate("2023-02-29")
	require.NotNil(t, err)
	require.Equal(t, CodeBadPattern, err.(*ValidationError).Code)

	require.NotNil(t, r.Validate("20240229"))
	require.NotNil(t, r.Validate(""))
}

func TestDateTime(t *testing.T) {
	r := Date(time.RFC3339, "date-time")

	require.Nil(t, r.Validate("2024-06-01T10:15:30Z"))
	require.Nil(t, r.Validate("2024-06-01T10:15:30.250+02:00"))
	require.NotNil(t, r.Validate("2024-06-01 10:15:30"))
}
