package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
)

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.NotNil(t, err)
	ve, ok := err.(*messages.ValidationError)
	require.True(t, ok, "expected *messages.ValidationError, got %T", err)
	require.Equal(t, code, ve.Code)
}

func TestMax35Text(t *testing.T) {
	require.Nil(t, Max35Text("NOTIF-2024-001").Validate())

	requireCode(t, Max35Text("").Validate(), messages.CodeTooShort)
	requireCode(t, Max35Text(strings.Repeat("x", 36)).Validate(), messages.CodeTooLong)
}

func TestMax140Text(t *testing.T) {
	require.Nil(t, Max140Text(strings.Repeat("y", 140)).Validate())
	requireCode(t, Max140Text(strings.Repeat("y", 141)).Validate(), messages.CodeTooLong)
}

func TestExact4AlphaNumericText(t *testing.T) {
	require.Nil(t, Exact4AlphaNumericText("AB12").Validate())

	requireCode(t, Exact4AlphaNumericText("AB1").Validate(), messages.CodeBadPattern)
	requireCode(t, Exact4AlphaNumericText("AB123").Validate(), messages.CodeBadPattern)
	requireCode(t, Exact4AlphaNumericText("AB-1").Validate(), messages.CodeBadPattern)
}

func TestMax15NumericText(t *testing.T) {
	require.Nil(t, Max15NumericText("42").Validate())
	require.Nil(t, Max15NumericText("123456789012345").Validate())

	requireCode(t, Max15NumericText("1234567890123456").Validate(), messages.CodeBadPattern)
	requireCode(t, Max15NumericText("12a").Validate(), messages.CodeBadPattern)
	requireCode(t, Max15NumericText("").Validate(), messages.CodeBadPattern)
}

func TestMax15PlusSignedNumericText(t *testing.T) {
	require.Nil(t, Max15PlusSignedNumericText("+3").Validate())
	require.Nil(t, Max15PlusSignedNumericText("3").Validate())
	requireCode(t, Max15PlusSignedNumericText("-3").Validate(), messages.CodeBadPattern)
}

func TestMax256Text(t *testing.T) {
	require.Nil(t, Max256Text(strings.Repeat("z", 256)).Validate())
	requireCode(t, Max256Text(strings.Repeat("z", 257)).Validate(), messages.CodeTooLong)
	requireCode(t, Max256Text("").Validate(), messages.CodeTooShort)
}

func TestBoundedNumericTexts(t *testing.T) {
	require.Nil(t, Exact3NumericText("978").Validate())
	require.Nil(t, Max3NumericText("4").Validate())
	require.Nil(t, Min2Max3NumericText("01").Validate())
	require.Nil(t, Min3Max4NumericText("0739").Validate())
	require.Nil(t, Min8Max28NumericText("5413330089600010").Validate())

	requireCode(t, Exact3NumericText("97").Validate(), messages.CodeBadPattern)
	requireCode(t, Max3NumericText("1000").Validate(), messages.CodeBadPattern)
	requireCode(t, Min2Max3NumericText("7").Validate(), messages.CodeBadPattern)
	requireCode(t, Min3Max4NumericText("12345").Validate(), messages.CodeBadPattern)
	requireCode(t, Min8Max28NumericText("4111").Validate(), messages.CodeBadPattern)
}
