package common

import (
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
)

func TestLEIIdentifier(t *testing.T) {
	require.Nil(t, LEIIdentifier("529900T8BM49AURSDO55").Validate())

	requireCode(t, LEIIdentifier("529900T8BM49AURSDO5").Validate(), messages.CodeBadPattern)
	requireCode(t, LEIIdentifier("529900t8bm49aursdo55").Validate(), messages.CodeBadPattern)
}

func TestAnyBICDec2014Identifier(t *testing.T) {
	require.Nil(t, AnyBICDec2014Identifier("DEUTDEFF").Validate())
	require.Nil(t, AnyBICDec2014Identifier("DEUTDEFF500").Validate())

	requireCode(t, AnyBICDec2014Identifier("DEUTDEFF50").Validate(), messages.CodeBadPattern)
	requireCode(t, AnyBICDec2014Identifier("deutdeff").Validate(), messages.CodeBadPattern)
}

func TestIBAN2007Identifier(t *testing.T) {
	require.Nil(t, IBAN2007Identifier("DE89370400440532013000").Validate())
	require.Nil(t, IBAN2007Identifier("CH9300762011623852957").Validate())

	requireCode(t, IBAN2007Identifier("D189370400440532013000").Validate(), messages.CodeBadPattern)
	requireCode(t, IBAN2007Identifier("DE8937040044053201300000000000000000").Validate(), messages.CodeBadPattern)
}

func TestUUIDv4Identifier(t *testing.T) {
	require.Nil(t, UUIDv4Identifier("7a5c8f3e-1b2d-4c6e-8f9a-0b1c2d3e4f5a").Validate())

	// not version 4
	requireCode(t, UUIDv4Identifier("7a5c8f3e-1b2d-1c6e-8f9a-0b1c2d3e4f5a").Validate(), messages.CodeBadPattern)
	// uppercase not allowed
	requireCode(t, UUIDv4Identifier("7A5C8F3E-1B2D-4C6E-8F9A-0B1C2D3E4F5A").Validate(), messages.CodeBadPattern)
}

func TestPhoneNumber(t *testing.T) {
	require.Nil(t, PhoneNumber("+49-6912345678").Validate())
	requireCode(t, PhoneNumber("06912345678").Validate(), messages.CodeBadPattern)
}

func TestCountryCode(t *testing.T) {
	require.Nil(t, CountryCode("DE").Validate())
	require.Nil(t, CountryCode("CH").Validate())

	requireCode(t, CountryCode("DEU").Validate(), messages.CodeBadPattern)
	// shaped correctly but not a registered country
	requireCode(t, CountryCode("XX").Validate(), messages.CodeBadPattern)
}

func TestActiveCurrencyCode(t *testing.T) {
	require.Nil(t, ActiveCurrencyCode("EUR").Validate())

	requireCode(t, ActiveCurrencyCode("eur").Validate(), messages.CodeBadPattern)
	requireCode(t, ActiveCurrencyCode("ZZZ").Validate(), messages.CodeBadPattern)
}

func TestActiveOrHistoricCurrencyCodeSkipsRegistry(t *testing.T) {
	// withdrawn currency, still shape-valid
	require.Nil(t, ActiveOrHistoricCurrencyCode("DEM").Validate())
	requireCode(t, ActiveOrHistoricCurrencyCode("DM").Validate(), messages.CodeBadPattern)
}
