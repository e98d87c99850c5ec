package common

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
)

func ptr[T any](v T) *T { return &v }

func sampleParty() PartyIdentification135 {
	return PartyIdentification135{
		Nm: ptr(Max140Text("Muster GmbH")),
		PstlAdr: &PostalAddress24{
			StrtNm: ptr(Max70Text("Hauptstrasse")),
			BldgNb: ptr(Max16Text("17")),
			PstCd:  ptr(Max16Text("60311")),
			TwnNm:  ptr(Max35Text("Frankfurt am Main")),
			Ctry:   ptr(CountryCode("DE")),
		},
		Id: &Party38Choice{
			OrgId: &OrganisationIdentification29{
				AnyBIC: ptr(AnyBICDec2014Identifier("DEUTDEFF")),
				LEI:    ptr(LEIIdentifier("529900T8BM49AURSDO55")),
			},
		},
		CtryOfRes: ptr(CountryCode("DE")),
	}
}

func TestPartyIdentification135(t *testing.T) {
	p := sampleParty()
	require.Nil(t, p.Validate())
}

func TestPartyValidationReportsDeepPath(t *testing.T) {
	p := sampleParty()
	p.Id.OrgId.LEI = ptr(LEIIdentifier("bad"))

	err := p.Validate()
	requireCode(t, err, messages.CodeBadPattern)
	require.Equal(t, "Id.OrgId.LEI", err.(*messages.ValidationError).Path)
}

func TestPartyShortCircuitsOnFirstFailure(t *testing.T) {
	p := sampleParty()
	p.Nm = ptr(Max140Text(""))
	p.CtryOfRes = ptr(CountryCode("XXX"))

	err := p.Validate()
	requireCode(t, err, messages.CodeTooShort)
	require.Equal(t, "Nm", err.(*messages.ValidationError).Path)
}

func TestPartyXMLRoundTrip(t *testing.T) {
	p := sampleParty()

	b, err := xml.Marshal(&p)
	require.NoError(t, err)

	var got PartyIdentification135
	require.NoError(t, xml.Unmarshal(b, &got))
	require.Equal(t, p, got)
}

func TestPartyJSONOmitsAbsentFields(t *testing.T) {
	p := PartyIdentification135{Nm: ptr(Max140Text("Muster GmbH"))}

	b, err := json.Marshal(&p)
	require.NoError(t, err)
	require.JSONEq(t, `{"Nm":"Muster GmbH"}`, string(b))
}

func TestBranchAndFinancialInstitutionIdentification6(t *testing.T) {
	agt := BranchAndFinancialInstitutionIdentification6{
		FinInstnId: FinancialInstitutionIdentification18{
			BICFI: ptr(BICFIDec2014Identifier("COBADEFFXXX")),
			ClrSysMmbId: &ClearingSystemMemberIdentification2{
				ClrSysId: &ClearingSystemIdentification2Choice{Cd: ptr(ExternalClearingSystemIdentification1Code("DEBLZ"))},
				MmbId:    "37040044",
			},
		},
	}
	require.Nil(t, agt.Validate())

	agt.FinInstnId.ClrSysMmbId.ClrSysId.Cd = ptr(ExternalClearingSystemIdentification1Code("TOOLONG"))
	err := agt.Validate()
	requireCode(t, err, messages.CodeTooLong)
	require.Equal(t, "FinInstnId.ClrSysMmbId.ClrSysId.Cd", err.(*messages.ValidationError).Path)
}

func TestCashAccount39(t *testing.T) {
	acct := CashAccount39{
		Id:  AccountIdentification4Choice{IBAN: ptr(IBAN2007Identifier("DE89370400440532013000"))},
		Ccy: ptr(ActiveOrHistoricCurrencyCode("EUR")),
	}
	require.Nil(t, acct.Validate())

	acct.Id.IBAN = ptr(IBAN2007Identifier("bogus"))
	err := acct.Validate()
	requireCode(t, err, messages.CodeBadPattern)
	require.Equal(t, "Id.IBAN", err.(*messages.ValidationError).Path)
}
