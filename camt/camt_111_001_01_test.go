package camt

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

func sampleInvestigation() InvestigationRequestDocument {
	return InvestigationRequestDocument{
		InvstgtnReq: InvestigationRequestV01{
			InvstgtnReq: InvestigationRequest2{
				MsgId:           "INVSTGTN-2024-0042",
				RqstrInvstgtnId: ptr(common.Max35Text("CASE-0042")),
				InvstgtnTp: InvestigationType1Choice{
					Cd: ptr(common.ExternalInvestigationType1Code("UTAP")),
				},
				Rqstr: common.Party40Choice{
					Agt: &common.BranchAndFinancialInstitutionIdentification6{
						FinInstnId: common.FinancialInstitutionIdentification18{
							BICFI: ptr(common.BICFIDec2014Identifier("COBADEFFXXX")),
						},
					},
				},
				Rspndr: common.Party40Choice{
					Agt: &common.BranchAndFinancialInstitutionIdentification6{
						FinInstnId: common.FinancialInstitutionIdentification18{
							BICFI: ptr(common.BICFIDec2014Identifier("BNPAFRPP")),
						},
					},
				},
			},
			Undrlyg: UnderlyingData2Choice{
				IntrBk: &UnderlyingPaymentTransaction7{
					OrgnlGrpInf: &UnderlyingGroupInformation1{
						OrgnlMsgId:   "PACS8-20240110-77",
						OrgnlMsgNmId: "pacs.008.001.08",
					},
					OrgnlEndToEndId:     ptr(common.Max35Text("E2E-77")),
					OrgnlUETR:           ptr(common.UUIDv4Identifier("9c0b1f94-55d2-4f21-9a93-1b5d0e2f8c44")),
					OrgnlIntrBkSttlmAmt: ptr(common.ActiveOrHistoricCurrencyAndAmount{Value: 50000, Ccy: "EUR"}),
					OrgnlIntrBkSttlmDt:  ptr(common.ISODate("2024-01-10")),
				},
			},
		},
	}
}

func TestInvestigationRequest_Valid(t *testing.T) {
	doc := sampleInvestigation()
	require.NoError(t, doc.Validate())
}

func TestInvestigationRequest_TypePath(t *testing.T) {
	doc := sampleInvestigation()
	doc.InvstgtnReq.InvstgtnReq.InvstgtnTp.Cd = ptr(common.ExternalInvestigationType1Code(""))

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeTooShort, verr.Code)
	require.Equal(t, "InvstgtnReq.InvstgtnReq.InvstgtnTp.Cd", verr.Path)
}

func TestInvestigationRequest_UnderlyingPath(t *testing.T) {
	doc := sampleInvestigation()
	doc.InvstgtnReq.Undrlyg.IntrBk.OrgnlUETR = ptr(common.UUIDv4Identifier("9C0B1F94-55D2-4F21-9A93-1B5D0E2F8C44"))

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "InvstgtnReq.Undrlyg.IntrBk.OrgnlUETR", verr.Path)
}

func TestInvestigationRequest_RequesterBIC(t *testing.T) {
	doc := sampleInvestigation()
	doc.InvstgtnReq.InvstgtnReq.Rqstr.Agt.FinInstnId.BICFI = ptr(common.BICFIDec2014Identifier("cobadeff"))

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "InvstgtnReq.InvstgtnReq.Rqstr.Agt.FinInstnId.BICFI", verr.Path)
}

func TestInvestigationRequest_XMLNamespace(t *testing.T) {
	doc := sampleInvestigation()

	raw, err := xml.Marshal(&doc)
	require.NoError(t, err)
	require.Contains(t, string(raw), `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.111.001.01"`)
	require.Contains(t, string(raw), "<OrgnlMsgNmId>pacs.008.001.08</OrgnlMsgNmId>")

	var decoded InvestigationRequestDocument
	require.NoError(t, xml.Unmarshal(raw, &decoded))
	require.NoError(t, decoded.Validate())
}
