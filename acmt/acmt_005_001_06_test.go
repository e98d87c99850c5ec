package acmt

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

func ptr[T any](v T) *T { return &v }

func sampleStatusRequest() RequestForAccountManagementStatusReportDocument {
	return RequestForAccountManagementStatusReportDocument{
		ReqForAcctMgmtStsRpt: RequestForAccountManagementStatusReportV06{
			MsgId: common.MessageIdentification1{
				Id:      "ACMT005-2024-0007",
				CreDtTm: "2024-02-01T10:15:00Z",
			},
			ReqDtls: AccountManagementMessageReference5{
				LkdRef: &LinkedMessage5Choice{
					PrvsRef: &AdditionalReference13{
						Ref:   "ACMT001-2024-0003",
						MsgNm: ptr(common.Max35Text("acmt.001.001.08")),
						RefIssr: &PartyIdentification125Choice{
							AnyBIC: ptr(common.AnyBICDec2014Identifier("UBSWCHZH80A")),
						},
					},
				},
				StsReqTp: AccountManagementType3CodeACCO,
				InvstmtAcct: &InvestmentAccount77{
					AcctId: "ACCT-556677",
					Nm:     ptr(common.Max35Text("Retirement savings")),
				},
			},
		},
	}
}

func TestRequestForAccountManagementStatusReport_Valid(t *testing.T) {
	doc := sampleStatusRequest()
	require.NoError(t, doc.Validate())
}

func TestRequestForAccountManagementStatusReport_StatusType(t *testing.T) {
	doc := sampleStatusRequest()
	doc.ReqForAcctMgmtStsRpt.ReqDtls.StsReqTp = "ACCT"

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeNotInSet, verr.Code)
	require.Equal(t, "ReqForAcctMgmtStsRpt.ReqDtls.StsReqTp", verr.Path)
}

func TestRequestForAccountManagementStatusReport_LinkedReference(t *testing.T) {
	doc := sampleStatusRequest()
	doc.ReqForAcctMgmtStsRpt.ReqDtls.LkdRef.PrvsRef.RefIssr.AnyBIC =
		ptr(common.AnyBICDec2014Identifier("UBS"))

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "ReqForAcctMgmtStsRpt.ReqDtls.LkdRef.PrvsRef.RefIssr.AnyBIC", verr.Path)
}

func TestRequestForAccountManagementStatusReport_EmptyMessageID(t *testing.T) {
	doc := sampleStatusRequest()
	doc.ReqForAcctMgmtStsRpt.MsgId.Id = ""

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeTooShort, verr.Code)
	require.Equal(t, "ReqForAcctMgmtStsRpt.MsgId.Id", verr.Path)
}

func TestRequestForAccountManagementStatusReport_XML(t *testing.T) {
	doc := sampleStatusRequest()

	raw, err := xml.Marshal(&doc)
	require.NoError(t, err)
	require.Contains(t, string(raw), `xmlns="urn:iso:std:iso:20022:tech:xsd:acmt.005.001.06"`)
	require.Contains(t, string(raw), "<StsReqTp>ACCO</StsReqTp>")

	var decoded RequestForAccountManagementStatusReportDocument
	require.NoError(t, xml.Unmarshal(raw, &decoded))
	require.NoError(t, decoded.Validate())
}
