package auth

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

func ptr[T any](v T) *T { return &v }

func sampleAdHocQuery() DerivativesTradeReportQueryDocument {
	return DerivativesTradeReportQueryDocument{
		DerivsTradRptQry: DerivativesTradeReportQueryV02{
			RqstngAuthrty: PartyIdentification121Choice{
				AnyBIC: ptr(common.AnyBICDec2014Identifier("ESMAFRPP")),
			},
			TradQryData: TradeReportQuery13Choice{
				AdHocQry: &TradeQueryCriteria10{
					TradLifeCyclHstry: false,
					OutsdngTradInd:    true,
					TradPtyCrit: &TradePartyQueryCriteria5{
						Oprtr: Operation3CodeANDD,
						RptgCtrPty: &TradePartyIdentificationQuery8{
							Id: []common.LEIIdentifier{"529900T8BM49AURSDO55"},
						},
					},
					TradTpCrit: &TradeTypeQueryCriteria2{
						Oprtr:    Operation3CodeORRR,
						AsstClss: []ProductType4Code{ProductType4CodeINTR, ProductType4CodeCURR},
					},
					TmCrit: &TradeDateTimeQueryCriteria2{
						ExctnDtTm: &common.DateTimePeriod1{
							FrDtTm: "2024-01-01T00:00:00Z",
							ToDtTm: "2024-03-31T23:59:59Z",
						},
					},
				},
			},
		},
	}
}

func TestDerivativesTradeReportQuery_Valid(t *testing.T) {
	doc := sampleAdHocQuery()
	require.NoError(t, doc.Validate())
}

func TestDerivativesTradeReportQuery_RecurrentValid(t *testing.T) {
	doc := DerivativesTradeReportQueryDocument{
		DerivsTradRptQry: DerivativesTradeReportQueryV02{
			RqstngAuthrty: PartyIdentification121Choice{
				FullLglNm: ptr(common.Max350Text("European Securities and Markets Authority")),
				CtryCd:    ptr(common.CountryCode("FR")),
			},
			TradQryData: TradeReportQuery13Choice{
				RcrntQry: &TradeRecurrentQuery5{
					QryTp: "OUTSTANDING",
					Frqcy: TradeQueryExecutionFrequency3{
						ExctnFrqcy: common.Frequency6CodeWEEK,
						DlvryDay:   []WeekDay3Code{WeekDay3CodeMOND},
						DlvryTm:    []common.ISOTime{"06:00:00"},
					},
					VldUntil: "2024-12-31",
				},
			},
		},
	}
	require.NoError(t, doc.Validate())
}

func TestDerivativesTradeReportQuery_BadLEI(t *testing.T) {
	doc := sampleAdHocQuery()
	doc.DerivsTradRptQry.TradQryData.AdHocQry.TradPtyCrit.RptgCtrPty.Id[0] = "not-an-lei"

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t,
		"DerivsTradRptQry.TradQryData.AdHocQry.TradPtyCrit.RptgCtrPty.Id[0]",
		verr.Path)
}

func TestDerivativesTradeReportQuery_BadOperator(t *testing.T) {
	doc := sampleAdHocQuery()
	doc.DerivsTradRptQry.TradQryData.AdHocQry.TradTpCrit.Oprtr = "XORR"

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeNotInSet, verr.Code)
	require.Equal(t, "DerivsTradRptQry.TradQryData.AdHocQry.TradTpCrit.Oprtr", verr.Path)
}

func TestDerivativesTradeReportQuery_BadCountry(t *testing.T) {
	doc := sampleAdHocQuery()
	doc.DerivsTradRptQry.RqstngAuthrty.CtryCd = ptr(common.CountryCode("ZZ"))

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "DerivsTradRptQry.RqstngAuthrty.CtryCd", verr.Path)
}

func TestDerivativesTradeReportQuery_XML(t *testing.T) {
	doc := sampleAdHocQuery()

	raw, err := xml.Marshal(&doc)
	require.NoError(t, err)
	require.Contains(t, string(raw), `xmlns="urn:iso:std:iso:20022:tech:xsd:auth.090.001.02"`)
	require.Contains(t, string(raw), "<Oprtr>ANDD</Oprtr>")
	require.Contains(t, string(raw), "<OutsdngTradInd>true</OutsdngTradInd>")

	var decoded DerivativesTradeReportQueryDocument
	require.NoError(t, xml.Unmarshal(raw, &decoded))
	require.NoError(t, decoded.Validate())
}
