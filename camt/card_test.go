package camt

import (
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

func sampleCardTransaction() CardTransaction17 {
	return CardTransaction17{
		Card: &PaymentCard4{
			PlainCardData: &PlainCardData1{
				PAN:    "5413330089600010",
				XpryDt: "2027-09",
				CardSctyCd: &CardSecurityInformation1{
					CSCMgmt: common.CSCManagement1CodePRST,
				},
			},
			CardBrnd: &common.GenericIdentification1{Id: "DEBITCARD"},
		},
		POI: &PointOfInteraction1{
			Id: common.GenericIdentification32{
				Id: "POI-0042",
				Tp: ptr(common.PartyType3CodeMERC),
			},
			Cpblties: &PointOfInteractionCapabilities1{
				CardRdngCpblties: []common.CardDataReading1Code{
					common.CardDataReading1CodeCICC,
					common.CardDataReading1CodeCTLS,
				},
				CrdhldrVrfctnCpblties: []common.CardholderVerificationCapability1Code{
					common.CardholderVerificationCapability1CodeNPIN,
				},
				OnLineCpblties: ptr(common.OnLineCapability1CodeONLN),
				DispCpblties: []DisplayCapabilities1{
					{DispTp: common.UserInterface2CodeCDSP, NbOfLines: "4", LineWidth: "20"},
				},
			},
			Cmpnt: []PointOfInteractionComponent1{
				{
					POICmpntTp: common.POIComponentType1CodeSOFT,
					VrsnNb:     ptr(common.Max16Text("2.1.0")),
				},
			},
		},
		Tx: &CardTransaction3Choice{
			Indv: &CardIndividualTransaction2{
				PmtCntxt: &PaymentContext3{
					CardPres:       ptr(common.TrueFalseIndicator(true)),
					AttndncCntxt:   ptr(common.AttendanceContext1CodeATTD),
					TxEnvt:         ptr(common.TransactionEnvironment1CodeMERC),
					CardDataNtryMd: common.CardDataReading1CodeCICC,
				},
				TxId: &TransactionIdentifier1{
					TxDtTm: "2024-01-15T08:29:12Z",
					TxRef:  "CARD-REF-77",
				},
			},
		},
	}
}

func TestCardTransaction_Valid(t *testing.T) {
	tx := sampleCardTransaction()
	require.NoError(t, tx.Validate())
}

func TestCardTransaction_PAN(t *testing.T) {
	tx := sampleCardTransaction()
	tx.Card.PlainCardData.PAN = "4111"

	var verr *messages.ValidationError
	require.ErrorAs(t, tx.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "Card.PlainCardData.PAN", verr.Path)
}

func TestCardTransaction_SecurityCodeManagement(t *testing.T) {
	tx := sampleCardTransaction()
	tx.Card.PlainCardData.CardSctyCd.CSCMgmt = "PRSN"

	var verr *messages.ValidationError
	require.ErrorAs(t, tx.Validate(), &verr)
	require.Equal(t, messages.CodeNotInSet, verr.Code)
	require.Equal(t, "Card.PlainCardData.CardSctyCd.CSCMgmt", verr.Path)
}

func TestCardTransaction_DisplayCapabilityPath(t *testing.T) {
	tx := sampleCardTransaction()
	tx.POI.Cpblties.DispCpblties[0].DispTp = "PDSP"

	var verr *messages.ValidationError
	require.ErrorAs(t, tx.Validate(), &verr)
	require.Equal(t, messages.CodeNotInSet, verr.Code)
	require.Equal(t, "POI.Cpblties.DispCpblties[0].DispTp", verr.Path)
}

func TestCardTransactionThroughEntry(t *testing.T) {
	doc := sampleNotification()
	tx := sampleCardTransaction()
	tx.Tx.Indv.PmtCntxt.AttndncCntxt = ptr(common.AttendanceContext1Code("ATND"))
	doc.BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0].NtryDtls[0].TxDtls[0].CardTx = &tx

	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, messages.CodeNotInSet, verr.Code)
	require.Equal(t,
		"BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0].NtryDtls[0].TxDtls[0].CardTx.Tx.Indv.PmtCntxt.AttndncCntxt",
		verr.Path)
}
