package common

import (
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
)

func TestCreditDebitCode(t *testing.T) {
	require.Nil(t, CreditDebitCodeCRDT.Validate())
	require.Nil(t, CreditDebitCodeDBIT.Validate())

	requireCode(t, CreditDebitCode("CRED").Validate(), messages.CodeNotInSet)
	requireCode(t, CreditDebitCode("").Validate(), messages.CodeNotInSet)
}

func TestAddressType2Code(t *testing.T) {
	require.Nil(t, AddressType2CodeHOME.Validate())
	requireCode(t, AddressType2Code("WORK").Validate(), messages.CodeNotInSet)
}

func TestTaxRecordPeriod1Code(t *testing.T) {
	require.Nil(t, TaxRecordPeriod1CodeMM07.Validate())
	require.Nil(t, TaxRecordPeriod1CodeHLF2.Validate())
	requireCode(t, TaxRecordPeriod1Code("MM13").Validate(), messages.CodeNotInSet)
}

func TestCardCodes(t *testing.T) {
	require.Nil(t, AttendanceContext1CodeATTD.Validate())
	require.Nil(t, TransactionChannel1CodeECOM.Validate())
	require.Nil(t, CardPaymentServiceType2CodeDCCV.Validate())
	require.Nil(t, CSCManagement1CodeBYPS.Validate())
	require.Nil(t, CardDataReading1CodeCTLS.Validate())
	require.Nil(t, CardholderVerificationCapability1CodeSCEC.Validate())
	require.Nil(t, OnLineCapability1CodeSMON.Validate())
	require.Nil(t, POIComponentType1CodePEDV.Validate())
	require.Nil(t, UserInterface2CodeMDSP.Validate())

	requireCode(t, TransactionEnvironment1Code("SHOP").Validate(), messages.CodeNotInSet)
	requireCode(t, PartyType3Code("TAXH").Validate(), messages.CodeNotInSet)
	requireCode(t, PartyType4Code("OPOI").Validate(), messages.CodeNotInSet)
}

func TestDateTypes(t *testing.T) {
	require.Nil(t, ISODate("2024-06-01").Validate())
	require.Nil(t, ISODateTime("2024-06-01T10:15:30Z").Validate())
	require.Nil(t, ISOTime("10:15:30").Validate())
	require.Nil(t, ISOYearMonth("2024-06").Validate())

	requireCode(t, ISODate("01.06.2024").Validate(), messages.CodeBadPattern)
	requireCode(t, ISODateTime("2024-06-01").Validate(), messages.CodeBadPattern)
}
