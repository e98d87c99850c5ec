package camt

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

func ptr[T any](v T) *T { return &v }

func sampleNotification() BankToCustomerDebitCreditNotificationDocument {
	return BankToCustomerDebitCreditNotificationDocument{
		BkToCstmrDbtCdtNtfctn: BankToCustomerDebitCreditNotificationV08{
			GrpHdr: GroupHeader81{
				MsgId:   "NTFCTN-20240115-0001",
				CreDtTm: "2024-01-15T08:30:00Z",
			},
			Ntfctn: []AccountNotification17{
				{
					Id:      "NTF-001",
					CreDtTm: ptr(common.ISODateTime("2024-01-15T08:30:00Z")),
					Acct: common.CashAccount39{
						Id: common.AccountIdentification4Choice{
							IBAN: ptr(common.IBAN2007Identifier("DE89370400440532013000")),
						},
						Ccy: ptr(common.ActiveOrHistoricCurrencyCode("EUR")),
					},
					Ntry: []ReportEntry10{
						{
							NtryRef:   ptr(common.Max35Text("ENTRY-1")),
							Amt:       common.ActiveOrHistoricCurrencyAndAmount{Value: 1250.5, Ccy: "EUR"},
							CdtDbtInd: common.CreditDebitCodeCRDT,
							Sts:       EntryStatus1Choice{Cd: ptr(common.ExternalEntryStatus1Code("BOOK"))},
							BookgDt: &common.DateAndDateTime2Choice{
								Dt: ptr(common.ISODate("2024-01-15")),
							},
							BkTxCd: BankTransactionCodeStructure4{
								Domn: &BankTransactionCodeStructure5{
									Cd: "PMNT",
									Fmly: BankTransactionCodeStructure6{
										Cd:        "RCDT",
										SubFmlyCd: "ESCT",
									},
								},
							},
							NtryDtls: []EntryDetails9{
								{
									TxDtls: []EntryTransaction10{
										{
											Refs: &TransactionReferences6{
												EndToEndId: ptr(common.Max35Text("E2E-42")),
												UETR:       ptr(common.UUIDv4Identifier("7dca1a32-9df5-4a9e-8d1b-2f3ab56c9d01")),
											},
											Amt:       ptr(common.ActiveOrHistoricCurrencyAndAmount{Value: 1250.5, Ccy: "EUR"}),
											CdtDbtInd: ptr(common.CreditDebitCodeCRDT),
											RltdPties: &TransactionParties6{
												Dbtr: &common.Party40Choice{
													Pty: &common.PartyIdentification135{
														Nm: ptr(common.Max140Text("ACME Industrie GmbH")),
													},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestBankToCustomerDebitCreditNotification_Valid(t *testing.T) {
	doc := sampleNotification()
	require.NoError(t, doc.Validate())
}

func TestBankToCustomerDebitCreditNotification_HeaderPath(t *testing.T) {
	doc := sampleNotification()
	doc.BkToCstmrDbtCdtNtfctn.GrpHdr.MsgId = common.Max35Text(strings.Repeat("X", 36))

	err := doc.Validate()
	require.Error(t, err)

	var verr *messages.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, messages.CodeTooLong, verr.Code)
	require.Equal(t, "BkToCstmrDbtCdtNtfctn.GrpHdr.MsgId", verr.Path)
}

func TestBankToCustomerDebitCreditNotification_DeepEntryPath(t *testing.T) {
	doc := sampleNotification()
	doc.BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0].NtryDtls[0].TxDtls[0].Refs.UETR =
		ptr(common.UUIDv4Identifier("not-a-uuid"))

	err := doc.Validate()
	require.Error(t, err)

	var verr *messages.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t,
		"BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0].NtryDtls[0].TxDtls[0].Refs.UETR",
		verr.Path)
}

func TestBankToCustomerDebitCreditNotification_AmountCurrency(t *testing.T) {
	doc := sampleNotification()
	doc.BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0].Amt.Ccy = "EURO"

	err := doc.Validate()
	require.Error(t, err)

	var verr *messages.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "BkToCstmrDbtCdtNtfctn.Ntfctn[0].Ntry[0].Amt.Ccy", verr.Path)
}

func TestBankToCustomerDebitCreditNotification_ShortCircuit(t *testing.T) {
	doc := sampleNotification()
	doc.BkToCstmrDbtCdtNtfctn.GrpHdr.MsgId = ""
	doc.BkToCstmrDbtCdtNtfctn.Ntfctn[0].Id = common.Max35Text(strings.Repeat("Y", 40))

	// The header fails first; the notification is never reached.
	var verr *messages.ValidationError
	require.ErrorAs(t, doc.Validate(), &verr)
	require.Equal(t, "BkToCstmrDbtCdtNtfctn.GrpHdr.MsgId", verr.Path)
	require.Equal(t, messages.CodeTooShort, verr.Code)
}

func TestBankToCustomerDebitCreditNotification_XMLNamespace(t *testing.T) {
	doc := sampleNotification()

	raw, err := xml.Marshal(&doc)
	require.NoError(t, err)
	require.Contains(t, string(raw), `xmlns="urn:iso:std:iso:20022:tech:xsd:camt.054.001.08"`)
	require.Contains(t, string(raw), "<BkToCstmrDbtCdtNtfctn>")
	require.Contains(t, string(raw), `<Amt Ccy="EUR">1250.5</Amt>`)

	var decoded BankToCustomerDebitCreditNotificationDocument
	require.NoError(t, xml.Unmarshal(raw, &decoded))
	require.NoError(t, decoded.Validate())
	require.Equal(t, doc.BkToCstmrDbtCdtNtfctn.GrpHdr.MsgId, decoded.BkToCstmrDbtCdtNtfctn.GrpHdr.MsgId)
}

func TestTotalsPerBankTransactionCode(t *testing.T) {
	totals := TotalTransactions6{
		TtlNtries: &NumberAndSumOfTransactions4{
			NbOfNtries: ptr(common.Max15NumericText("12")),
			Sum:        ptr(common.DecimalNumber(18900.25)),
			TtlNetNtry: &common.AmountAndDirection35{
				Amt:       4200.75,
				CdtDbtInd: common.CreditDebitCodeDBIT,
			},
		},
		TtlNtriesPerBkTxCd: []TotalsPerBankTransactionCode5{
			{
				NbOfNtries: ptr(common.Max15NumericText("3")),
				BkTxCd: BankTransactionCodeStructure4{
					Prtry: &ProprietaryBankTransactionCodeStructure1{Cd: "NCHG"},
				},
			},
		},
	}
	require.NoError(t, totals.Validate())

	totals.TtlNtriesPerBkTxCd[0].NbOfNtries = ptr(common.Max15NumericText("three"))
	var verr *messages.ValidationError
	require.ErrorAs(t, totals.Validate(), &verr)
	require.Equal(t, messages.CodeBadPattern, verr.Code)
	require.Equal(t, "TtlNtriesPerBkTxCd[0].NbOfNtries", verr.Path)
}

func TestCashAvailabilityDateChoice(t *testing.T) {
	avlbty := CashAvailability1{
		Dt:        CashAvailabilityDate1Choice{NbOfDays: ptr(common.Max15PlusSignedNumericText("+2"))},
		Amt:       common.ActiveOrHistoricCurrencyAndAmount{Value: 99.99, Ccy: "GBP"},
		CdtDbtInd: common.CreditDebitCodeCRDT,
	}
	require.NoError(t, avlbty.Validate())

	avlbty.Dt.ActlDt = ptr(common.ISODate("2024/01/15"))
	var verr *messages.ValidationError
	require.ErrorAs(t, avlbty.Validate(), &verr)
	require.Equal(t, "Dt.ActlDt", verr.Path)
}

func TestChargesRecord(t *testing.T) {
	chrgs := Charges6{
		TtlChrgsAndTaxAmt: ptr(common.ActiveOrHistoricCurrencyAndAmount{Value: 3.5, Ccy: "USD"}),
		Rcrd: []ChargesRecord3{
			{
				Amt:       common.ActiveOrHistoricCurrencyAndAmount{Value: 3.5, Ccy: "USD"},
				CdtDbtInd: ptr(common.CreditDebitCodeDBIT),
				Br:        ptr(common.ChargeBearerType1CodeSHAR),
			},
		},
	}
	require.NoError(t, chrgs.Validate())

	chrgs.Rcrd[0].Amt.Value = -3.5
	var verr *messages.ValidationError
	require.ErrorAs(t, chrgs.Validate(), &verr)
	require.Equal(t, messages.CodeBelowMin, verr.Code)
	require.Equal(t, "Rcrd[0].Amt.Value", verr.Path)
}

func TestRemittanceInformationThroughTransaction(t *testing.T) {
	tx := EntryTransaction10{
		RmtInf: &common.RemittanceInformation16{
			Strd: []common.StructuredRemittanceInformation16{
				{
					CdtrRefInf: &common.CreditorReferenceInformation2{
						Tp: &common.CreditorReferenceType2{
							CdOrPrtry: common.CreditorReferenceType1Choice{
								Cd: ptr(common.DocumentType3CodeSCOR),
							},
						},
						Ref: ptr(common.Max35Text("RF18539007547034")),
					},
				},
			},
		},
	}
	require.NoError(t, tx.Validate())

	tx.RmtInf.Strd[0].CdtrRefInf.Tp.CdOrPrtry.Cd = ptr(common.DocumentType3Code("XXXX"))
	var verr *messages.ValidationError
	require.ErrorAs(t, tx.Validate(), &verr)
	require.Equal(t, messages.CodeNotInSet, verr.Code)
	require.Equal(t, "RmtInf.Strd[0].CdtrRefInf.Tp.CdOrPrtry.Cd", verr.Path)
}
