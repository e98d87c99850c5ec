// Package camt holds the cash-management message set: the
// bank-to-customer debit/credit notification (camt.054.001.08) and the
// investigation request (camt.111.001.01).
package camt

import (
	"encoding/xml"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

// Camt05400108Namespace is the XML namespace of the
// camt.054.001.08 document.
const Camt05400108Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.054.001.08"

// BankToCustomerDebitCreditNotificationDocument is the camt.054 root
// envelope.
type BankToCustomerDebitCreditNotificationDocument struct {
	XMLName               xml.Name                                 `xml:"urn:iso:std:iso:20022:tech:xsd:camt.054.001.08 Document" json:"-"`
	BkToCstmrDbtCdtNtfctn BankToCustomerDebitCreditNotificationV08 `xml:"BkToCstmrDbtCdtNtfctn" json:"BkToCstmrDbtCdtNtfctn"`
}

func (d *BankToCustomerDebitCreditNotificationDocument) Validate() error {
	if err := d.BkToCstmrDbtCdtNtfctn.Validate(); err != nil {
		return messages.AtPath(err, "BkToCstmrDbtCdtNtfctn")
	}
	return nil
}

// BankToCustomerDebitCreditNotificationV08 notifies an account owner of
// entries booked to its account.
type BankToCustomerDebitCreditNotificationV08 struct {
	GrpHdr      GroupHeader81               `xml:"GrpHdr" json:"GrpHdr"`
	Ntfctn      []AccountNotification17     `xml:"Ntfctn" json:"Ntfctn"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *BankToCustomerDebitCreditNotificationV08) Validate() error {
	if err := m.GrpHdr.Validate(); err != nil {
		return messages.AtPath(err, "GrpHdr")
	}
	if err := messages.ValidateEach("Ntfctn", m.Ntfctn); err != nil {
		return err
	}
	return messages.ValidateEach("SplmtryData", m.SplmtryData)
}

// GroupHeader81 is the message-level header of the notification.
type GroupHeader81 struct {
	MsgId       common.Max35Text               `xml:"MsgId" json:"MsgId"`
	CreDtTm     common.ISODateTime             `xml:"CreDtTm" json:"CreDtTm"`
	MsgRcpt     *common.PartyIdentification135 `xml:"MsgRcpt,omitempty" json:"MsgRcpt,omitempty"`
	MsgPgntn    *common.Pagination1            `xml:"MsgPgntn,omitempty" json:"MsgPgntn,omitempty"`
	OrgnlBizQry *common.OriginalBusinessQuery1 `xml:"OrgnlBizQry,omitempty" json:"OrgnlBizQry,omitempty"`
	AddtlInf    *common.Max500Text             `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (h *GroupHeader81) Validate() error {
	if err := h.MsgId.Validate(); err != nil {
		return messages.AtPath(err, "MsgId")
	}
	if err := h.CreDtTm.Validate(); err != nil {
		return messages.AtPath(err, "CreDtTm")
	}
	if h.MsgRcpt != nil {
		if err := h.MsgRcpt.Validate(); err != nil {
			return messages.AtPath(err, "MsgRcpt")
		}
	}
	if h.MsgPgntn != nil {
		if err := h.MsgPgntn.Validate(); err != nil {
			return messages.AtPath(err, "MsgPgntn")
		}
	}
	if h.OrgnlBizQry != nil {
		if err := h.OrgnlBizQry.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlBizQry")
		}
	}
	if h.AddtlInf != nil {
		if err := h.AddtlInf.Validate(); err != nil {
			return messages.AtPath(err, "AddtlInf")
		}
	}
	return nil
}

// AccountNotification17 groups the entries reported for one account.
type AccountNotification17 struct {
	Id             common.Max35Text           `xml:"Id" json:"Id"`
	NtfctnPgntn    *common.Pagination1        `xml:"NtfctnPgntn,omitempty" json:"NtfctnPgntn,omitempty"`
	ElctrncSeqNb   *common.Number             `xml:"ElctrncSeqNb,omitempty" json:"ElctrncSeqNb,omitempty"`
	RptgSeq        *SequenceRange1Choice      `xml:"RptgSeq,omitempty" json:"RptgSeq,omitempty"`
	LglSeqNb       *common.Number             `xml:"LglSeqNb,omitempty" json:"LglSeqNb,omitempty"`
	CreDtTm        *common.ISODateTime        `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	FrToDt         *common.DateTimePeriod1    `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	CpyDplctInd    *common.CopyDuplicate1Code `xml:"CpyDplctInd,omitempty" json:"CpyDplctInd,omitempty"`
	RptgSrc        *ReportingSource1Choice    `xml:"RptgSrc,omitempty" json:"RptgSrc,omitempty"`
	Acct           common.CashAccount39       `xml:"Acct" json:"Acct"`
	RltdAcct       *common.CashAccount38      `xml:"RltdAcct,omitempty" json:"RltdAcct,omitempty"`
	Intrst         []AccountInterest4         `xml:"Intrst,omitempty" json:"Intrst,omitempty"`
	TxsSummry      *TotalTransactions6        `xml:"TxsSummry,omitempty" json:"TxsSummry,omitempty"`
	Ntry           []ReportEntry10            `xml:"Ntry,omitempty" json:"Ntry,omitempty"`
	AddtlNtfctnInf *common.Max500Text         `xml:"AddtlNtfctnInf,omitempty" json:"AddtlNtfctnInf,omitempty"`
}

func (n *AccountNotification17) Validate() error {
	if err := n.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if n.NtfctnPgntn != nil {
		if err := n.NtfctnPgntn.Validate(); err != nil {
			return messages.AtPath(err, "NtfctnPgntn")
		}
	}
	if n.RptgSeq != nil {
		if err := n.RptgSeq.Validate(); err != nil {
			return messages.AtPath(err, "RptgSeq")
		}
	}
	if n.CreDtTm != nil {
		if err := n.CreDtTm.Validate(); err != nil {
			return messages.AtPath(err, "CreDtTm")
		}
	}
	if n.FrToDt != nil {
		if err := n.FrToDt.Validate(); err != nil {
			return messages.AtPath(err, "FrToDt")
		}
	}
	if n.CpyDplctInd != nil {
		if err := n.CpyDplctInd.Validate(); err != nil {
			return messages.AtPath(err, "CpyDplctInd")
		}
	}
	if n.RptgSrc != nil {
		if err := n.RptgSrc.Validate(); err != nil {
			return messages.AtPath(err, "RptgSrc")
		}
	}
	if err := n.Acct.Validate(); err != nil {
		return messages.AtPath(err, "Acct")
	}
	if n.RltdAcct != nil {
		if err := n.RltdAcct.Validate(); err != nil {
			return messages.AtPath(err, "RltdAcct")
		}
	}
	if err := messages.ValidateEach("Intrst", n.Intrst); err != nil {
		return err
	}
	if n.TxsSummry != nil {
		if err := n.TxsSummry.Validate(); err != nil {
			return messages.AtPath(err, "TxsSummry")
		}
	}
	if err := messages.ValidateEach("Ntry", n.Ntry); err != nil {
		return err
	}
	if n.AddtlNtfctnInf != nil {
		if err := n.AddtlNtfctnInf.Validate(); err != nil {
			return messages.AtPath(err, "AddtlNtfctnInf")
		}
	}
	return nil
}

// SequenceRange1Choice expresses which report sequences are covered.
type SequenceRange1Choice struct {
	FrSeq   *common.Max35Text  `xml:"FrSeq,omitempty" json:"FrSeq,omitempty"`
	ToSeq   *common.Max35Text  `xml:"ToSeq,omitempty" json:"ToSeq,omitempty"`
	FrToSeq []SequenceRange1   `xml:"FrToSeq,omitempty" json:"FrToSeq,omitempty"`
	EQSeq   []common.Max35Text `xml:"EQSeq,omitempty" json:"EQSeq,omitempty"`
	NEQSeq  []common.Max35Text `xml:"NEQSeq,omitempty" json:"NEQSeq,omitempty"`
}

func (c *SequenceRange1Choice) Validate() error {
	if c.FrSeq != nil {
		if err := c.FrSeq.Validate(); err != nil {
			return messages.AtPath(err, "FrSeq")
		}
	}
	if c.ToSeq != nil {
		if err := c.ToSeq.Validate(); err != nil {
			return messages.AtPath(err, "ToSeq")
		}
	}
	if err := messages.ValidateEach("FrToSeq", c.FrToSeq); err != nil {
		return err
	}
	if err := messages.ValidateEach("EQSeq", c.EQSeq); err != nil {
		return err
	}
	return messages.ValidateEach("NEQSeq", c.NEQSeq)
}

// SequenceRange1 is an inclusive from/to sequence pair.
type SequenceRange1 struct {
	FrSeq common.Max35Text `xml:"FrSeq" json:"FrSeq"`
	ToSeq common.Max35Text `xml:"ToSeq" json:"ToSeq"`
}

func (r *SequenceRange1) Validate() error {
	if err := r.FrSeq.Validate(); err != nil {
		return messages.AtPath(err, "FrSeq")
	}
	if err := r.ToSeq.Validate(); err != nil {
		return messages.AtPath(err, "ToSeq")
	}
	return nil
}

// ReportingSource1Choice names the system that produced the report.
type ReportingSource1Choice struct {
	Cd    *common.ExternalReportingSource1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ReportingSource1Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return messages.AtPath(err, "Cd")
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// AccountInterest4 is interest accrued on the account as a whole.
type AccountInterest4 struct {
	Tp     *InterestType1Choice    `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Rate   []Rate4                 `xml:"Rate,omitempty" json:"Rate,omitempty"`
	FrToDt *common.DateTimePeriod1 `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	Rsn    *common.Max35Text       `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	Tax    *common.TaxCharges2     `xml:"Tax,omitempty" json:"Tax,omitempty"`
}

func (a *AccountInterest4) Validate() error {
	if a.Tp != nil {
		if err := a.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if err := messages.ValidateEach("Rate", a.Rate); err != nil {
		return err
	}
	if a.FrToDt != nil {
		if err := a.FrToDt.Validate(); err != nil {
			return messages.AtPath(err, "FrToDt")
		}
	}
	if a.Rsn != nil {
		if err := a.Rsn.Validate(); err != nil {
			return messages.AtPath(err, "Rsn")
		}
	}
	if a.Tax != nil {
		if err := a.Tax.Validate(); err != nil {
			return messages.AtPath(err, "Tax")
		}
	}
	return nil
}

// InterestType1Choice selects a coded or proprietary interest type.
type InterestType1Choice struct {
	Cd    *common.InterestType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *InterestType1Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return messages.AtPath(err, "Cd")
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// Rate4 is an interest rate and its qualification.
type Rate4 struct {
	Tp RateType4Choice `xml:"Tp" json:"Tp"`
}

func (r *Rate4) Validate() error {
	if err := r.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	return nil
}

// RateType4Choice is either a percentage or a textual rate.
type RateType4Choice struct {
	Pctg *common.PercentageRate `xml:"Pctg,omitempty" json:"Pctg,omitempty"`
	Othr *common.Max35Text      `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c *RateType4Choice) Validate() error {
	if c.Pctg != nil {
		if err := c.Pctg.Validate(); err != nil {
			return messages.AtPath(err, "Pctg")
		}
	}
	if c.Othr != nil {
		if err := c.Othr.Validate(); err != nil {
			return messages.AtPath(err, "Othr")
		}
	}
	return nil
}

// TotalTransactions6 is the transaction summary of a notification.
type TotalTransactions6 struct {
	TtlNtries          *NumberAndSumOfTransactions4    `xml:"TtlNtries,omitempty" json:"TtlNtries,omitempty"`
	TtlCdtNtries       *NumberAndSumOfTransactions1    `xml:"TtlCdtNtries,omitempty" json:"TtlCdtNtries,omitempty"`
	TtlDbtNtries       *NumberAndSumOfTransactions1    `xml:"TtlDbtNtries,omitempty" json:"TtlDbtNtries,omitempty"`
	TtlNtriesPerBkTxCd []TotalsPerBankTransactionCode5 `xml:"TtlNtriesPerBkTxCd,omitempty" json:"TtlNtriesPerBkTxCd,omitempty"`
}

func (t *TotalTransactions6) Validate() error {
	if t.TtlNtries != nil {
		if err := t.TtlNtries.Validate(); err != nil {
			return messages.AtPath(err, "TtlNtries")
		}
	}
	if t.TtlCdtNtries != nil {
		if err := t.TtlCdtNtries.Validate(); err != nil {
			return messages.AtPath(err, "TtlCdtNtries")
		}
	}
	if t.TtlDbtNtries != nil {
		if err := t.TtlDbtNtries.Validate(); err != nil {
			return messages.AtPath(err, "TtlDbtNtries")
		}
	}
	return messages.ValidateEach("TtlNtriesPerBkTxCd", t.TtlNtriesPerBkTxCd)
}

// NumberAndSumOfTransactions1 is an entry count and value sum.
type NumberAndSumOfTransactions1 struct {
	NbOfNtries *common.Max15NumericText `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum        *common.DecimalNumber    `xml:"Sum,omitempty" json:"Sum,omitempty"`
}

func (n *NumberAndSumOfTransactions1) Validate() error {
	if n.NbOfNtries != nil {
		if err := n.NbOfNtries.Validate(); err != nil {
			return messages.AtPath(err, "NbOfNtries")
		}
	}
	if n.Sum != nil {
		if err := n.Sum.Validate(); err != nil {
			return messages.AtPath(err, "Sum")
		}
	}
	return nil
}

// NumberAndSumOfTransactions4 adds the signed net entry to the count and
// sum.
type NumberAndSumOfTransactions4 struct {
	NbOfNtries *common.Max15NumericText     `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum        *common.DecimalNumber        `xml:"Sum,omitempty" json:"Sum,omitempty"`
	TtlNetNtry *common.AmountAndDirection35 `xml:"TtlNetNtry,omitempty" json:"TtlNetNtry,omitempty"`
}

func (n *NumberAndSumOfTransactions4) Validate() error {
	if n.NbOfNtries != nil {
		if err := n.NbOfNtries.Validate(); err != nil {
			return messages.AtPath(err, "NbOfNtries")
		}
	}
	if n.Sum != nil {
		if err := n.Sum.Validate(); err != nil {
			return messages.AtPath(err, "Sum")
		}
	}
	if n.TtlNetNtry != nil {
		if err := n.TtlNetNtry.Validate(); err != nil {
			return messages.AtPath(err, "TtlNetNtry")
		}
	}
	return nil
}

// TotalsPerBankTransactionCode5 subtotals entries by bank transaction
// code.
type TotalsPerBankTransactionCode5 struct {
	NbOfNtries *common.Max15NumericText       `xml:"NbOfNtries,omitempty" json:"NbOfNtries,omitempty"`
	Sum        *common.DecimalNumber          `xml:"Sum,omitempty" json:"Sum,omitempty"`
	TtlNetNtry *common.AmountAndDirection35   `xml:"TtlNetNtry,omitempty" json:"TtlNetNtry,omitempty"`
	CdtNtries  *NumberAndSumOfTransactions1   `xml:"CdtNtries,omitempty" json:"CdtNtries,omitempty"`
	DbtNtries  *NumberAndSumOfTransactions1   `xml:"DbtNtries,omitempty" json:"DbtNtries,omitempty"`
	FcstInd    *common.TrueFalseIndicator     `xml:"FcstInd,omitempty" json:"FcstInd,omitempty"`
	BkTxCd     BankTransactionCodeStructure4  `xml:"BkTxCd" json:"BkTxCd"`
	Avlbty     []CashAvailability1            `xml:"Avlbty,omitempty" json:"Avlbty,omitempty"`
	Dt         *common.DateAndDateTime2Choice `xml:"Dt,omitempty" json:"Dt,omitempty"`
}

func (t *TotalsPerBankTransactionCode5) Validate() error {
	if t.NbOfNtries != nil {
		if err := t.NbOfNtries.Validate(); err != nil {
			return messages.AtPath(err, "NbOfNtries")
		}
	}
	if t.Sum != nil {
		if err := t.Sum.Validate(); err != nil {
			return messages.AtPath(err, "Sum")
		}
	}
	if t.TtlNetNtry != nil {
		if err := t.TtlNetNtry.Validate(); err != nil {
			return messages.AtPath(err, "TtlNetNtry")
		}
	}
	if t.CdtNtries != nil {
		if err := t.CdtNtries.Validate(); err != nil {
			return messages.AtPath(err, "CdtNtries")
		}
	}
	if t.DbtNtries != nil {
		if err := t.DbtNtries.Validate(); err != nil {
			return messages.AtPath(err, "DbtNtries")
		}
	}
	if err := t.BkTxCd.Validate(); err != nil {
		return messages.AtPath(err, "BkTxCd")
	}
	if err := messages.ValidateEach("Avlbty", t.Avlbty); err != nil {
		return err
	}
	if t.Dt != nil {
		if err := t.Dt.Validate(); err != nil {
			return messages.AtPath(err, "Dt")
		}
	}
	return nil
}

// BankTransactionCodeStructure4 is the ISO or proprietary transaction
// code of an entry.
type BankTransactionCodeStructure4 struct {
	Domn  *BankTransactionCodeStructure5            `xml:"Domn,omitempty" json:"Domn,omitempty"`
	Prtry *ProprietaryBankTransactionCodeStructure1 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (b *BankTransactionCodeStructure4) Validate() error {
	if b.Domn != nil {
		if err := b.Domn.Validate(); err != nil {
			return messages.AtPath(err, "Domn")
		}
	}
	if b.Prtry != nil {
		if err := b.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// BankTransactionCodeStructure5 is the domain level of the ISO code.
type BankTransactionCodeStructure5 struct {
	Cd   common.ExternalBankTransactionDomain1Code `xml:"Cd" json:"Cd"`
	Fmly BankTransactionCodeStructure6             `xml:"Fmly" json:"Fmly"`
}

func (b *BankTransactionCodeStructure5) Validate() error {
	if err := b.Cd.Validate(); err != nil {
		return messages.AtPath(err, "Cd")
	}
	if err := b.Fmly.Validate(); err != nil {
		return messages.AtPath(err, "Fmly")
	}
	return nil
}

// BankTransactionCodeStructure6 is the family and sub-family level.
type BankTransactionCodeStructure6 struct {
	Cd        common.ExternalBankTransactionFamily1Code    `xml:"Cd" json:"Cd"`
	SubFmlyCd common.ExternalBankTransactionSubFamily1Code `xml:"SubFmlyCd" json:"SubFmlyCd"`
}

func (b *BankTransactionCodeStructure6) Validate() error {
	if err := b.Cd.Validate(); err != nil {
		return messages.AtPath(err, "Cd")
	}
	if err := b.SubFmlyCd.Validate(); err != nil {
		return messages.AtPath(err, "SubFmlyCd")
	}
	return nil
}

// ProprietaryBankTransactionCodeStructure1 is a scheme-specific
// transaction code.
type ProprietaryBankTransactionCodeStructure1 struct {
	Cd   common.Max35Text  `xml:"Cd" json:"Cd"`
	Issr *common.Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (p *ProprietaryBankTransactionCodeStructure1) Validate() error {
	if err := p.Cd.Validate(); err != nil {
		return messages.AtPath(err, "Cd")
	}
	if p.Issr != nil {
		if err := p.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// CashAvailability1 states when a booked amount becomes available.
type CashAvailability1 struct {
	Dt        CashAvailabilityDate1Choice              `xml:"Dt" json:"Dt"`
	Amt       common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd common.CreditDebitCode                   `xml:"CdtDbtInd" json:"CdtDbtInd"`
}

func (c *CashAvailability1) Validate() error {
	if err := c.Dt.Validate(); err != nil {
		return messages.AtPath(err, "Dt")
	}
	if err := c.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if err := c.CdtDbtInd.Validate(); err != nil {
		return messages.AtPath(err, "CdtDbtInd")
	}
	return nil
}

// CashAvailabilityDate1Choice is either a day offset or an actual date.
type CashAvailabilityDate1Choice struct {
	NbOfDays *common.Max15PlusSignedNumericText `xml:"NbOfDays,omitempty" json:"NbOfDays,omitempty"`
	ActlDt   *common.ISODate                    `xml:"ActlDt,omitempty" json:"ActlDt,omitempty"`
}

func (c *CashAvailabilityDate1Choice) Validate() error {
	if c.NbOfDays != nil {
		if err := c.NbOfDays.Validate(); err != nil {
			return messages.AtPath(err, "NbOfDays")
		}
	}
	if c.ActlDt != nil {
		if err := c.ActlDt.Validate(); err != nil {
			return messages.AtPath(err, "ActlDt")
		}
	}
	return nil
}

// ReportEntry10 is one debit or credit entry of the notification.
type ReportEntry10 struct {
	NtryRef       *common.Max35Text                        `xml:"NtryRef,omitempty" json:"NtryRef,omitempty"`
	Amt           common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd     common.CreditDebitCode                   `xml:"CdtDbtInd" json:"CdtDbtInd"`
	RvslInd       *common.TrueFalseIndicator               `xml:"RvslInd,omitempty" json:"RvslInd,omitempty"`
	Sts           EntryStatus1Choice                       `xml:"Sts" json:"Sts"`
	BookgDt       *common.DateAndDateTime2Choice           `xml:"BookgDt,omitempty" json:"BookgDt,omitempty"`
	ValDt         *common.DateAndDateTime2Choice           `xml:"ValDt,omitempty" json:"ValDt,omitempty"`
	AcctSvcrRef   *common.Max35Text                        `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	Avlbty        []CashAvailability1                      `xml:"Avlbty,omitempty" json:"Avlbty,omitempty"`
	BkTxCd        BankTransactionCodeStructure4            `xml:"BkTxCd" json:"BkTxCd"`
	ComssnWvrInd  *common.YesNoIndicator                   `xml:"ComssnWvrInd,omitempty" json:"ComssnWvrInd,omitempty"`
	AddtlInfInd   *MessageIdentification2                  `xml:"AddtlInfInd,omitempty" json:"AddtlInfInd,omitempty"`
	AmtDtls       *AmountAndCurrencyExchange3              `xml:"AmtDtls,omitempty" json:"AmtDtls,omitempty"`
	Chrgs         *Charges6                                `xml:"Chrgs,omitempty" json:"Chrgs,omitempty"`
	TechInptChanl *TechnicalInputChannel1Choice            `xml:"TechInptChanl,omitempty" json:"TechInptChanl,omitempty"`
	Intrst        *TransactionInterest4                    `xml:"Intrst,omitempty" json:"Intrst,omitempty"`
	NtryDtls      []EntryDetails9                          `xml:"NtryDtls,omitempty" json:"NtryDtls,omitempty"`
	AddtlNtryInf  *common.Max500Text                       `xml:"AddtlNtryInf,omitempty" json:"AddtlNtryInf,omitempty"`
}

func (e *ReportEntry10) Validate() error {
	if e.NtryRef != nil {
		if err := e.NtryRef.Validate(); err != nil {
			return messages.AtPath(err, "NtryRef")
		}
	}
	if err := e.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if err := e.CdtDbtInd.Validate(); err != nil {
		return messages.AtPath(err, "CdtDbtInd")
	}
	if err := e.Sts.Validate(); err != nil {
		return messages.AtPath(err, "Sts")
	}
	if e.BookgDt != nil {
		if err := e.BookgDt.Validate(); err != nil {
			return messages.AtPath(err, "BookgDt")
		}
	}
	if e.ValDt != nil {
		if err := e.ValDt.Validate(); err != nil {
			return messages.AtPath(err, "ValDt")
		}
	}
	if e.AcctSvcrRef != nil {
		if err := e.AcctSvcrRef.Validate(); err != nil {
			return messages.AtPath(err, "AcctSvcrRef")
		}
	}
	if err := messages.ValidateEach("Avlbty", e.Avlbty); err != nil {
		return err
	}
	if err := e.BkTxCd.Validate(); err != nil {
		return messages.AtPath(err, "BkTxCd")
	}
	if e.AddtlInfInd != nil {
		if err := e.AddtlInfInd.Validate(); err != nil {
			return messages.AtPath(err, "AddtlInfInd")
		}
	}
	if e.AmtDtls != nil {
		if err := e.AmtDtls.Validate(); err != nil {
			return messages.AtPath(err, "AmtDtls")
		}
	}
	if e.Chrgs != nil {
		if err := e.Chrgs.Validate(); err != nil {
			return messages.AtPath(err, "Chrgs")
		}
	}
	if e.TechInptChanl != nil {
		if err := e.TechInptChanl.Validate(); err != nil {
			return messages.AtPath(err, "TechInptChanl")
		}
	}
	if e.Intrst != nil {
		if err := e.Intrst.Validate(); err != nil {
			return messages.AtPath(err, "Intrst")
		}
	}
	if err := messages.ValidateEach("NtryDtls", e.NtryDtls); err != nil {
		return err
	}
	if e.AddtlNtryInf != nil {
		if err := e.AddtlNtryInf.Validate(); err != nil {
			return messages.AtPath(err, "AddtlNtryInf")
		}
	}
	return nil
}

// EntryStatus1Choice is the booking status of an entry.
type EntryStatus1Choice struct {
	Cd    *common.ExternalEntryStatus1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *EntryStatus1Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return messages.AtPath(err, "Cd")
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// MessageIdentification2 points at another message by name and id.
type MessageIdentification2 struct {
	MsgNmId *common.Max35Text `xml:"MsgNmId,omitempty" json:"MsgNmId,omitempty"`
	MsgId   *common.Max35Text `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
}

func (m *MessageIdentification2) Validate() error {
	if m.MsgNmId != nil {
		if err := m.MsgNmId.Validate(); err != nil {
			return messages.AtPath(err, "MsgNmId")
		}
	}
	if m.MsgId != nil {
		if err := m.MsgId.Validate(); err != nil {
			return messages.AtPath(err, "MsgId")
		}
	}
	return nil
}

// TechnicalInputChannel1Choice names the channel the instruction came
// in on.
type TechnicalInputChannel1Choice struct {
	Cd    *common.ExternalTechnicalInputChannel1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *TechnicalInputChannel1Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return messages.AtPath(err, "Cd")
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// AmountAndCurrencyExchange3 carries an entry amount in its various
// currency perspectives.
type AmountAndCurrencyExchange3 struct {
	InstdAmt      *AmountAndCurrencyExchangeDetails3  `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	TxAmt         *AmountAndCurrencyExchangeDetails3  `xml:"TxAmt,omitempty" json:"TxAmt,omitempty"`
	CntrValAmt    *AmountAndCurrencyExchangeDetails3  `xml:"CntrValAmt,omitempty" json:"CntrValAmt,omitempty"`
	AnncdPstngAmt *AmountAndCurrencyExchangeDetails3  `xml:"AnncdPstngAmt,omitempty" json:"AnncdPstngAmt,omitempty"`
	PrtryAmt      []AmountAndCurrencyExchangeDetails4 `xml:"PrtryAmt,omitempty" json:"PrtryAmt,omitempty"`
}

func (a *AmountAndCurrencyExchange3) Validate() error {
	if a.InstdAmt != nil {
		if err := a.InstdAmt.Validate(); err != nil {
			return messages.AtPath(err, "InstdAmt")
		}
	}
	if a.TxAmt != nil {
		if err := a.TxAmt.Validate(); err != nil {
			return messages.AtPath(err, "TxAmt")
		}
	}
	if a.CntrValAmt != nil {
		if err := a.CntrValAmt.Validate(); err != nil {
			return messages.AtPath(err, "CntrValAmt")
		}
	}
	if a.AnncdPstngAmt != nil {
		if err := a.AnncdPstngAmt.Validate(); err != nil {
			return messages.AtPath(err, "AnncdPstngAmt")
		}
	}
	return messages.ValidateEach("PrtryAmt", a.PrtryAmt)
}

// AmountAndCurrencyExchangeDetails3 is an amount with the exchange used
// to produce it.
type AmountAndCurrencyExchangeDetails3 struct {
	Amt     common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CcyXchg *CurrencyExchange5                       `xml:"CcyXchg,omitempty" json:"CcyXchg,omitempty"`
}

func (a *AmountAndCurrencyExchangeDetails3) Validate() error {
	if err := a.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if a.CcyXchg != nil {
		if err := a.CcyXchg.Validate(); err != nil {
			return messages.AtPath(err, "CcyXchg")
		}
	}
	return nil
}

// AmountAndCurrencyExchangeDetails4 is the proprietary variant with a
// type tag.
type AmountAndCurrencyExchangeDetails4 struct {
	Tp      common.Max35Text                         `xml:"Tp" json:"Tp"`
	Amt     common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CcyXchg *CurrencyExchange5                       `xml:"CcyXchg,omitempty" json:"CcyXchg,omitempty"`
}

func (a *AmountAndCurrencyExchangeDetails4) Validate() error {
	if err := a.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	if err := a.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if a.CcyXchg != nil {
		if err := a.CcyXchg.Validate(); err != nil {
			return messages.AtPath(err, "CcyXchg")
		}
	}
	return nil
}

// CurrencyExchange5 is the rate applied between two currencies.
type CurrencyExchange5 struct {
	SrcCcy   common.ActiveOrHistoricCurrencyCode  `xml:"SrcCcy" json:"SrcCcy"`
	TrgtCcy  *common.ActiveOrHistoricCurrencyCode `xml:"TrgtCcy,omitempty" json:"TrgtCcy,omitempty"`
	UnitCcy  *common.ActiveOrHistoricCurrencyCode `xml:"UnitCcy,omitempty" json:"UnitCcy,omitempty"`
	XchgRate common.BaseOneRate                   `xml:"XchgRate" json:"XchgRate"`
	CtrctId  *common.Max35Text                    `xml:"CtrctId,omitempty" json:"CtrctId,omitempty"`
	QtnDt    *common.ISODateTime                  `xml:"QtnDt,omitempty" json:"QtnDt,omitempty"`
}

func (c *CurrencyExchange5) Validate() error {
	if err := c.SrcCcy.Validate(); err != nil {
		return messages.AtPath(err, "SrcCcy")
	}
	if c.TrgtCcy != nil {
		if err := c.TrgtCcy.Validate(); err != nil {
			return messages.AtPath(err, "TrgtCcy")
		}
	}
	if c.UnitCcy != nil {
		if err := c.UnitCcy.Validate(); err != nil {
			return messages.AtPath(err, "UnitCcy")
		}
	}
	if err := c.XchgRate.Validate(); err != nil {
		return messages.AtPath(err, "XchgRate")
	}
	if c.CtrctId != nil {
		if err := c.CtrctId.Validate(); err != nil {
			return messages.AtPath(err, "CtrctId")
		}
	}
	if c.QtnDt != nil {
		if err := c.QtnDt.Validate(); err != nil {
			return messages.AtPath(err, "QtnDt")
		}
	}
	return nil
}

// Charges6 totals the charges levied on an entry.
type Charges6 struct {
	TtlChrgsAndTaxAmt *common.ActiveOrHistoricCurrencyAndAmount `xml:"TtlChrgsAndTaxAmt,omitempty" json:"TtlChrgsAndTaxAmt,omitempty"`
	Rcrd              []ChargesRecord3                          `xml:"Rcrd,omitempty" json:"Rcrd,omitempty"`
}

func (c *Charges6) Validate() error {
	if c.TtlChrgsAndTaxAmt != nil {
		if err := c.TtlChrgsAndTaxAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlChrgsAndTaxAmt")
		}
	}
	return messages.ValidateEach("Rcrd", c.Rcrd)
}

// ChargesRecord3 is one individual charge.
type ChargesRecord3 struct {
	Amt         common.ActiveOrHistoricCurrencyAndAmount             `xml:"Amt" json:"Amt"`
	CdtDbtInd   *common.CreditDebitCode                              `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
	ChrgInclInd *common.ChargeIncludedIndicator                      `xml:"ChrgInclInd,omitempty" json:"ChrgInclInd,omitempty"`
	Tp          *ChargeType3Choice                                   `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Rate        *common.PercentageRate                               `xml:"Rate,omitempty" json:"Rate,omitempty"`
	Br          *common.ChargeBearerType1Code                        `xml:"Br,omitempty" json:"Br,omitempty"`
	Agt         *common.BranchAndFinancialInstitutionIdentification6 `xml:"Agt,omitempty" json:"Agt,omitempty"`
	Tax         *common.TaxCharges2                                  `xml:"Tax,omitempty" json:"Tax,omitempty"`
}

func (c *ChargesRecord3) Validate() error {
	if err := c.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if c.CdtDbtInd != nil {
		if err := c.CdtDbtInd.Validate(); err != nil {
			return messages.AtPath(err, "CdtDbtInd")
		}
	}
	if c.Tp != nil {
		if err := c.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if c.Rate != nil {
		if err := c.Rate.Validate(); err != nil {
			return messages.AtPath(err, "Rate")
		}
	}
	if c.Br != nil {
		if err := c.Br.Validate(); err != nil {
			return messages.AtPath(err, "Br")
		}
	}
	if c.Agt != nil {
		if err := c.Agt.Validate(); err != nil {
			return messages.AtPath(err, "Agt")
		}
	}
	if c.Tax != nil {
		if err := c.Tax.Validate(); err != nil {
			return messages.AtPath(err, "Tax")
		}
	}
	return nil
}

// ChargeType3Choice selects a coded or proprietary charge type.
type ChargeType3Choice struct {
	Cd    *common.ExternalChargeType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.GenericIdentification3  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ChargeType3Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return messages.AtPath(err, "Cd")
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// TransactionInterest4 totals the interest booked with an entry.
type TransactionInterest4 struct {
	TtlIntrstAndTaxAmt *common.ActiveOrHistoricCurrencyAndAmount `xml:"TtlIntrstAndTaxAmt,omitempty" json:"TtlIntrstAndTaxAmt,omitempty"`
	Rcrd               []InterestRecord2                         `xml:"Rcrd,omitempty" json:"Rcrd,omitempty"`
}

func (t *TransactionInterest4) Validate() error {
	if t.TtlIntrstAndTaxAmt != nil {
		if err := t.TtlIntrstAndTaxAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlIntrstAndTaxAmt")
		}
	}
	return messages.ValidateEach("Rcrd", t.Rcrd)
}

// InterestRecord2 is one individual interest amount.
type InterestRecord2 struct {
	Amt       common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd common.CreditDebitCode                   `xml:"CdtDbtInd" json:"CdtDbtInd"`
	Tp        *InterestType1Choice                     `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Rate      *Rate4                                   `xml:"Rate,omitempty" json:"Rate,omitempty"`
	FrToDt    *common.DateTimePeriod1                  `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
	Rsn       *common.Max35Text                        `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	Tax       *common.TaxCharges2                      `xml:"Tax,omitempty" json:"Tax,omitempty"`
}

func (r *InterestRecord2) Validate() error {
	if err := r.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if err := r.CdtDbtInd.Validate(); err != nil {
		return messages.AtPath(err, "CdtDbtInd")
	}
	if r.Tp != nil {
		if err := r.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if r.Rate != nil {
		if err := r.Rate.Validate(); err != nil {
			return messages.AtPath(err, "Rate")
		}
	}
	if r.FrToDt != nil {
		if err := r.FrToDt.Validate(); err != nil {
			return messages.AtPath(err, "FrToDt")
		}
	}
	if r.Rsn != nil {
		if err := r.Rsn.Validate(); err != nil {
			return messages.AtPath(err, "Rsn")
		}
	}
	if r.Tax != nil {
		if err := r.Tax.Validate(); err != nil {
			return messages.AtPath(err, "Tax")
		}
	}
	return nil
}

// EntryDetails9 groups the transactions underlying an entry.
type EntryDetails9 struct {
	Btch   *BatchInformation2   `xml:"Btch,omitempty" json:"Btch,omitempty"`
	TxDtls []EntryTransaction10 `xml:"TxDtls,omitempty" json:"TxDtls,omitempty"`
}

func (e *EntryDetails9) Validate() error {
	if e.Btch != nil {
		if err := e.Btch.Validate(); err != nil {
			return messages.AtPath(err, "Btch")
		}
	}
	return messages.ValidateEach("TxDtls", e.TxDtls)
}

// BatchInformation2 summarises the batch an entry settles.
type BatchInformation2 struct {
	MsgId     *common.Max35Text                         `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
	PmtInfId  *common.Max35Text                         `xml:"PmtInfId,omitempty" json:"PmtInfId,omitempty"`
	NbOfTxs   *common.Max15NumericText                  `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	TtlAmt    *common.ActiveOrHistoricCurrencyAndAmount `xml:"TtlAmt,omitempty" json:"TtlAmt,omitempty"`
	CdtDbtInd *common.CreditDebitCode                   `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
}

func (b *BatchInformation2) Validate() error {
	if b.MsgId != nil {
		if err := b.MsgId.Validate(); err != nil {
			return messages.AtPath(err, "MsgId")
		}
	}
	if b.PmtInfId != nil {
		if err := b.PmtInfId.Validate(); err != nil {
			return messages.AtPath(err, "PmtInfId")
		}
	}
	if b.NbOfTxs != nil {
		if err := b.NbOfTxs.Validate(); err != nil {
			return messages.AtPath(err, "NbOfTxs")
		}
	}
	if b.TtlAmt != nil {
		if err := b.TtlAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlAmt")
		}
	}
	if b.CdtDbtInd != nil {
		if err := b.CdtDbtInd.Validate(); err != nil {
			return messages.AtPath(err, "CdtDbtInd")
		}
	}
	return nil
}

// EntryTransaction10 details one underlying transaction of an entry.
type EntryTransaction10 struct {
	Refs        *TransactionReferences6                   `xml:"Refs,omitempty" json:"Refs,omitempty"`
	Amt         *common.ActiveOrHistoricCurrencyAndAmount `xml:"Amt,omitempty" json:"Amt,omitempty"`
	CdtDbtInd   *common.CreditDebitCode                   `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
	AmtDtls     *AmountAndCurrencyExchange3               `xml:"AmtDtls,omitempty" json:"AmtDtls,omitempty"`
	Avlbty      []CashAvailability1                       `xml:"Avlbty,omitempty" json:"Avlbty,omitempty"`
	BkTxCd      *BankTransactionCodeStructure4            `xml:"BkTxCd,omitempty" json:"BkTxCd,omitempty"`
	Chrgs       *Charges6                                 `xml:"Chrgs,omitempty" json:"Chrgs,omitempty"`
	Intrst      *TransactionInterest4                     `xml:"Intrst,omitempty" json:"Intrst,omitempty"`
	RltdPties   *TransactionParties6                      `xml:"RltdPties,omitempty" json:"RltdPties,omitempty"`
	RltdAgts    *TransactionAgents5                       `xml:"RltdAgts,omitempty" json:"RltdAgts,omitempty"`
	LclInstrm   *common.LocalInstrument2Choice            `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	Purp        *common.Purpose2Choice                    `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RltdRmtInf  []common.RemittanceLocation7              `xml:"RltdRmtInf,omitempty" json:"RltdRmtInf,omitempty"`
	RmtInf      *common.RemittanceInformation16           `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	RltdDts     *TransactionDates3                        `xml:"RltdDts,omitempty" json:"RltdDts,omitempty"`
	Tax         *common.TaxInformation8                   `xml:"Tax,omitempty" json:"Tax,omitempty"`
	RtrInf      *PaymentReturnReason5                     `xml:"RtrInf,omitempty" json:"RtrInf,omitempty"`
	CorpActn    *CorporateAction9                         `xml:"CorpActn,omitempty" json:"CorpActn,omitempty"`
	CshDpst     []CashDeposit1                            `xml:"CshDpst,omitempty" json:"CshDpst,omitempty"`
	CardTx      *CardTransaction17                        `xml:"CardTx,omitempty" json:"CardTx,omitempty"`
	AddtlTxInf  *common.Max500Text                        `xml:"AddtlTxInf,omitempty" json:"AddtlTxInf,omitempty"`
	SplmtryData []common.SupplementaryData1               `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (t *EntryTransaction10) Validate() error {
	if t.Refs != nil {
		if err := t.Refs.Validate(); err != nil {
			return messages.AtPath(err, "Refs")
		}
	}
	if t.Amt != nil {
		if err := t.Amt.Validate(); err != nil {
			return messages.AtPath(err, "Amt")
		}
	}
	if t.CdtDbtInd != nil {
		if err := t.CdtDbtInd.Validate(); err != nil {
			return messages.AtPath(err, "CdtDbtInd")
		}
	}
	if t.AmtDtls != nil {
		if err := t.AmtDtls.Validate(); err != nil {
			return messages.AtPath(err, "AmtDtls")
		}
	}
	if err := messages.ValidateEach("Avlbty", t.Avlbty); err != nil {
		return err
	}
	if t.BkTxCd != nil {
		if err := t.BkTxCd.Validate(); err != nil {
			return messages.AtPath(err, "BkTxCd")
		}
	}
	if t.Chrgs != nil {
		if err := t.Chrgs.Validate(); err != nil {
			return messages.AtPath(err, "Chrgs")
		}
	}
	if t.Intrst != nil {
		if err := t.Intrst.Validate(); err != nil {
			return messages.AtPath(err, "Intrst")
		}
	}
	if t.RltdPties != nil {
		if err := t.RltdPties.Validate(); err != nil {
			return messages.AtPath(err, "RltdPties")
		}
	}
	if t.RltdAgts != nil {
		if err := t.RltdAgts.Validate(); err != nil {
			return messages.AtPath(err, "RltdAgts")
		}
	}
	if t.LclInstrm != nil {
		if err := t.LclInstrm.Validate(); err != nil {
			return messages.AtPath(err, "LclInstrm")
		}
	}
	if t.Purp != nil {
		if err := t.Purp.Validate(); err != nil {
			return messages.AtPath(err, "Purp")
		}
	}
	if err := messages.ValidateEach("RltdRmtInf", t.RltdRmtInf); err != nil {
		return err
	}
	if t.RmtInf != nil {
		if err := t.RmtInf.Validate(); err != nil {
			return messages.AtPath(err, "RmtInf")
		}
	}
	if t.RltdDts != nil {
		if err := t.RltdDts.Validate(); err != nil {
			return messages.AtPath(err, "RltdDts")
		}
	}
	if t.Tax != nil {
		if err := t.Tax.Validate(); err != nil {
			return messages.AtPath(err, "Tax")
		}
	}
	if t.RtrInf != nil {
		if err := t.RtrInf.Validate(); err != nil {
			return messages.AtPath(err, "RtrInf")
		}
	}
	if t.CorpActn != nil {
		if err := t.CorpActn.Validate(); err != nil {
			return messages.AtPath(err, "CorpActn")
		}
	}
	if err := messages.ValidateEach("CshDpst", t.CshDpst); err != nil {
		return err
	}
	if t.CardTx != nil {
		if err := t.CardTx.Validate(); err != nil {
			return messages.AtPath(err, "CardTx")
		}
	}
	if t.AddtlTxInf != nil {
		if err := t.AddtlTxInf.Validate(); err != nil {
			return messages.AtPath(err, "AddtlTxInf")
		}
	}
	return messages.ValidateEach("SplmtryData", t.SplmtryData)
}

// TransactionReferences6 collects every reference attached to a
// transaction.
type TransactionReferences6 struct {
	MsgId             *common.Max35Text        `xml:"MsgId,omitempty" json:"MsgId,omitempty"`
	AcctSvcrRef       *common.Max35Text        `xml:"AcctSvcrRef,omitempty" json:"AcctSvcrRef,omitempty"`
	PmtInfId          *common.Max35Text        `xml:"PmtInfId,omitempty" json:"PmtInfId,omitempty"`
	InstrId           *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId        *common.Max35Text        `xml:"EndToEndId,omitempty" json:"EndToEndId,omitempty"`
	UETR              *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
	TxId              *common.Max35Text        `xml:"TxId,omitempty" json:"TxId,omitempty"`
	MndtId            *common.Max35Text        `xml:"MndtId,omitempty" json:"MndtId,omitempty"`
	ChqNb             *common.Max35Text        `xml:"ChqNb,omitempty" json:"ChqNb,omitempty"`
	ClrSysRef         *common.Max35Text        `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
	AcctOwnrTxId      *common.Max35Text        `xml:"AcctOwnrTxId,omitempty" json:"AcctOwnrTxId,omitempty"`
	AcctSvcrTxId      *common.Max35Text        `xml:"AcctSvcrTxId,omitempty" json:"AcctSvcrTxId,omitempty"`
	MktInfrstrctrTxId *common.Max35Text        `xml:"MktInfrstrctrTxId,omitempty" json:"MktInfrstrctrTxId,omitempty"`
	PrcgId            *common.Max35Text        `xml:"PrcgId,omitempty" json:"PrcgId,omitempty"`
	Prtry             []ProprietaryReference1  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (r *TransactionReferences6) Validate() error {
	for _, f := range []struct {
		elem string
		v    *common.Max35Text
	}{
		{"MsgId", r.MsgId},
		{"AcctSvcrRef", r.AcctSvcrRef},
		{"PmtInfId", r.PmtInfId},
		{"InstrId", r.InstrId},
		{"EndToEndId", r.EndToEndId},
		{"TxId", r.TxId},
		{"MndtId", r.MndtId},
		{"ChqNb", r.ChqNb},
		{"ClrSysRef", r.ClrSysRef},
		{"AcctOwnrTxId", r.AcctOwnrTxId},
		{"AcctSvcrTxId", r.AcctSvcrTxId},
		{"MktInfrstrctrTxId", r.MktInfrstrctrTxId},
		{"PrcgId", r.PrcgId},
	} {
		if f.v == nil {
			continue
		}
		if err := f.v.Validate(); err != nil {
			return messages.AtPath(err, f.elem)
		}
	}
	if r.UETR != nil {
		if err := r.UETR.Validate(); err != nil {
			return messages.AtPath(err, "UETR")
		}
	}
	return messages.ValidateEach("Prtry", r.Prtry)
}

// ProprietaryReference1 is a scheme-specific transaction reference.
type ProprietaryReference1 struct {
	Tp  common.Max35Text `xml:"Tp" json:"Tp"`
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
}

func (p *ProprietaryReference1) Validate() error {
	if err := p.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	if err := p.Ref.Validate(); err != nil {
		return messages.AtPath(err, "Ref")
	}
	return nil
}

// TransactionParties6 names the parties on either side of a
// transaction.
type TransactionParties6 struct {
	InitgPty  *common.Party40Choice `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr      *common.Party40Choice `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	DbtrAcct  *common.CashAccount38 `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	UltmtDbtr *common.Party40Choice `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	Cdtr      *common.Party40Choice `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct  *common.CashAccount38 `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr *common.Party40Choice `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	TradgPty  *common.Party40Choice `xml:"TradgPty,omitempty" json:"TradgPty,omitempty"`
	Prtry     []ProprietaryParty5   `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (p *TransactionParties6) Validate() error {
	for _, f := range []struct {
		elem string
		v    *common.Party40Choice
	}{
		{"InitgPty", p.InitgPty},
		{"Dbtr", p.Dbtr},
		{"UltmtDbtr", p.UltmtDbtr},
		{"Cdtr", p.Cdtr},
		{"UltmtCdtr", p.UltmtCdtr},
		{"TradgPty", p.TradgPty},
	} {
		if f.v == nil {
			continue
		}
		if err := f.v.Validate(); err != nil {
			return messages.AtPath(err, f.elem)
		}
	}
	if p.DbtrAcct != nil {
		if err := p.DbtrAcct.Validate(); err != nil {
			return messages.AtPath(err, "DbtrAcct")
		}
	}
	if p.CdtrAcct != nil {
		if err := p.CdtrAcct.Validate(); err != nil {
			return messages.AtPath(err, "CdtrAcct")
		}
	}
	return messages.ValidateEach("Prtry", p.Prtry)
}

// ProprietaryParty5 is a scheme-specific party role.
type ProprietaryParty5 struct {
	Tp  common.Max35Text     `xml:"Tp" json:"Tp"`
	Pty common.Party40Choice `xml:"Pty" json:"Pty"`
}

func (p *ProprietaryParty5) Validate() error {
	if err := p.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	if err := p.Pty.Validate(); err != nil {
		return messages.AtPath(err, "Pty")
	}
	return nil
}

// TransactionAgents5 names the agents in the settlement chain.
type TransactionAgents5 struct {
	InstgAgt   *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt   *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
	DbtrAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"DbtrAgt,omitempty" json:"DbtrAgt,omitempty"`
	CdtrAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	IntrmyAgt1 *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt2 *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt2,omitempty" json:"IntrmyAgt2,omitempty"`
	IntrmyAgt3 *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt3,omitempty" json:"IntrmyAgt3,omitempty"`
	RcvgAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"RcvgAgt,omitempty" json:"RcvgAgt,omitempty"`
	DlvrgAgt   *common.BranchAndFinancialInstitutionIdentification6 `xml:"DlvrgAgt,omitempty" json:"DlvrgAgt,omitempty"`
	IssgAgt    *common.BranchAndFinancialInstitutionIdentification6 `xml:"IssgAgt,omitempty" json:"IssgAgt,omitempty"`
	SttlmPlc   *common.BranchAndFinancialInstitutionIdentification6 `xml:"SttlmPlc,omitempty" json:"SttlmPlc,omitempty"`
	Prtry      []ProprietaryAgent4                                  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (a *TransactionAgents5) Validate() error {
	for _, f := range []struct {
		elem string
		v    *common.BranchAndFinancialInstitutionIdentification6
	}{
		{"InstgAgt", a.InstgAgt},
		{"InstdAgt", a.InstdAgt},
		{"DbtrAgt", a.DbtrAgt},
		{"CdtrAgt", a.CdtrAgt},
		{"IntrmyAgt1", a.IntrmyAgt1},
		{"IntrmyAgt2", a.IntrmyAgt2},
		{"IntrmyAgt3", a.IntrmyAgt3},
		{"RcvgAgt", a.RcvgAgt},
		{"DlvrgAgt", a.DlvrgAgt},
		{"IssgAgt", a.IssgAgt},
		{"SttlmPlc", a.SttlmPlc},
	} {
		if f.v == nil {
			continue
		}
		if err := f.v.Validate(); err != nil {
			return messages.AtPath(err, f.elem)
		}
	}
	return messages.ValidateEach("Prtry", a.Prtry)
}

// ProprietaryAgent4 is a scheme-specific agent role.
type ProprietaryAgent4 struct {
	Tp  common.Max35Text                                    `xml:"Tp" json:"Tp"`
	Agt common.BranchAndFinancialInstitutionIdentification6 `xml:"Agt" json:"Agt"`
}

func (p *ProprietaryAgent4) Validate() error {
	if err := p.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	if err := p.Agt.Validate(); err != nil {
		return messages.AtPath(err, "Agt")
	}
	return nil
}

// TransactionDates3 collects the dates attached to a transaction.
type TransactionDates3 struct {
	AccptncDtTm             *common.ISODateTime `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	TradActvtyCtrctlSttlmDt *common.ISODate     `xml:"TradActvtyCtrctlSttlmDt,omitempty" json:"TradActvtyCtrctlSttlmDt,omitempty"`
	TradDt                  *common.ISODate     `xml:"TradDt,omitempty" json:"TradDt,omitempty"`
	IntrBkSttlmDt           *common.ISODate     `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	StartDt                 *common.ISODate     `xml:"StartDt,omitempty" json:"StartDt,omitempty"`
	EndDt                   *common.ISODate     `xml:"EndDt,omitempty" json:"EndDt,omitempty"`
	TxDtTm                  *common.ISODateTime `xml:"TxDtTm,omitempty" json:"TxDtTm,omitempty"`
	Prtry                   []ProprietaryDate3  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (d *TransactionDates3) Validate() error {
	if d.AccptncDtTm != nil {
		if err := d.AccptncDtTm.Validate(); err != nil {
			return messages.AtPath(err, "AccptncDtTm")
		}
	}
	for _, f := range []struct {
		elem string
		v    *common.ISODate
	}{
		{"TradActvtyCtrctlSttlmDt", d.TradActvtyCtrctlSttlmDt},
		{"TradDt", d.TradDt},
		{"IntrBkSttlmDt", d.IntrBkSttlmDt},
		{"StartDt", d.StartDt},
		{"EndDt", d.EndDt},
	} {
		if f.v == nil {
			continue
		}
		if err := f.v.Validate(); err != nil {
			return messages.AtPath(err, f.elem)
		}
	}
	if d.TxDtTm != nil {
		if err := d.TxDtTm.Validate(); err != nil {
			return messages.AtPath(err, "TxDtTm")
		}
	}
	return messages.ValidateEach("Prtry", d.Prtry)
}

// ProprietaryDate3 is a scheme-specific transaction date.
type ProprietaryDate3 struct {
	Tp common.Max35Text              `xml:"Tp" json:"Tp"`
	Dt common.DateAndDateTime2Choice `xml:"Dt" json:"Dt"`
}

func (p *ProprietaryDate3) Validate() error {
	if err := p.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	if err := p.Dt.Validate(); err != nil {
		return messages.AtPath(err, "Dt")
	}
	return nil
}

// PaymentReturnReason5 explains why a payment came back.
type PaymentReturnReason5 struct {
	OrgnlBkTxCd *BankTransactionCodeStructure4 `xml:"OrgnlBkTxCd,omitempty" json:"OrgnlBkTxCd,omitempty"`
	Orgtr       *common.PartyIdentification135 `xml:"Orgtr,omitempty" json:"Orgtr,omitempty"`
	Rsn         *ReturnReason5Choice           `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf    []common.Max105Text            `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (p *PaymentReturnReason5) Validate() error {
	if p.OrgnlBkTxCd != nil {
		if err := p.OrgnlBkTxCd.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlBkTxCd")
		}
	}
	if p.Orgtr != nil {
		if err := p.Orgtr.Validate(); err != nil {
			return messages.AtPath(err, "Orgtr")
		}
	}
	if p.Rsn != nil {
		if err := p.Rsn.Validate(); err != nil {
			return messages.AtPath(err, "Rsn")
		}
	}
	return messages.ValidateEach("AddtlInf", p.AddtlInf)
}

// ReturnReason5Choice selects a coded or proprietary return reason.
type ReturnReason5Choice struct {
	Cd    *common.ExternalReturnReason1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ReturnReason5Choice) Validate() error {
	if c.Cd != nil {
		if err := c.Cd.Validate(); err != nil {
			return messages.AtPath(err, "Cd")
		}
	}
	if c.Prtry != nil {
		if err := c.Prtry.Validate(); err != nil {
			return messages.AtPath(err, "Prtry")
		}
	}
	return nil
}

// CorporateAction9 ties an entry to a corporate action event.
type CorporateAction9 struct {
	EvtTp common.Max35Text `xml:"EvtTp" json:"EvtTp"`
	EvtId common.Max35Text `xml:"EvtId" json:"EvtId"`
}

func (c *CorporateAction9) Validate() error {
	if err := c.EvtTp.Validate(); err != nil {
		return messages.AtPath(err, "EvtTp")
	}
	if err := c.EvtId.Validate(); err != nil {
		return messages.AtPath(err, "EvtId")
	}
	return nil
}

// CashDeposit1 itemises deposited notes of one denomination.
type CashDeposit1 struct {
	NoteDnmtn common.ActiveCurrencyAndAmount `xml:"NoteDnmtn" json:"NoteDnmtn"`
	NbOfNotes common.Max15NumericText        `xml:"NbOfNotes" json:"NbOfNotes"`
	Amt       common.ActiveCurrencyAndAmount `xml:"Amt" json:"Amt"`
}

func (c *CashDeposit1) Validate() error {
	if err := c.NoteDnmtn.Validate(); err != nil {
		return messages.AtPath(err, "NoteDnmtn")
	}
	if err := c.NbOfNotes.Validate(); err != nil {
		return messages.AtPath(err, "NbOfNotes")
	}
	if err := c.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	return nil
}
