package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// RemittanceInformation16 reconciles a payment with the items it settles,
// either free-form or structured.
type RemittanceInformation16 struct {
	Ustrd []Max140Text                        `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation16 `xml:"Strd,omitempty" json:"Strd,omitempty"`
}

func (r *RemittanceInformation16) Validate() error {
	if err := messages.ValidateEach("Ustrd", r.Ustrd); err != nil {
		return err
	}
	return messages.ValidateEach("Strd", r.Strd)
}

// StructuredRemittanceInformation16 is the structured remittance form.
type StructuredRemittanceInformation16 struct {
	RfrdDocInf  []ReferredDocumentInformation7 `xml:"RfrdDocInf,omitempty" json:"RfrdDocInf,omitempty"`
	RfrdDocAmt  *RemittanceAmount2             `xml:"RfrdDocAmt,omitempty" json:"RfrdDocAmt,omitempty"`
	CdtrRefInf  *CreditorReferenceInformation2 `xml:"CdtrRefInf,omitempty" json:"CdtrRefInf,omitempty"`
	Invcr       *PartyIdentification135        `xml:"Invcr,omitempty" json:"Invcr,omitempty"`
	Invcee      *PartyIdentification135        `xml:"Invcee,omitempty" json:"Invcee,omitempty"`
	TaxRmt      *TaxInformation7               `xml:"TaxRmt,omitempty" json:"TaxRmt,omitempty"`
	GrnshmtRmt  *Garnishment3                  `xml:"GrnshmtRmt,omitempty" json:"GrnshmtRmt,omitempty"`
	AddtlRmtInf []Max140Text                   `xml:"AddtlRmtInf,omitempty" json:"AddtlRmtInf,omitempty"`
}

func (s *StructuredRemittanceInformation16) Validate() error {
	if err := messages.ValidateEach("RfrdDocInf", s.RfrdDocInf); err != nil {
		return err
	}
	if s.RfrdDocAmt != nil {
		if err := s.RfrdDocAmt.Validate(); err != nil {
			return messages.AtPath(err, "RfrdDocAmt")
		}
	}
	if s.CdtrRefInf != nil {
		if err := s.CdtrRefInf.Validate(); err != nil {
			return messages.AtPath(err, "CdtrRefInf")
		}
	}
	if s.Invcr != nil {
		if err := s.Invcr.Validate(); err != nil {
			return messages.AtPath(err, "Invcr")
		}
	}
	if s.Invcee != nil {
		if err := s.Invcee.Validate(); err != nil {
			return messages.AtPath(err, "Invcee")
		}
	}
	if s.TaxRmt != nil {
		if err := s.TaxRmt.Validate(); err != nil {
			return messages.AtPath(err, "TaxRmt")
		}
	}
	if s.GrnshmtRmt != nil {
		if err := s.GrnshmtRmt.Validate(); err != nil {
			return messages.AtPath(err, "GrnshmtRmt")
		}
	}
	return messages.ValidateEach("AddtlRmtInf", s.AddtlRmtInf)
}

// ReferredDocumentInformation7 identifies a document the remittance refers
// to.
type ReferredDocumentInformation7 struct {
	Tp       *ReferredDocumentType4     `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Nb       *Max35Text                 `xml:"Nb,omitempty" json:"Nb,omitempty"`
	RltdDt   *ISODate                   `xml:"RltdDt,omitempty" json:"RltdDt,omitempty"`
	LineDtls []DocumentLineInformation1 `xml:"LineDtls,omitempty" json:"LineDtls,omitempty"`
}

func (r *ReferredDocumentInformation7) Validate() error {
	if r.Tp != nil {
		if err := r.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if r.Nb != nil {
		if err := r.Nb.Validate(); err != nil {
			return messages.AtPath(err, "Nb")
		}
	}
	if r.RltdDt != nil {
		if err := r.RltdDt.Validate(); err != nil {
			return messages.AtPath(err, "RltdDt")
		}
	}
	return messages.ValidateEach("LineDtls", r.LineDtls)
}

// ReferredDocumentType4 qualifies the referred document with an optional
// issuer.
type ReferredDocumentType4 struct {
	CdOrPrtry ReferredDocumentType3Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *Max35Text                  `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (r *ReferredDocumentType4) Validate() error {
	if err := r.CdOrPrtry.Validate(); err != nil {
		return messages.AtPath(err, "CdOrPrtry")
	}
	if r.Issr != nil {
		if err := r.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// ReferredDocumentType3Choice selects a coded or proprietary document
// type.
type ReferredDocumentType3Choice struct {
	Cd    *DocumentType6Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ReferredDocumentType3Choice) Validate() error {
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

// DocumentLineInformation1 details a single line of a referred document.
type DocumentLineInformation1 struct {
	Id   []DocumentLineIdentification1 `xml:"Id" json:"Id"`
	Desc *Max2048Text                  `xml:"Desc,omitempty" json:"Desc,omitempty"`
	Amt  *RemittanceAmount3            `xml:"Amt,omitempty" json:"Amt,omitempty"`
}

func (d *DocumentLineInformation1) Validate() error {
	if err := messages.ValidateEach("Id", d.Id); err != nil {
		return err
	}
	if d.Desc != nil {
		if err := d.Desc.Validate(); err != nil {
			return messages.AtPath(err, "Desc")
		}
	}
	if d.Amt != nil {
		if err := d.Amt.Validate(); err != nil {
			return messages.AtPath(err, "Amt")
		}
	}
	return nil
}

// DocumentLineIdentification1 identifies a document line.
type DocumentLineIdentification1 struct {
	Tp     *DocumentLineType1 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Nb     *Max35Text         `xml:"Nb,omitempty" json:"Nb,omitempty"`
	RltdDt *ISODate           `xml:"RltdDt,omitempty" json:"RltdDt,omitempty"`
}

func (d *DocumentLineIdentification1) Validate() error {
	if d.Tp != nil {
		if err := d.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if d.Nb != nil {
		if err := d.Nb.Validate(); err != nil {
			return messages.AtPath(err, "Nb")
		}
	}
	if d.RltdDt != nil {
		if err := d.RltdDt.Validate(); err != nil {
			return messages.AtPath(err, "RltdDt")
		}
	}
	return nil
}

// DocumentLineType1 qualifies a document line identification.
type DocumentLineType1 struct {
	CdOrPrtry DocumentLineType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *Max35Text              `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (d *DocumentLineType1) Validate() error {
	if err := d.CdOrPrtry.Validate(); err != nil {
		return messages.AtPath(err, "CdOrPrtry")
	}
	if d.Issr != nil {
		if err := d.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// DocumentLineType1Choice selects a coded or proprietary line type.
type DocumentLineType1Choice struct {
	Cd    *ExternalDocumentLineType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *DocumentLineType1Choice) Validate() error {
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

// RemittanceAmount2 breaks a remitted amount down by document.
type RemittanceAmount2 struct {
	DuePyblAmt        *ActiveOrHistoricCurrencyAndAmount `xml:"DuePyblAmt,omitempty" json:"DuePyblAmt,omitempty"`
	DscntApldAmt      []DiscountAmountAndType1           `xml:"DscntApldAmt,omitempty" json:"DscntApldAmt,omitempty"`
	CdtNoteAmt        *ActiveOrHistoricCurrencyAndAmount `xml:"CdtNoteAmt,omitempty" json:"CdtNoteAmt,omitempty"`
	TaxAmt            []TaxAmountAndType1                `xml:"TaxAmt,omitempty" json:"TaxAmt,omitempty"`
	AdjstmntAmtAndRsn []DocumentAdjustment1              `xml:"AdjstmntAmtAndRsn,omitempty" json:"AdjstmntAmtAndRsn,omitempty"`
	RmtdAmt           *ActiveOrHistoricCurrencyAndAmount `xml:"RmtdAmt,omitempty" json:"RmtdAmt,omitempty"`
}

func (r *RemittanceAmount2) Validate() error {
	if r.DuePyblAmt != nil {
		if err := r.DuePyblAmt.Validate(); err != nil {
			return messages.AtPath(err, "DuePyblAmt")
		}
	}
	if err := messages.ValidateEach("DscntApldAmt", r.DscntApldAmt); err != nil {
		return err
	}
	if r.CdtNoteAmt != nil {
		if err := r.CdtNoteAmt.Validate(); err != nil {
			return messages.AtPath(err, "CdtNoteAmt")
		}
	}
	if err := messages.ValidateEach("TaxAmt", r.TaxAmt); err != nil {
		return err
	}
	if err := messages.ValidateEach("AdjstmntAmtAndRsn", r.AdjstmntAmtAndRsn); err != nil {
		return err
	}
	if r.RmtdAmt != nil {
		if err := r.RmtdAmt.Validate(); err != nil {
			return messages.AtPath(err, "RmtdAmt")
		}
	}
	return nil
}

// RemittanceAmount3 is the per-document-line amount breakdown.
type RemittanceAmount3 struct {
	DuePyblAmt        *ActiveOrHistoricCurrencyAndAmount `xml:"DuePyblAmt,omitempty" json:"DuePyblAmt,omitempty"`
	DscntApldAmt      []DiscountAmountAndType1           `xml:"DscntApldAmt,omitempty" json:"DscntApldAmt,omitempty"`
	CdtNoteAmt        *ActiveOrHistoricCurrencyAndAmount `xml:"CdtNoteAmt,omitempty" json:"CdtNoteAmt,omitempty"`
	TaxAmt            []TaxAmountAndType1                `xml:"TaxAmt,omitempty" json:"TaxAmt,omitempty"`
	AdjstmntAmtAndRsn []DocumentAdjustment1              `xml:"AdjstmntAmtAndRsn,omitempty" json:"AdjstmntAmtAndRsn,omitempty"`
	RmtdAmt           *ActiveOrHistoricCurrencyAndAmount `xml:"RmtdAmt,omitempty" json:"RmtdAmt,omitempty"`
}

func (r *RemittanceAmount3) Validate() error {
	if r.DuePyblAmt != nil {
		if err := r.DuePyblAmt.Validate(); err != nil {
			return messages.AtPath(err, "DuePyblAmt")
		}
	}
	if err := messages.ValidateEach("DscntApldAmt", r.DscntApldAmt); err != nil {
		return err
	}
	if r.CdtNoteAmt != nil {
		if err := r.CdtNoteAmt.Validate(); err != nil {
			return messages.AtPath(err, "CdtNoteAmt")
		}
	}
	if err := messages.ValidateEach("TaxAmt", r.TaxAmt); err != nil {
		return err
	}
	if err := messages.ValidateEach("AdjstmntAmtAndRsn", r.AdjstmntAmtAndRsn); err != nil {
		return err
	}
	if r.RmtdAmt != nil {
		if err := r.RmtdAmt.Validate(); err != nil {
			return messages.AtPath(err, "RmtdAmt")
		}
	}
	return nil
}

// DiscountAmountAndType1 is a typed discount amount.
type DiscountAmountAndType1 struct {
	Tp  *DiscountAmountType1Choice        `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Amt ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
}

func (d *DiscountAmountAndType1) Validate() error {
	if d.Tp != nil {
		if err := d.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if err := d.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	return nil
}

// DiscountAmountType1Choice selects a coded or proprietary discount type.
type DiscountAmountType1Choice struct {
	Cd    *ExternalDiscountAmountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *DiscountAmountType1Choice) Validate() error {
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

// TaxAmountAndType1 is a typed tax amount.
type TaxAmountAndType1 struct {
	Tp  *TaxAmountType1Choice             `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Amt ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
}

func (d *TaxAmountAndType1) Validate() error {
	if d.Tp != nil {
		if err := d.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if err := d.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	return nil
}

// TaxAmountType1Choice selects a coded or proprietary tax amount type.
type TaxAmountType1Choice struct {
	Cd    *ExternalTaxAmountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *TaxAmountType1Choice) Validate() error {
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

// DocumentAdjustment1 records an adjustment applied to a document amount.
type DocumentAdjustment1 struct {
	Amt       ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CdtDbtInd *CreditDebitCode                  `xml:"CdtDbtInd,omitempty" json:"CdtDbtInd,omitempty"`
	Rsn       *Max4Text                         `xml:"Rsn,omitempty" json:"Rsn,omitempty"`
	AddtlInf  *Max140Text                       `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (d *DocumentAdjustment1) Validate() error {
	if err := d.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if d.CdtDbtInd != nil {
		if err := d.CdtDbtInd.Validate(); err != nil {
			return messages.AtPath(err, "CdtDbtInd")
		}
	}
	if d.Rsn != nil {
		if err := d.Rsn.Validate(); err != nil {
			return messages.AtPath(err, "Rsn")
		}
	}
	if d.AddtlInf != nil {
		if err := d.AddtlInf.Validate(); err != nil {
			return messages.AtPath(err, "AddtlInf")
		}
	}
	return nil
}

// CreditorReferenceInformation2 carries the creditor's structured
// reference.
type CreditorReferenceInformation2 struct {
	Tp  *CreditorReferenceType2 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ref *Max35Text              `xml:"Ref,omitempty" json:"Ref,omitempty"`
}

func (c *CreditorReferenceInformation2) Validate() error {
	if c.Tp != nil {
		if err := c.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if c.Ref != nil {
		if err := c.Ref.Validate(); err != nil {
			return messages.AtPath(err, "Ref")
		}
	}
	return nil
}

// CreditorReferenceType2 qualifies a creditor reference.
type CreditorReferenceType2 struct {
	CdOrPrtry CreditorReferenceType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *Max35Text                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (c *CreditorReferenceType2) Validate() error {
	if err := c.CdOrPrtry.Validate(); err != nil {
		return messages.AtPath(err, "CdOrPrtry")
	}
	if c.Issr != nil {
		if err := c.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// CreditorReferenceType1Choice selects a coded or proprietary reference
// type.
type CreditorReferenceType1Choice struct {
	Cd    *DocumentType3Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CreditorReferenceType1Choice) Validate() error {
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

// RemittanceLocation7 states where remittance advice is delivered.
type RemittanceLocation7 struct {
	RmtId       *Max35Text                `xml:"RmtId,omitempty" json:"RmtId,omitempty"`
	RmtLctnDtls []RemittanceLocationData1 `xml:"RmtLctnDtls,omitempty" json:"RmtLctnDtls,omitempty"`
}

func (r *RemittanceLocation7) Validate() error {
	if r.RmtId != nil {
		if err := r.RmtId.Validate(); err != nil {
			return messages.AtPath(err, "RmtId")
		}
	}
	return messages.ValidateEach("RmtLctnDtls", r.RmtLctnDtls)
}

// RemittanceLocationData1 is one delivery method and address for
// remittance advice.
type RemittanceLocationData1 struct {
	Mtd        RemittanceLocationMethod2Code `xml:"Mtd" json:"Mtd"`
	ElctrncAdr *Max2048Text                  `xml:"ElctrncAdr,omitempty" json:"ElctrncAdr,omitempty"`
	PstlAdr    *NameAndAddress16             `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (r *RemittanceLocationData1) Validate() error {
	if err := r.Mtd.Validate(); err != nil {
		return messages.AtPath(err, "Mtd")
	}
	if r.ElctrncAdr != nil {
		if err := r.ElctrncAdr.Validate(); err != nil {
			return messages.AtPath(err, "ElctrncAdr")
		}
	}
	if r.PstlAdr != nil {
		if err := r.PstlAdr.Validate(); err != nil {
			return messages.AtPath(err, "PstlAdr")
		}
	}
	return nil
}

// Purpose2Choice selects a coded or proprietary payment purpose.
type Purpose2Choice struct {
	Cd    *ExternalPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *Purpose2Choice) Validate() error {
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

// LocalInstrument2Choice selects a coded or proprietary local instrument.
type LocalInstrument2Choice struct {
	Cd    *ExternalLocalInstrument1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *LocalInstrument2Choice) Validate() error {
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
