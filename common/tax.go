package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// TaxInformation7 is the tax detail block used inside structured
// remittance.
type TaxInformation7 struct {
	Cdtr            *TaxParty1                         `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	Dbtr            *TaxParty2                         `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	UltmtDbtr       *TaxParty2                         `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	AdmstnZone      *Max35Text                         `xml:"AdmstnZone,omitempty" json:"AdmstnZone,omitempty"`
	RefNb           *Max140Text                        `xml:"RefNb,omitempty" json:"RefNb,omitempty"`
	Mtd             *Max35Text                         `xml:"Mtd,omitempty" json:"Mtd,omitempty"`
	TtlTaxblBaseAmt *ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxblBaseAmt,omitempty" json:"TtlTaxblBaseAmt,omitempty"`
	TtlTaxAmt       *ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxAmt,omitempty" json:"TtlTaxAmt,omitempty"`
	Dt              *ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	SeqNb           *Number                            `xml:"SeqNb,omitempty" json:"SeqNb,omitempty"`
	Rcrd            []TaxRecord2                       `xml:"Rcrd,omitempty" json:"Rcrd,omitempty"`
}

func (t *TaxInformation7) Validate() error {
	if t.Cdtr != nil {
		if err := t.Cdtr.Validate(); err != nil {
			return messages.AtPath(err, "Cdtr")
		}
	}
	if t.Dbtr != nil {
		if err := t.Dbtr.Validate(); err != nil {
			return messages.AtPath(err, "Dbtr")
		}
	}
	if t.UltmtDbtr != nil {
		if err := t.UltmtDbtr.Validate(); err != nil {
			return messages.AtPath(err, "UltmtDbtr")
		}
	}
	if t.AdmstnZone != nil {
		if err := t.AdmstnZone.Validate(); err != nil {
			return messages.AtPath(err, "AdmstnZone")
		}
	}
	if t.RefNb != nil {
		if err := t.RefNb.Validate(); err != nil {
			return messages.AtPath(err, "RefNb")
		}
	}
	if t.Mtd != nil {
		if err := t.Mtd.Validate(); err != nil {
			return messages.AtPath(err, "Mtd")
		}
	}
	if t.TtlTaxblBaseAmt != nil {
		if err := t.TtlTaxblBaseAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlTaxblBaseAmt")
		}
	}
	if t.TtlTaxAmt != nil {
		if err := t.TtlTaxAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlTaxAmt")
		}
	}
	if t.Dt != nil {
		if err := t.Dt.Validate(); err != nil {
			return messages.AtPath(err, "Dt")
		}
	}
	return messages.ValidateEach("Rcrd", t.Rcrd)
}

// TaxInformation8 is the entry-level tax block. It differs from
// TaxInformation7 only by the absence of the ultimate debtor.
type TaxInformation8 struct {
	Cdtr            *TaxParty1                         `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	Dbtr            *TaxParty2                         `xml:"Dbtr,omitempty" json:"Dbtr,omitempty"`
	AdmstnZone      *Max35Text                         `xml:"AdmstnZone,omitempty" json:"AdmstnZone,omitempty"`
	RefNb           *Max140Text                        `xml:"RefNb,omitempty" json:"RefNb,omitempty"`
	Mtd             *Max35Text                         `xml:"Mtd,omitempty" json:"Mtd,omitempty"`
	TtlTaxblBaseAmt *ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxblBaseAmt,omitempty" json:"TtlTaxblBaseAmt,omitempty"`
	TtlTaxAmt       *ActiveOrHistoricCurrencyAndAmount `xml:"TtlTaxAmt,omitempty" json:"TtlTaxAmt,omitempty"`
	Dt              *ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	SeqNb           *Number                            `xml:"SeqNb,omitempty" json:"SeqNb,omitempty"`
	Rcrd            []TaxRecord2                       `xml:"Rcrd,omitempty" json:"Rcrd,omitempty"`
}

func (t *TaxInformation8) Validate() error {
	if t.Cdtr != nil {
		if err := t.Cdtr.Validate(); err != nil {
			return messages.AtPath(err, "Cdtr")
		}
	}
	if t.Dbtr != nil {
		if err := t.Dbtr.Validate(); err != nil {
			return messages.AtPath(err, "Dbtr")
		}
	}
	if t.AdmstnZone != nil {
		if err := t.AdmstnZone.Validate(); err != nil {
			return messages.AtPath(err, "AdmstnZone")
		}
	}
	if t.RefNb != nil {
		if err := t.RefNb.Validate(); err != nil {
			return messages.AtPath(err, "RefNb")
		}
	}
	if t.Mtd != nil {
		if err := t.Mtd.Validate(); err != nil {
			return messages.AtPath(err, "Mtd")
		}
	}
	if t.TtlTaxblBaseAmt != nil {
		if err := t.TtlTaxblBaseAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlTaxblBaseAmt")
		}
	}
	if t.TtlTaxAmt != nil {
		if err := t.TtlTaxAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlTaxAmt")
		}
	}
	if t.Dt != nil {
		if err := t.Dt.Validate(); err != nil {
			return messages.AtPath(err, "Dt")
		}
	}
	return messages.ValidateEach("Rcrd", t.Rcrd)
}

// TaxParty1 identifies the creditor side of a tax obligation.
type TaxParty1 struct {
	TaxId  *Max35Text `xml:"TaxId,omitempty" json:"TaxId,omitempty"`
	RegnId *Max35Text `xml:"RegnId,omitempty" json:"RegnId,omitempty"`
	TaxTp  *Max35Text `xml:"TaxTp,omitempty" json:"TaxTp,omitempty"`
}

func (t *TaxParty1) Validate() error {
	if t.TaxId != nil {
		if err := t.TaxId.Validate(); err != nil {
			return messages.AtPath(err, "TaxId")
		}
	}
	if t.RegnId != nil {
		if err := t.RegnId.Validate(); err != nil {
			return messages.AtPath(err, "RegnId")
		}
	}
	if t.TaxTp != nil {
		if err := t.TaxTp.Validate(); err != nil {
			return messages.AtPath(err, "TaxTp")
		}
	}
	return nil
}

// TaxParty2 identifies the debtor side, with an optional authorisation.
type TaxParty2 struct {
	TaxId   *Max35Text         `xml:"TaxId,omitempty" json:"TaxId,omitempty"`
	RegnId  *Max35Text         `xml:"RegnId,omitempty" json:"RegnId,omitempty"`
	TaxTp   *Max35Text         `xml:"TaxTp,omitempty" json:"TaxTp,omitempty"`
	Authstn *TaxAuthorisation1 `xml:"Authstn,omitempty" json:"Authstn,omitempty"`
}

func (t *TaxParty2) Validate() error {
	if t.TaxId != nil {
		if err := t.TaxId.Validate(); err != nil {
			return messages.AtPath(err, "TaxId")
		}
	}
	if t.RegnId != nil {
		if err := t.RegnId.Validate(); err != nil {
			return messages.AtPath(err, "RegnId")
		}
	}
	if t.TaxTp != nil {
		if err := t.TaxTp.Validate(); err != nil {
			return messages.AtPath(err, "TaxTp")
		}
	}
	if t.Authstn != nil {
		if err := t.Authstn.Validate(); err != nil {
			return messages.AtPath(err, "Authstn")
		}
	}
	return nil
}

// TaxAuthorisation1 names the person empowered to act on the debtor's
// behalf.
type TaxAuthorisation1 struct {
	Titl *Max35Text  `xml:"Titl,omitempty" json:"Titl,omitempty"`
	Nm   *Max140Text `xml:"Nm,omitempty" json:"Nm,omitempty"`
}

func (t *TaxAuthorisation1) Validate() error {
	if t.Titl != nil {
		if err := t.Titl.Validate(); err != nil {
			return messages.AtPath(err, "Titl")
		}
	}
	if t.Nm != nil {
		if err := t.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	return nil
}

// TaxRecord2 is one tax assessment line.
type TaxRecord2 struct {
	Tp       *Max35Text  `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ctgy     *Max35Text  `xml:"Ctgy,omitempty" json:"Ctgy,omitempty"`
	CtgyDtls *Max35Text  `xml:"CtgyDtls,omitempty" json:"CtgyDtls,omitempty"`
	DbtrSts  *Max35Text  `xml:"DbtrSts,omitempty" json:"DbtrSts,omitempty"`
	CertId   *Max35Text  `xml:"CertId,omitempty" json:"CertId,omitempty"`
	FrmsCd   *Max35Text  `xml:"FrmsCd,omitempty" json:"FrmsCd,omitempty"`
	Prd      *TaxPeriod2 `xml:"Prd,omitempty" json:"Prd,omitempty"`
	TaxAmt   *TaxAmount2 `xml:"TaxAmt,omitempty" json:"TaxAmt,omitempty"`
	AddtlInf *Max140Text `xml:"AddtlInf,omitempty" json:"AddtlInf,omitempty"`
}

func (t *TaxRecord2) Validate() error {
	if t.Tp != nil {
		if err := t.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if t.Ctgy != nil {
		if err := t.Ctgy.Validate(); err != nil {
			return messages.AtPath(err, "Ctgy")
		}
	}
	if t.CtgyDtls != nil {
		if err := t.CtgyDtls.Validate(); err != nil {
			return messages.AtPath(err, "CtgyDtls")
		}
	}
	if t.DbtrSts != nil {
		if err := t.DbtrSts.Validate(); err != nil {
			return messages.AtPath(err, "DbtrSts")
		}
	}
	if t.CertId != nil {
		if err := t.CertId.Validate(); err != nil {
			return messages.AtPath(err, "CertId")
		}
	}
	if t.FrmsCd != nil {
		if err := t.FrmsCd.Validate(); err != nil {
			return messages.AtPath(err, "FrmsCd")
		}
	}
	if t.Prd != nil {
		if err := t.Prd.Validate(); err != nil {
			return messages.AtPath(err, "Prd")
		}
	}
	if t.TaxAmt != nil {
		if err := t.TaxAmt.Validate(); err != nil {
			return messages.AtPath(err, "TaxAmt")
		}
	}
	if t.AddtlInf != nil {
		if err := t.AddtlInf.Validate(); err != nil {
			return messages.AtPath(err, "AddtlInf")
		}
	}
	return nil
}

// TaxPeriod2 is the fiscal period a tax record applies to.
type TaxPeriod2 struct {
	Yr     *ISODate              `xml:"Yr,omitempty" json:"Yr,omitempty"`
	Tp     *TaxRecordPeriod1Code `xml:"Tp,omitempty" json:"Tp,omitempty"`
	FrToDt *DatePeriod2          `xml:"FrToDt,omitempty" json:"FrToDt,omitempty"`
}

func (t *TaxPeriod2) Validate() error {
	if t.Yr != nil {
		if err := t.Yr.Validate(); err != nil {
			return messages.AtPath(err, "Yr")
		}
	}
	if t.Tp != nil {
		if err := t.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if t.FrToDt != nil {
		if err := t.FrToDt.Validate(); err != nil {
			return messages.AtPath(err, "FrToDt")
		}
	}
	return nil
}

// TaxAmount2 is the taxable base, rate and resulting amount.
type TaxAmount2 struct {
	Rate         *PercentageRate                    `xml:"Rate,omitempty" json:"Rate,omitempty"`
	TaxblBaseAmt *ActiveOrHistoricCurrencyAndAmount `xml:"TaxblBaseAmt,omitempty" json:"TaxblBaseAmt,omitempty"`
	TtlAmt       *ActiveOrHistoricCurrencyAndAmount `xml:"TtlAmt,omitempty" json:"TtlAmt,omitempty"`
	Dtls         []TaxRecordDetails2                `xml:"Dtls,omitempty" json:"Dtls,omitempty"`
}

func (t *TaxAmount2) Validate() error {
	if t.Rate != nil {
		if err := t.Rate.Validate(); err != nil {
			return messages.AtPath(err, "Rate")
		}
	}
	if t.TaxblBaseAmt != nil {
		if err := t.TaxblBaseAmt.Validate(); err != nil {
			return messages.AtPath(err, "TaxblBaseAmt")
		}
	}
	if t.TtlAmt != nil {
		if err := t.TtlAmt.Validate(); err != nil {
			return messages.AtPath(err, "TtlAmt")
		}
	}
	return messages.ValidateEach("Dtls", t.Dtls)
}

// TaxRecordDetails2 pairs a period with the amount assessed for it.
type TaxRecordDetails2 struct {
	Prd *TaxPeriod2                       `xml:"Prd,omitempty" json:"Prd,omitempty"`
	Amt ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
}

func (t *TaxRecordDetails2) Validate() error {
	if t.Prd != nil {
		if err := t.Prd.Validate(); err != nil {
			return messages.AtPath(err, "Prd")
		}
	}
	if err := t.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	return nil
}

// TaxCharges2 is the simple tax summary used on charge records.
type TaxCharges2 struct {
	Id   *Max35Text                         `xml:"Id,omitempty" json:"Id,omitempty"`
	Rate *PercentageRate                    `xml:"Rate,omitempty" json:"Rate,omitempty"`
	Amt  *ActiveOrHistoricCurrencyAndAmount `xml:"Amt,omitempty" json:"Amt,omitempty"`
}

func (t *TaxCharges2) Validate() error {
	if t.Id != nil {
		if err := t.Id.Validate(); err != nil {
			return messages.AtPath(err, "Id")
		}
	}
	if t.Rate != nil {
		if err := t.Rate.Validate(); err != nil {
			return messages.AtPath(err, "Rate")
		}
	}
	if t.Amt != nil {
		if err := t.Amt.Validate(); err != nil {
			return messages.AtPath(err, "Amt")
		}
	}
	return nil
}

// Garnishment3 describes a court-ordered deduction carried in
// remittance.
type Garnishment3 struct {
	Tp                GarnishmentType1                   `xml:"Tp" json:"Tp"`
	Grnshee           *PartyIdentification135            `xml:"Grnshee,omitempty" json:"Grnshee,omitempty"`
	GrnshmtAdmstr     *PartyIdentification135            `xml:"GrnshmtAdmstr,omitempty" json:"GrnshmtAdmstr,omitempty"`
	RefNb             *Max140Text                        `xml:"RefNb,omitempty" json:"RefNb,omitempty"`
	Dt                *ISODate                           `xml:"Dt,omitempty" json:"Dt,omitempty"`
	RmtdAmt           *ActiveOrHistoricCurrencyAndAmount `xml:"RmtdAmt,omitempty" json:"RmtdAmt,omitempty"`
	FmlyMdclInsrncInd *TrueFalseIndicator                `xml:"FmlyMdclInsrncInd,omitempty" json:"FmlyMdclInsrncInd,omitempty"`
	MplyeeTermntnInd  *TrueFalseIndicator                `xml:"MplyeeTermntnInd,omitempty" json:"MplyeeTermntnInd,omitempty"`
}

func (g *Garnishment3) Validate() error {
	if err := g.Tp.Validate(); err != nil {
		return messages.AtPath(err, "Tp")
	}
	if g.Grnshee != nil {
		if err := g.Grnshee.Validate(); err != nil {
			return messages.AtPath(err, "Grnshee")
		}
	}
	if g.GrnshmtAdmstr != nil {
		if err := g.GrnshmtAdmstr.Validate(); err != nil {
			return messages.AtPath(err, "GrnshmtAdmstr")
		}
	}
	if g.RefNb != nil {
		if err := g.RefNb.Validate(); err != nil {
			return messages.AtPath(err, "RefNb")
		}
	}
	if g.Dt != nil {
		if err := g.Dt.Validate(); err != nil {
			return messages.AtPath(err, "Dt")
		}
	}
	if g.RmtdAmt != nil {
		if err := g.RmtdAmt.Validate(); err != nil {
			return messages.AtPath(err, "RmtdAmt")
		}
	}
	return nil
}

// GarnishmentType1 qualifies a garnishment with an optional issuer.
type GarnishmentType1 struct {
	CdOrPrtry GarnishmentType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *Max35Text             `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GarnishmentType1) Validate() error {
	if err := g.CdOrPrtry.Validate(); err != nil {
		return messages.AtPath(err, "CdOrPrtry")
	}
	if g.Issr != nil {
		if err := g.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// GarnishmentType1Choice selects a coded or proprietary garnishment
// type.
type GarnishmentType1Choice struct {
	Cd    *ExternalGarnishmentType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *GarnishmentType1Choice) Validate() error {
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
