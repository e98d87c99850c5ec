package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// BranchAndFinancialInstitutionIdentification6 identifies an agent,
// optionally down to a specific branch.
type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData3                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b *BranchAndFinancialInstitutionIdentification6) Validate() error {
	if err := b.FinInstnId.Validate(); err != nil {
		return messages.AtPath(err, "FinInstnId")
	}
	if b.BrnchId != nil {
		if err := b.BrnchId.Validate(); err != nil {
			return messages.AtPath(err, "BrnchId")
		}
	}
	return nil
}

// FinancialInstitutionIdentification18 identifies a financial institution
// by BIC, clearing system membership, LEI, or name and address.
type FinancialInstitutionIdentification18 struct {
	BICFI       *BICFIDec2014Identifier                `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2   `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *LEIIdentifier                         `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *Max140Text                            `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                       `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1       `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f *FinancialInstitutionIdentification18) Validate() error {
	if f.BICFI != nil {
		if err := f.BICFI.Validate(); err != nil {
			return messages.AtPath(err, "BICFI")
		}
	}
	if f.ClrSysMmbId != nil {
		if err := f.ClrSysMmbId.Validate(); err != nil {
			return messages.AtPath(err, "ClrSysMmbId")
		}
	}
	if f.LEI != nil {
		if err := f.LEI.Validate(); err != nil {
			return messages.AtPath(err, "LEI")
		}
	}
	if f.Nm != nil {
		if err := f.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if f.PstlAdr != nil {
		if err := f.PstlAdr.Validate(); err != nil {
			return messages.AtPath(err, "PstlAdr")
		}
	}
	if f.Othr != nil {
		if err := f.Othr.Validate(); err != nil {
			return messages.AtPath(err, "Othr")
		}
	}
	return nil
}

// ClearingSystemMemberIdentification2 is a membership in a clearing
// system.
type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbId    Max35Text                            `xml:"MmbId" json:"MmbId"`
}

func (c *ClearingSystemMemberIdentification2) Validate() error {
	if c.ClrSysId != nil {
		if err := c.ClrSysId.Validate(); err != nil {
			return messages.AtPath(err, "ClrSysId")
		}
	}
	if err := c.MmbId.Validate(); err != nil {
		return messages.AtPath(err, "MmbId")
	}
	return nil
}

// ClearingSystemIdentification2Choice selects a coded or proprietary
// clearing system.
type ClearingSystemIdentification2Choice struct {
	Cd    *ExternalClearingSystemIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ClearingSystemIdentification2Choice) Validate() error {
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

// GenericFinancialIdentification1 is a scheme-qualified financial
// institution identifier.
type GenericFinancialIdentification1 struct {
	Id      Max35Text                                 `xml:"Id" json:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericFinancialIdentification1) Validate() error {
	if err := g.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if g.SchmeNm != nil {
		if err := g.SchmeNm.Validate(); err != nil {
			return messages.AtPath(err, "SchmeNm")
		}
	}
	if g.Issr != nil {
		if err := g.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// FinancialIdentificationSchemeName1Choice selects a coded or proprietary
// financial identification scheme.
type FinancialIdentificationSchemeName1Choice struct {
	Cd    *ExternalFinancialInstitutionIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *FinancialIdentificationSchemeName1Choice) Validate() error {
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

// BranchData3 identifies a specific branch of a financial institution.
type BranchData3 struct {
	Id      *Max35Text       `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *LEIIdentifier   `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b *BranchData3) Validate() error {
	if b.Id != nil {
		if err := b.Id.Validate(); err != nil {
			return messages.AtPath(err, "Id")
		}
	}
	if b.LEI != nil {
		if err := b.LEI.Validate(); err != nil {
			return messages.AtPath(err, "LEI")
		}
	}
	if b.Nm != nil {
		if err := b.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if b.PstlAdr != nil {
		if err := b.PstlAdr.Validate(); err != nil {
			return messages.AtPath(err, "PstlAdr")
		}
	}
	return nil
}
