package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// PostalAddress24 is a structured or free-form postal address.
type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	Dept        *Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *Max70Text          `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *Max35Text          `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text          `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *Max35Text          `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *Max35Text          `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a *PostalAddress24) Validate() error {
	if a.AdrTp != nil {
		if err := a.AdrTp.Validate(); err != nil {
			return messages.AtPath(err, "AdrTp")
		}
	}
	if a.Dept != nil {
		if err := a.Dept.Validate(); err != nil {
			return messages.AtPath(err, "Dept")
		}
	}
	if a.SubDept != nil {
		if err := a.SubDept.Validate(); err != nil {
			return messages.AtPath(err, "SubDept")
		}
	}
	if a.StrtNm != nil {
		if err := a.StrtNm.Validate(); err != nil {
			return messages.AtPath(err, "StrtNm")
		}
	}
	if a.BldgNb != nil {
		if err := a.BldgNb.Validate(); err != nil {
			return messages.AtPath(err, "BldgNb")
		}
	}
	if a.BldgNm != nil {
		if err := a.BldgNm.Validate(); err != nil {
			return messages.AtPath(err, "BldgNm")
		}
	}
	if a.Flr != nil {
		if err := a.Flr.Validate(); err != nil {
			return messages.AtPath(err, "Flr")
		}
	}
	if a.PstBx != nil {
		if err := a.PstBx.Validate(); err != nil {
			return messages.AtPath(err, "PstBx")
		}
	}
	if a.Room != nil {
		if err := a.Room.Validate(); err != nil {
			return messages.AtPath(err, "Room")
		}
	}
	if a.PstCd != nil {
		if err := a.PstCd.Validate(); err != nil {
			return messages.AtPath(err, "PstCd")
		}
	}
	if a.TwnNm != nil {
		if err := a.TwnNm.Validate(); err != nil {
			return messages.AtPath(err, "TwnNm")
		}
	}
	if a.TwnLctnNm != nil {
		if err := a.TwnLctnNm.Validate(); err != nil {
			return messages.AtPath(err, "TwnLctnNm")
		}
	}
	if a.DstrctNm != nil {
		if err := a.DstrctNm.Validate(); err != nil {
			return messages.AtPath(err, "DstrctNm")
		}
	}
	if a.CtrySubDvsn != nil {
		if err := a.CtrySubDvsn.Validate(); err != nil {
			return messages.AtPath(err, "CtrySubDvsn")
		}
	}
	if a.Ctry != nil {
		if err := a.Ctry.Validate(); err != nil {
			return messages.AtPath(err, "Ctry")
		}
	}
	return messages.ValidateEach("AdrLine", a.AdrLine)
}

// AddressType3Choice selects a coded or proprietary address type.
type AddressType3Choice struct {
	Cd    *AddressType2Code      `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification30 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *AddressType3Choice) Validate() error {
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

// GenericIdentification30 is a proprietary identification with a fixed
// 4-character identifier.
type GenericIdentification30 struct {
	Id      Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    Max35Text              `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g *GenericIdentification30) Validate() error {
	if err := g.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if err := g.Issr.Validate(); err != nil {
		return messages.AtPath(err, "Issr")
	}
	if g.SchmeNm != nil {
		if err := g.SchmeNm.Validate(); err != nil {
			return messages.AtPath(err, "SchmeNm")
		}
	}
	return nil
}

// GenericIdentification3 is a free-form identification with an optional
// issuer.
type GenericIdentification3 struct {
	Id   Max35Text  `xml:"Id" json:"Id"`
	Issr *Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericIdentification3) Validate() error {
	if err := g.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if g.Issr != nil {
		if err := g.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	return nil
}

// GenericIdentification1 is an identification with optional scheme and
// issuer.
type GenericIdentification1 struct {
	Id      Max35Text  `xml:"Id" json:"Id"`
	SchmeNm *Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericIdentification1) Validate() error {
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

// GenericIdentification32 identifies a point of interaction and the parties
// behind it.
type GenericIdentification32 struct {
	Id     Max35Text       `xml:"Id" json:"Id"`
	Tp     *PartyType3Code `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Issr   *PartyType4Code `xml:"Issr,omitempty" json:"Issr,omitempty"`
	ShrtNm *Max35Text      `xml:"ShrtNm,omitempty" json:"ShrtNm,omitempty"`
}

func (g *GenericIdentification32) Validate() error {
	if err := g.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if g.Tp != nil {
		if err := g.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if g.Issr != nil {
		if err := g.Issr.Validate(); err != nil {
			return messages.AtPath(err, "Issr")
		}
	}
	if g.ShrtNm != nil {
		if err := g.ShrtNm.Validate(); err != nil {
			return messages.AtPath(err, "ShrtNm")
		}
	}
	return nil
}

// Contact4 carries the contact details of a party.
type Contact4 struct {
	NmPrfx    *NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	EmailAdr  *Max2048Text                 `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []OtherContact1              `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrefrdMtd *PreferredContactMethod1Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

func (c *Contact4) Validate() error {
	if c.NmPrfx != nil {
		if err := c.NmPrfx.Validate(); err != nil {
			return messages.AtPath(err, "NmPrfx")
		}
	}
	if c.Nm != nil {
		if err := c.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if c.PhneNb != nil {
		if err := c.PhneNb.Validate(); err != nil {
			return messages.AtPath(err, "PhneNb")
		}
	}
	if c.MobNb != nil {
		if err := c.MobNb.Validate(); err != nil {
			return messages.AtPath(err, "MobNb")
		}
	}
	if c.FaxNb != nil {
		if err := c.FaxNb.Validate(); err != nil {
			return messages.AtPath(err, "FaxNb")
		}
	}
	if c.EmailAdr != nil {
		if err := c.EmailAdr.Validate(); err != nil {
			return messages.AtPath(err, "EmailAdr")
		}
	}
	if c.EmailPurp != nil {
		if err := c.EmailPurp.Validate(); err != nil {
			return messages.AtPath(err, "EmailPurp")
		}
	}
	if c.JobTitl != nil {
		if err := c.JobTitl.Validate(); err != nil {
			return messages.AtPath(err, "JobTitl")
		}
	}
	if c.Rspnsblty != nil {
		if err := c.Rspnsblty.Validate(); err != nil {
			return messages.AtPath(err, "Rspnsblty")
		}
	}
	if c.Dept != nil {
		if err := c.Dept.Validate(); err != nil {
			return messages.AtPath(err, "Dept")
		}
	}
	if err := messages.ValidateEach("Othr", c.Othr); err != nil {
		return err
	}
	if c.PrefrdMtd != nil {
		if err := c.PrefrdMtd.Validate(); err != nil {
			return messages.AtPath(err, "PrefrdMtd")
		}
	}
	return nil
}

// OtherContact1 is a contact detail on an alternate channel.
type OtherContact1 struct {
	ChanlTp Max4Text    `xml:"ChanlTp" json:"ChanlTp"`
	Id      *Max128Text `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (o *OtherContact1) Validate() error {
	if err := o.ChanlTp.Validate(); err != nil {
		return messages.AtPath(err, "ChanlTp")
	}
	if o.Id != nil {
		if err := o.Id.Validate(); err != nil {
			return messages.AtPath(err, "Id")
		}
	}
	return nil
}

// DateAndPlaceOfBirth1 identifies a person by birth date and place.
type DateAndPlaceOfBirth1 struct {
	BirthDt     ISODate     `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth Max35Text   `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

func (d *DateAndPlaceOfBirth1) Validate() error {
	if err := d.BirthDt.Validate(); err != nil {
		return messages.AtPath(err, "BirthDt")
	}
	if d.PrvcOfBirth != nil {
		if err := d.PrvcOfBirth.Validate(); err != nil {
			return messages.AtPath(err, "PrvcOfBirth")
		}
	}
	if err := d.CityOfBirth.Validate(); err != nil {
		return messages.AtPath(err, "CityOfBirth")
	}
	if err := d.CtryOfBirth.Validate(); err != nil {
		return messages.AtPath(err, "CtryOfBirth")
	}
	return nil
}

// OrganisationIdentification29 identifies an organisation by BIC, LEI, or
// scheme-based identifiers.
type OrganisationIdentification29 struct {
	AnyBIC *AnyBICDec2014Identifier             `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (o *OrganisationIdentification29) Validate() error {
	if o.AnyBIC != nil {
		if err := o.AnyBIC.Validate(); err != nil {
			return messages.AtPath(err, "AnyBIC")
		}
	}
	if o.LEI != nil {
		if err := o.LEI.Validate(); err != nil {
			return messages.AtPath(err, "LEI")
		}
	}
	return messages.ValidateEach("Othr", o.Othr)
}

// GenericOrganisationIdentification1 is a scheme-qualified organisation
// identifier.
type GenericOrganisationIdentification1 struct {
	Id      Max35Text                                    `xml:"Id" json:"Id"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericOrganisationIdentification1) Validate() error {
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

// OrganisationIdentificationSchemeName1Choice selects a coded or
// proprietary organisation identification scheme.
type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *ExternalOrganisationIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                               `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *OrganisationIdentificationSchemeName1Choice) Validate() error {
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

// PersonIdentification13 identifies a person by birth data or scheme-based
// identifiers.
type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (p *PersonIdentification13) Validate() error {
	if p.DtAndPlcOfBirth != nil {
		if err := p.DtAndPlcOfBirth.Validate(); err != nil {
			return messages.AtPath(err, "DtAndPlcOfBirth")
		}
	}
	return messages.ValidateEach("Othr", p.Othr)
}

// GenericPersonIdentification1 is a scheme-qualified person identifier.
type GenericPersonIdentification1 struct {
	Id      Max35Text                              `xml:"Id" json:"Id"`
	SchmeNm *PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                             `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericPersonIdentification1) Validate() error {
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

// PersonIdentificationSchemeName1Choice selects a coded or proprietary
// person identification scheme.
type PersonIdentificationSchemeName1Choice struct {
	Cd    *ExternalPersonIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *PersonIdentificationSchemeName1Choice) Validate() error {
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

// Party38Choice selects an organisation or a private person.
type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (c *Party38Choice) Validate() error {
	if c.OrgId != nil {
		if err := c.OrgId.Validate(); err != nil {
			return messages.AtPath(err, "OrgId")
		}
	}
	if c.PrvtId != nil {
		if err := c.PrvtId.Validate(); err != nil {
			return messages.AtPath(err, "PrvtId")
		}
	}
	return nil
}

// PartyIdentification135 identifies a party by name, address,
// identification, residence, and contact details.
type PartyIdentification135 struct {
	Nm        *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party38Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *CountryCode     `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (p *PartyIdentification135) Validate() error {
	if p.Nm != nil {
		if err := p.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if p.PstlAdr != nil {
		if err := p.PstlAdr.Validate(); err != nil {
			return messages.AtPath(err, "PstlAdr")
		}
	}
	if p.Id != nil {
		if err := p.Id.Validate(); err != nil {
			return messages.AtPath(err, "Id")
		}
	}
	if p.CtryOfRes != nil {
		if err := p.CtryOfRes.Validate(); err != nil {
			return messages.AtPath(err, "CtryOfRes")
		}
	}
	if p.CtctDtls != nil {
		if err := p.CtctDtls.Validate(); err != nil {
			return messages.AtPath(err, "CtctDtls")
		}
	}
	return nil
}

// Party40Choice selects a party or a financial institution agent.
type Party40Choice struct {
	Pty *PartyIdentification135                       `xml:"Pty,omitempty" json:"Pty,omitempty"`
	Agt *BranchAndFinancialInstitutionIdentification6 `xml:"Agt,omitempty" json:"Agt,omitempty"`
}

func (c *Party40Choice) Validate() error {
	if c.Pty != nil {
		if err := c.Pty.Validate(); err != nil {
			return messages.AtPath(err, "Pty")
		}
	}
	if c.Agt != nil {
		if err := c.Agt.Validate(); err != nil {
			return messages.AtPath(err, "Agt")
		}
	}
	return nil
}
