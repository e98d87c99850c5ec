package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// MessageIdentification1 identifies a message by id and creation time.
type MessageIdentification1 struct {
	Id      Max35Text   `xml:"Id" json:"Id"`
	CreDtTm ISODateTime `xml:"CreDtTm" json:"CreDtTm"`
}

func (m *MessageIdentification1) Validate() error {
	if err := m.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if err := m.CreDtTm.Validate(); err != nil {
		return messages.AtPath(err, "CreDtTm")
	}
	return nil
}

// Pagination1 numbers a page within a paginated report.
type Pagination1 struct {
	PgNb      Max5NumericText `xml:"PgNb" json:"PgNb"`
	LastPgInd YesNoIndicator  `xml:"LastPgInd" json:"LastPgInd"`
}

func (p *Pagination1) Validate() error {
	if err := p.PgNb.Validate(); err != nil {
		return messages.AtPath(err, "PgNb")
	}
	return nil
}

// OriginalBusinessQuery1 references the query a report answers.
type OriginalBusinessQuery1 struct {
	MsgId   Max35Text    `xml:"MsgId" json:"MsgId"`
	MsgNmId *Max35Text   `xml:"MsgNmId,omitempty" json:"MsgNmId,omitempty"`
	CreDtTm *ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
}

func (o *OriginalBusinessQuery1) Validate() error {
	if err := o.MsgId.Validate(); err != nil {
		return messages.AtPath(err, "MsgId")
	}
	if o.MsgNmId != nil {
		if err := o.MsgNmId.Validate(); err != nil {
			return messages.AtPath(err, "MsgNmId")
		}
	}
	if o.CreDtTm != nil {
		if err := o.CreDtTm.Validate(); err != nil {
			return messages.AtPath(err, "CreDtTm")
		}
	}
	return nil
}

// DateAndDateTime2Choice selects a date or a date-time.
type DateAndDateTime2Choice struct {
	Dt   *ISODate     `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *ISODateTime `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (c *DateAndDateTime2Choice) Validate() error {
	if c.Dt != nil {
		if err := c.Dt.Validate(); err != nil {
			return messages.AtPath(err, "Dt")
		}
	}
	if c.DtTm != nil {
		if err := c.DtTm.Validate(); err != nil {
			return messages.AtPath(err, "DtTm")
		}
	}
	return nil
}

// DateTimePeriod1 is a closed date-time range.
type DateTimePeriod1 struct {
	FrDtTm ISODateTime `xml:"FrDtTm" json:"FrDtTm"`
	ToDtTm ISODateTime `xml:"ToDtTm" json:"ToDtTm"`
}

func (p *DateTimePeriod1) Validate() error {
	if err := p.FrDtTm.Validate(); err != nil {
		return messages.AtPath(err, "FrDtTm")
	}
	if err := p.ToDtTm.Validate(); err != nil {
		return messages.AtPath(err, "ToDtTm")
	}
	return nil
}

// DatePeriod2 is a closed date range.
type DatePeriod2 struct {
	FrDt ISODate `xml:"FrDt" json:"FrDt"`
	ToDt ISODate `xml:"ToDt" json:"ToDt"`
}

func (p *DatePeriod2) Validate() error {
	if err := p.FrDt.Validate(); err != nil {
		return messages.AtPath(err, "FrDt")
	}
	if err := p.ToDt.Validate(); err != nil {
		return messages.AtPath(err, "ToDt")
	}
	return nil
}

// SupplementaryData1 carries additional information qualified by where it
// applies.
type SupplementaryData1 struct {
	PlcAndNm *Max350Text                 `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1  `xml:"Envlp" json:"Envlp"`
}

func (s *SupplementaryData1) Validate() error {
	if s.PlcAndNm != nil {
		if err := s.PlcAndNm.Validate(); err != nil {
			return messages.AtPath(err, "PlcAndNm")
		}
	}
	return nil
}

// SupplementaryDataEnvelope1 is a technical envelope whose content is not
// constrained by the schema.
type SupplementaryDataEnvelope1 struct{}

func (s *SupplementaryDataEnvelope1) Validate() error { return nil }

// NameAndAddress16 couples a name with a structured address.
type NameAndAddress16 struct {
	Nm  Max140Text      `xml:"Nm" json:"Nm"`
	Adr PostalAddress24 `xml:"Adr" json:"Adr"`
}

func (n *NameAndAddress16) Validate() error {
	if err := n.Nm.Validate(); err != nil {
		return messages.AtPath(err, "Nm")
	}
	if err := n.Adr.Validate(); err != nil {
		return messages.AtPath(err, "Adr")
	}
	return nil
}

// NameAndAddress5 couples a name with an optional legacy address form.
type NameAndAddress5 struct {
	Nm  Max350Text      `xml:"Nm" json:"Nm"`
	Adr *PostalAddress1 `xml:"Adr,omitempty" json:"Adr,omitempty"`
}

func (n *NameAndAddress5) Validate() error {
	if err := n.Nm.Validate(); err != nil {
		return messages.AtPath(err, "Nm")
	}
	if n.Adr != nil {
		if err := n.Adr.Validate(); err != nil {
			return messages.AtPath(err, "Adr")
		}
	}
	return nil
}

// PostalAddress1 is the legacy postal address form.
type PostalAddress1 struct {
	AdrTp       *AddressType2Code `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	AdrLine     []Max70Text       `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
	StrtNm      *Max70Text        `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text        `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *Max16Text        `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text        `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *Max35Text        `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        CountryCode       `xml:"Ctry" json:"Ctry"`
}

func (a *PostalAddress1) Validate() error {
	if a.AdrTp != nil {
		if err := a.AdrTp.Validate(); err != nil {
			return messages.AtPath(err, "AdrTp")
		}
	}
	if err := messages.ValidateEach("AdrLine", a.AdrLine); err != nil {
		return err
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
	if a.CtrySubDvsn != nil {
		if err := a.CtrySubDvsn.Validate(); err != nil {
			return messages.AtPath(err, "CtrySubDvsn")
		}
	}
	if err := a.Ctry.Validate(); err != nil {
		return messages.AtPath(err, "Ctry")
	}
	return nil
}
