package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// CashAccount39 describes an account together with its owner and servicer.
type CashAccount39 struct {
	Id   AccountIdentification4Choice                  `xml:"Id" json:"Id"`
	Tp   *CashAccountType2Choice                       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode                 `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1                  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
	Ownr *PartyIdentification135                       `xml:"Ownr,omitempty" json:"Ownr,omitempty"`
	Svcr *BranchAndFinancialInstitutionIdentification6 `xml:"Svcr,omitempty" json:"Svcr,omitempty"`
}

func (a *CashAccount39) Validate() error {
	if err := a.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if a.Tp != nil {
		if err := a.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if a.Ccy != nil {
		if err := a.Ccy.Validate(); err != nil {
			return messages.AtPath(err, "Ccy")
		}
	}
	if a.Nm != nil {
		if err := a.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if a.Prxy != nil {
		if err := a.Prxy.Validate(); err != nil {
			return messages.AtPath(err, "Prxy")
		}
	}
	if a.Ownr != nil {
		if err := a.Ownr.Validate(); err != nil {
			return messages.AtPath(err, "Ownr")
		}
	}
	if a.Svcr != nil {
		if err := a.Svcr.Validate(); err != nil {
			return messages.AtPath(err, "Svcr")
		}
	}
	return nil
}

// CashAccount38 is the account form without owner and servicer.
type CashAccount38 struct {
	Id   AccountIdentification4Choice  `xml:"Id" json:"Id"`
	Tp   *CashAccountType2Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (a *CashAccount38) Validate() error {
	if err := a.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if a.Tp != nil {
		if err := a.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if a.Ccy != nil {
		if err := a.Ccy.Validate(); err != nil {
			return messages.AtPath(err, "Ccy")
		}
	}
	if a.Nm != nil {
		if err := a.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if a.Prxy != nil {
		if err := a.Prxy.Validate(); err != nil {
			return messages.AtPath(err, "Prxy")
		}
	}
	return nil
}

// AccountIdentification4Choice selects an IBAN or another account
// identification.
type AccountIdentification4Choice struct {
	IBAN *IBAN2007Identifier             `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1  `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c *AccountIdentification4Choice) Validate() error {
	if c.IBAN != nil {
		if err := c.IBAN.Validate(); err != nil {
			return messages.AtPath(err, "IBAN")
		}
	}
	if c.Othr != nil {
		if err := c.Othr.Validate(); err != nil {
			return messages.AtPath(err, "Othr")
		}
	}
	return nil
}

// GenericAccountIdentification1 is a scheme-qualified account identifier.
type GenericAccountIdentification1 struct {
	Id      Max34Text                 `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g *GenericAccountIdentification1) Validate() error {
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

// AccountSchemeName1Choice selects a coded or proprietary account
// identification scheme.
type AccountSchemeName1Choice struct {
	Cd    *ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *AccountSchemeName1Choice) Validate() error {
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

// CashAccountType2Choice selects a coded or proprietary cash account type.
type CashAccountType2Choice struct {
	Cd    *ExternalCashAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *CashAccountType2Choice) Validate() error {
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

// ProxyAccountIdentification1 is an alias identification of an account,
// e.g. a mobile number.
type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id Max2048Text              `xml:"Id" json:"Id"`
}

func (p *ProxyAccountIdentification1) Validate() error {
	if p.Tp != nil {
		if err := p.Tp.Validate(); err != nil {
			return messages.AtPath(err, "Tp")
		}
	}
	if err := p.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	return nil
}

// ProxyAccountType1Choice selects a coded or proprietary proxy type.
type ProxyAccountType1Choice struct {
	Cd    *ExternalProxyAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *ProxyAccountType1Choice) Validate() error {
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
