package camt

import (
	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

// CardTransaction17 is the card-specific side of an entry transaction.
type CardTransaction17 struct {
	Card      *PaymentCard4           `xml:"Card,omitempty" json:"Card,omitempty"`
	POI       *PointOfInteraction1    `xml:"POI,omitempty" json:"POI,omitempty"`
	Tx        *CardTransaction3Choice `xml:"Tx,omitempty" json:"Tx,omitempty"`
	PrePdAcct *common.CashAccount38   `xml:"PrePdAcct,omitempty" json:"PrePdAcct,omitempty"`
}

func (c *CardTransaction17) Validate() error {
	if c.Card != nil {
		if err := c.Card.Validate(); err != nil {
			return messages.AtPath(err, "Card")
		}
	}
	if c.POI != nil {
		if err := c.POI.Validate(); err != nil {
			return messages.AtPath(err, "POI")
		}
	}
	if c.Tx != nil {
		if err := c.Tx.Validate(); err != nil {
			return messages.AtPath(err, "Tx")
		}
	}
	if c.PrePdAcct != nil {
		if err := c.PrePdAcct.Validate(); err != nil {
			return messages.AtPath(err, "PrePdAcct")
		}
	}
	return nil
}

// PaymentCard4 describes the card used in a transaction.
type PaymentCard4 struct {
	PlainCardData *PlainCardData1                `xml:"PlainCardData,omitempty" json:"PlainCardData,omitempty"`
	CardCtryCd    *common.Exact3NumericText      `xml:"CardCtryCd,omitempty" json:"CardCtryCd,omitempty"`
	CardBrnd      *common.GenericIdentification1 `xml:"CardBrnd,omitempty" json:"CardBrnd,omitempty"`
	AddtlCardData *common.Max70Text              `xml:"AddtlCardData,omitempty" json:"AddtlCardData,omitempty"`
}

func (p *PaymentCard4) Validate() error {
	if p.PlainCardData != nil {
		if err := p.PlainCardData.Validate(); err != nil {
			return messages.AtPath(err, "PlainCardData")
		}
	}
	if p.CardCtryCd != nil {
		if err := p.CardCtryCd.Validate(); err != nil {
			return messages.AtPath(err, "CardCtryCd")
		}
	}
	if p.CardBrnd != nil {
		if err := p.CardBrnd.Validate(); err != nil {
			return messages.AtPath(err, "CardBrnd")
		}
	}
	if p.AddtlCardData != nil {
		if err := p.AddtlCardData.Validate(); err != nil {
			return messages.AtPath(err, "AddtlCardData")
		}
	}
	return nil
}

// PlainCardData1 is the sensitive card data as read from the card.
type PlainCardData1 struct {
	PAN        common.Min8Max28NumericText `xml:"PAN" json:"PAN"`
	CardSeqNb  *common.Min2Max3NumericText `xml:"CardSeqNb,omitempty" json:"CardSeqNb,omitempty"`
	FctvDt     *common.ISOYearMonth        `xml:"FctvDt,omitempty" json:"FctvDt,omitempty"`
	XpryDt     common.ISOYearMonth         `xml:"XpryDt" json:"XpryDt"`
	SvcCd      *common.Exact3NumericText   `xml:"SvcCd,omitempty" json:"SvcCd,omitempty"`
	CardSctyCd *CardSecurityInformation1   `xml:"CardSctyCd,omitempty" json:"CardSctyCd,omitempty"`
}

func (p *PlainCardData1) Validate() error {
	if err := p.PAN.Validate(); err != nil {
		return messages.AtPath(err, "PAN")
	}
	if p.CardSeqNb != nil {
		if err := p.CardSeqNb.Validate(); err != nil {
			return messages.AtPath(err, "CardSeqNb")
		}
	}
	if p.FctvDt != nil {
		if err := p.FctvDt.Validate(); err != nil {
			return messages.AtPath(err, "FctvDt")
		}
	}
	if err := p.XpryDt.Validate(); err != nil {
		return messages.AtPath(err, "XpryDt")
	}
	if p.SvcCd != nil {
		if err := p.SvcCd.Validate(); err != nil {
			return messages.AtPath(err, "SvcCd")
		}
	}
	if p.CardSctyCd != nil {
		if err := p.CardSctyCd.Validate(); err != nil {
			return messages.AtPath(err, "CardSctyCd")
		}
	}
	return nil
}

// CardSecurityInformation1 states how the card security code was handled
// and, when present, its value.
type CardSecurityInformation1 struct {
	CSCMgmt common.CSCManagement1Code   `xml:"CSCMgmt" json:"CSCMgmt"`
	CSCVal  *common.Min3Max4NumericText `xml:"CSCVal,omitempty" json:"CSCVal,omitempty"`
}

func (c *CardSecurityInformation1) Validate() error {
	if err := c.CSCMgmt.Validate(); err != nil {
		return messages.AtPath(err, "CSCMgmt")
	}
	if c.CSCVal != nil {
		if err := c.CSCVal.Validate(); err != nil {
			return messages.AtPath(err, "CSCVal")
		}
	}
	return nil
}

// PointOfInteraction1 describes the terminal where the card was used.
type PointOfInteraction1 struct {
	Id       common.GenericIdentification32   `xml:"Id" json:"Id"`
	SysNm    *common.Max70Text                `xml:"SysNm,omitempty" json:"SysNm,omitempty"`
	GrpId    *common.Max35Text                `xml:"GrpId,omitempty" json:"GrpId,omitempty"`
	Cpblties *PointOfInteractionCapabilities1 `xml:"Cpblties,omitempty" json:"Cpblties,omitempty"`
	Cmpnt    []PointOfInteractionComponent1   `xml:"Cmpnt,omitempty" json:"Cmpnt,omitempty"`
}

func (p *PointOfInteraction1) Validate() error {
	if err := p.Id.Validate(); err != nil {
		return messages.AtPath(err, "Id")
	}
	if p.SysNm != nil {
		if err := p.SysNm.Validate(); err != nil {
			return messages.AtPath(err, "SysNm")
		}
	}
	if p.GrpId != nil {
		if err := p.GrpId.Validate(); err != nil {
			return messages.AtPath(err, "GrpId")
		}
	}
	if p.Cpblties != nil {
		if err := p.Cpblties.Validate(); err != nil {
			return messages.AtPath(err, "Cpblties")
		}
	}
	return messages.ValidateEach("Cmpnt", p.Cmpnt)
}

// PointOfInteractionCapabilities1 lists what the terminal can do.
type PointOfInteractionCapabilities1 struct {
	CardRdngCpblties      []common.CardDataReading1Code                  `xml:"CardRdngCpblties,omitempty" json:"CardRdngCpblties,omitempty"`
	CrdhldrVrfctnCpblties []common.CardholderVerificationCapability1Code `xml:"CrdhldrVrfctnCpblties,omitempty" json:"CrdhldrVrfctnCpblties,omitempty"`
	OnLineCpblties        *common.OnLineCapability1Code                  `xml:"OnLineCpblties,omitempty" json:"OnLineCpblties,omitempty"`
	DispCpblties          []DisplayCapabilities1                         `xml:"DispCpblties,omitempty" json:"DispCpblties,omitempty"`
	PrtLineWidth          *common.Max3NumericText                        `xml:"PrtLineWidth,omitempty" json:"PrtLineWidth,omitempty"`
}

func (p *PointOfInteractionCapabilities1) Validate() error {
	if err := messages.ValidateEach("CardRdngCpblties", p.CardRdngCpblties); err != nil {
		return err
	}
	if err := messages.ValidateEach("CrdhldrVrfctnCpblties", p.CrdhldrVrfctnCpblties); err != nil {
		return err
	}
	if p.OnLineCpblties != nil {
		if err := p.OnLineCpblties.Validate(); err != nil {
			return messages.AtPath(err, "OnLineCpblties")
		}
	}
	if err := messages.ValidateEach("DispCpblties", p.DispCpblties); err != nil {
		return err
	}
	if p.PrtLineWidth != nil {
		if err := p.PrtLineWidth.Validate(); err != nil {
			return messages.AtPath(err, "PrtLineWidth")
		}
	}
	return nil
}

// DisplayCapabilities1 describes one display of the terminal.
type DisplayCapabilities1 struct {
	DispTp    common.UserInterface2Code `xml:"DispTp" json:"DispTp"`
	NbOfLines common.Max3NumericText    `xml:"NbOfLines" json:"NbOfLines"`
	LineWidth common.Max3NumericText    `xml:"LineWidth" json:"LineWidth"`
}

func (d *DisplayCapabilities1) Validate() error {
	if err := d.DispTp.Validate(); err != nil {
		return messages.AtPath(err, "DispTp")
	}
	if err := d.NbOfLines.Validate(); err != nil {
		return messages.AtPath(err, "NbOfLines")
	}
	if err := d.LineWidth.Validate(); err != nil {
		return messages.AtPath(err, "LineWidth")
	}
	return nil
}

// PointOfInteractionComponent1 identifies one hardware or software
// component of the terminal.
type PointOfInteractionComponent1 struct {
	POICmpntTp common.POIComponentType1Code `xml:"POICmpntTp" json:"POICmpntTp"`
	ManfctrId  *common.Max35Text            `xml:"ManfctrId,omitempty" json:"ManfctrId,omitempty"`
	Mdl        *common.Max35Text            `xml:"Mdl,omitempty" json:"Mdl,omitempty"`
	VrsnNb     *common.Max16Text            `xml:"VrsnNb,omitempty" json:"VrsnNb,omitempty"`
	SrlNb      *common.Max35Text            `xml:"SrlNb,omitempty" json:"SrlNb,omitempty"`
	ApprvlNb   []common.Max70Text           `xml:"ApprvlNb,omitempty" json:"ApprvlNb,omitempty"`
}

func (p *PointOfInteractionComponent1) Validate() error {
	if err := p.POICmpntTp.Validate(); err != nil {
		return messages.AtPath(err, "POICmpntTp")
	}
	for _, f := range []struct {
		elem string
		v    *common.Max35Text
	}{
		{"ManfctrId", p.ManfctrId},
		{"Mdl", p.Mdl},
		{"SrlNb", p.SrlNb},
	} {
		if f.v == nil {
			continue
		}
		if err := f.v.Validate(); err != nil {
			return messages.AtPath(err, f.elem)
		}
	}
	if p.VrsnNb != nil {
		if err := p.VrsnNb.Validate(); err != nil {
			return messages.AtPath(err, "VrsnNb")
		}
	}
	return messages.ValidateEach("ApprvlNb", p.ApprvlNb)
}

// CardTransaction3Choice is either an aggregation of card transactions or a
// single one.
type CardTransaction3Choice struct {
	Aggtd *CardAggregated2            `xml:"Aggtd,omitempty" json:"Aggtd,omitempty"`
	Indv  *CardIndividualTransaction2 `xml:"Indv,omitempty" json:"Indv,omitempty"`
}

func (c *CardTransaction3Choice) Validate() error {
	if c.Aggtd != nil {
		if err := c.Aggtd.Validate(); err != nil {
			return messages.AtPath(err, "Aggtd")
		}
	}
	if c.Indv != nil {
		if err := c.Indv.Validate(); err != nil {
			return messages.AtPath(err, "Indv")
		}
	}
	return nil
}

// CardAggregated2 sums a set of card transactions of the same category.
type CardAggregated2 struct {
	AddtlSvc      *common.CardPaymentServiceType2Code          `xml:"AddtlSvc,omitempty" json:"AddtlSvc,omitempty"`
	TxCtgy        *common.ExternalCardTransactionCategory1Code `xml:"TxCtgy,omitempty" json:"TxCtgy,omitempty"`
	SaleRcncltnId *common.Max35Text                            `xml:"SaleRcncltnId,omitempty" json:"SaleRcncltnId,omitempty"`
}

func (c *CardAggregated2) Validate() error {
	if c.AddtlSvc != nil {
		if err := c.AddtlSvc.Validate(); err != nil {
			return messages.AtPath(err, "AddtlSvc")
		}
	}
	if c.TxCtgy != nil {
		if err := c.TxCtgy.Validate(); err != nil {
			return messages.AtPath(err, "TxCtgy")
		}
	}
	if c.SaleRcncltnId != nil {
		if err := c.SaleRcncltnId.Validate(); err != nil {
			return messages.AtPath(err, "SaleRcncltnId")
		}
	}
	return nil
}

// CardIndividualTransaction2 details a single card transaction.
type CardIndividualTransaction2 struct {
	PmtCntxt      *PaymentContext3                             `xml:"PmtCntxt,omitempty" json:"PmtCntxt,omitempty"`
	AddtlSvc      *common.CardPaymentServiceType2Code          `xml:"AddtlSvc,omitempty" json:"AddtlSvc,omitempty"`
	TxCtgy        *common.ExternalCardTransactionCategory1Code `xml:"TxCtgy,omitempty" json:"TxCtgy,omitempty"`
	SaleRcncltnId *common.Max35Text                            `xml:"SaleRcncltnId,omitempty" json:"SaleRcncltnId,omitempty"`
	SaleRefNb     *common.Max35Text                            `xml:"SaleRefNb,omitempty" json:"SaleRefNb,omitempty"`
	SeqNb         *common.Max35Text                            `xml:"SeqNb,omitempty" json:"SeqNb,omitempty"`
	TxId          *TransactionIdentifier1                      `xml:"TxId,omitempty" json:"TxId,omitempty"`
	VldtnDt       *common.ISODate                              `xml:"VldtnDt,omitempty" json:"VldtnDt,omitempty"`
	VldtnSeqNb    *common.Max35Text                            `xml:"VldtnSeqNb,omitempty" json:"VldtnSeqNb,omitempty"`
}

func (c *CardIndividualTransaction2) Validate() error {
	if c.PmtCntxt != nil {
		if err := c.PmtCntxt.Validate(); err != nil {
			return messages.AtPath(err, "PmtCntxt")
		}
	}
	if c.AddtlSvc != nil {
		if err := c.AddtlSvc.Validate(); err != nil {
			return messages.AtPath(err, "AddtlSvc")
		}
	}
	if c.TxCtgy != nil {
		if err := c.TxCtgy.Validate(); err != nil {
			return messages.AtPath(err, "TxCtgy")
		}
	}
	for _, f := range []struct {
		elem string
		v    *common.Max35Text
	}{
		{"SaleRcncltnId", c.SaleRcncltnId},
		{"SaleRefNb", c.SaleRefNb},
		{"SeqNb", c.SeqNb},
		{"VldtnSeqNb", c.VldtnSeqNb},
	} {
		if f.v == nil {
			continue
		}
		if err := f.v.Validate(); err != nil {
			return messages.AtPath(err, f.elem)
		}
	}
	if c.TxId != nil {
		if err := c.TxId.Validate(); err != nil {
			return messages.AtPath(err, "TxId")
		}
	}
	if c.VldtnDt != nil {
		if err := c.VldtnDt.Validate(); err != nil {
			return messages.AtPath(err, "VldtnDt")
		}
	}
	return nil
}

// PaymentContext3 is the context the card payment was made in.
type PaymentContext3 struct {
	CardPres       *common.TrueFalseIndicator          `xml:"CardPres,omitempty" json:"CardPres,omitempty"`
	CrdhldrPres    *common.TrueFalseIndicator          `xml:"CrdhldrPres,omitempty" json:"CrdhldrPres,omitempty"`
	OnLineCntxt    *common.TrueFalseIndicator          `xml:"OnLineCntxt,omitempty" json:"OnLineCntxt,omitempty"`
	AttndncCntxt   *common.AttendanceContext1Code      `xml:"AttndncCntxt,omitempty" json:"AttndncCntxt,omitempty"`
	TxEnvt         *common.TransactionEnvironment1Code `xml:"TxEnvt,omitempty" json:"TxEnvt,omitempty"`
	TxChanl        *common.TransactionChannel1Code     `xml:"TxChanl,omitempty" json:"TxChanl,omitempty"`
	AttndntMsgCpbl *common.TrueFalseIndicator          `xml:"AttndntMsgCpbl,omitempty" json:"AttndntMsgCpbl,omitempty"`
	CardDataNtryMd common.CardDataReading1Code         `xml:"CardDataNtryMd" json:"CardDataNtryMd"`
	FllbckInd      *common.TrueFalseIndicator          `xml:"FllbckInd,omitempty" json:"FllbckInd,omitempty"`
}

func (p *PaymentContext3) Validate() error {
	if p.AttndncCntxt != nil {
		if err := p.AttndncCntxt.Validate(); err != nil {
			return messages.AtPath(err, "AttndncCntxt")
		}
	}
	if p.TxEnvt != nil {
		if err := p.TxEnvt.Validate(); err != nil {
			return messages.AtPath(err, "TxEnvt")
		}
	}
	if p.TxChanl != nil {
		if err := p.TxChanl.Validate(); err != nil {
			return messages.AtPath(err, "TxChanl")
		}
	}
	if err := p.CardDataNtryMd.Validate(); err != nil {
		return messages.AtPath(err, "CardDataNtryMd")
	}
	return nil
}

// TransactionIdentifier1 dates and references a card transaction.
type TransactionIdentifier1 struct {
	TxDtTm common.ISODateTime `xml:"TxDtTm" json:"TxDtTm"`
	TxRef  common.Max35Text   `xml:"TxRef" json:"TxRef"`
}

func (t *TransactionIdentifier1) Validate() error {
	if err := t.TxDtTm.Validate(); err != nil {
		return messages.AtPath(err, "TxDtTm")
	}
	if err := t.TxRef.Validate(); err != nil {
		return messages.AtPath(err, "TxRef")
	}
	return nil
}
