// Package auth holds the regulatory-reporting message set, currently
// the derivatives trade report query (auth.090.001.02).
package auth

import (
	"encoding/xml"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

// Auth09000102Namespace is the XML namespace of the
// auth.090.001.02 document.
const Auth09000102Namespace = "urn:iso:std:iso:20022:tech:xsd:auth.090.001.02"

// DerivativesTradeReportQueryDocument is the auth.090 root envelope.
type DerivativesTradeReportQueryDocument struct {
	XMLName          xml.Name                       `xml:"urn:iso:std:iso:20022:tech:xsd:auth.090.001.02 Document" json:"-"`
	DerivsTradRptQry DerivativesTradeReportQueryV02 `xml:"DerivsTradRptQry" json:"DerivsTradRptQry"`
}

func (d *DerivativesTradeReportQueryDocument) Validate() error {
	if err := d.DerivsTradRptQry.Validate(); err != nil {
		return messages.AtPath(err, "DerivsTradRptQry")
	}
	return nil
}

// DerivativesTradeReportQueryV02 lets an authority query derivative
// trade reports from a trade repository.
type DerivativesTradeReportQueryV02 struct {
	RqstngAuthrty PartyIdentification121Choice `xml:"RqstngAuthrty" json:"RqstngAuthrty"`
	TradQryData   TradeReportQuery13Choice     `xml:"TradQryData" json:"TradQryData"`
	SplmtryData   []common.SupplementaryData1  `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *DerivativesTradeReportQueryV02) Validate() error {
	if err := m.RqstngAuthrty.Validate(); err != nil {
		return messages.AtPath(err, "RqstngAuthrty")
	}
	if err := m.TradQryData.Validate(); err != nil {
		return messages.AtPath(err, "TradQryData")
	}
	return messages.ValidateEach("SplmtryData", m.SplmtryData)
}

// PartyIdentification121Choice identifies the requesting authority.
type PartyIdentification121Choice struct {
	AnyBIC    *common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	FullLglNm *common.Max350Text              `xml:"FullLglNm,omitempty" json:"FullLglNm,omitempty"`
	CtryCd    *common.CountryCode             `xml:"CtryCd,omitempty" json:"CtryCd,omitempty"`
	PrtryId   *common.GenericIdentification1  `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
}

func (c *PartyIdentification121Choice) Validate() error {
	if c.AnyBIC != nil {
		if err := c.AnyBIC.Validate(); err != nil {
			return messages.AtPath(err, "AnyBIC")
		}
	}
	if c.FullLglNm != nil {
		if err := c.FullLglNm.Validate(); err != nil {
			return messages.AtPath(err, "FullLglNm")
		}
	}
	if c.CtryCd != nil {
		if err := c.CtryCd.Validate(); err != nil {
			return messages.AtPath(err, "CtryCd")
		}
	}
	if c.PrtryId != nil {
		if err := c.PrtryId.Validate(); err != nil {
			return messages.AtPath(err, "PrtryId")
		}
	}
	return nil
}

// TradeReportQuery13Choice is either an ad hoc or a recurrent query.
type TradeReportQuery13Choice struct {
	AdHocQry *TradeQueryCriteria10 `xml:"AdHocQry,omitempty" json:"AdHocQry,omitempty"`
	RcrntQry *TradeRecurrentQuery5 `xml:"RcrntQry,omitempty" json:"RcrntQry,omitempty"`
}

func (c *TradeReportQuery13Choice) Validate() error {
	if c.AdHocQry != nil {
		if err := c.AdHocQry.Validate(); err != nil {
			return messages.AtPath(err, "AdHocQry")
		}
	}
	if c.RcrntQry != nil {
		if err := c.RcrntQry.Validate(); err != nil {
			return messages.AtPath(err, "RcrntQry")
		}
	}
	return nil
}

// Operation3Code combines query criteria with a logical operator.
type Operation3Code string

const (
	Operation3CodeANDD Operation3Code = "ANDD"
	Operation3CodeORRR Operation3Code = "ORRR"
)

func (v Operation3Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Operation3Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("ANDD", "ORRR")}
}

// NotReported1Code states that a criterion is deliberately not
// reported.
type NotReported1Code string

const NotReported1CodeNORP NotReported1Code = "NORP"

func (v NotReported1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v NotReported1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("NORP")}
}

// ProductType4Code is the asset class of a derivative.
type ProductType4Code string

const (
	ProductType4CodeCOMM ProductType4Code = "COMM"
	ProductType4CodeCRDT ProductType4Code = "CRDT"
	ProductType4CodeCURR ProductType4Code = "CURR"
	ProductType4CodeEQUI ProductType4Code = "EQUI"
	ProductType4CodeINTR ProductType4Code = "INTR"
	ProductType4CodeOTHR ProductType4Code = "OTHR"
)

func (v ProductType4Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ProductType4Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("COMM", "CRDT", "CURR", "EQUI", "INTR", "OTHR")}
}

// WeekDay3Code is a delivery day for recurrent query results.
type WeekDay3Code string

const (
	WeekDay3CodeMOND WeekDay3Code = "MOND"
	WeekDay3CodeTUED WeekDay3Code = "TUED"
	WeekDay3CodeWEDD WeekDay3Code = "WEDD"
	WeekDay3CodeTHUD WeekDay3Code = "THUD"
	WeekDay3CodeFRID WeekDay3Code = "FRID"
	WeekDay3CodeSATD WeekDay3Code = "SATD"
	WeekDay3CodeSUND WeekDay3Code = "SUND"
)

func (v WeekDay3Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v WeekDay3Code) ValueRules() []messages.Rule {
	return []messages.Rule{
		messages.OneOf("MOND", "TUED", "WEDD", "THUD", "FRID", "SATD", "SUND"),
	}
}

// TradeQueryCriteria10 is the criteria block of an ad hoc query.
type TradeQueryCriteria10 struct {
	TradLifeCyclHstry common.TrueFalseIndicator    `xml:"TradLifeCyclHstry" json:"TradLifeCyclHstry"`
	OutsdngTradInd    common.TrueFalseIndicator    `xml:"OutsdngTradInd" json:"OutsdngTradInd"`
	TradPtyCrit       *TradePartyQueryCriteria5    `xml:"TradPtyCrit,omitempty" json:"TradPtyCrit,omitempty"`
	TradTpCrit        *TradeTypeQueryCriteria2     `xml:"TradTpCrit,omitempty" json:"TradTpCrit,omitempty"`
	TmCrit            *TradeDateTimeQueryCriteria2 `xml:"TmCrit,omitempty" json:"TmCrit,omitempty"`
}

func (c *TradeQueryCriteria10) Validate() error {
	if c.TradPtyCrit != nil {
		if err := c.TradPtyCrit.Validate(); err != nil {
			return messages.AtPath(err, "TradPtyCrit")
		}
	}
	if c.TradTpCrit != nil {
		if err := c.TradTpCrit.Validate(); err != nil {
			return messages.AtPath(err, "TradTpCrit")
		}
	}
	if c.TmCrit != nil {
		if err := c.TmCrit.Validate(); err != nil {
			return messages.AtPath(err, "TmCrit")
		}
	}
	return nil
}

// TradePartyQueryCriteria5 filters by the counterparties of a trade.
type TradePartyQueryCriteria5 struct {
	Oprtr      Operation3Code                  `xml:"Oprtr" json:"Oprtr"`
	RptgCtrPty *TradePartyIdentificationQuery8 `xml:"RptgCtrPty,omitempty" json:"RptgCtrPty,omitempty"`
	OthrCtrPty *TradePartyIdentificationQuery8 `xml:"OthrCtrPty,omitempty" json:"OthrCtrPty,omitempty"`
}

func (c *TradePartyQueryCriteria5) Validate() error {
	if err := c.Oprtr.Validate(); err != nil {
		return messages.AtPath(err, "Oprtr")
	}
	if c.RptgCtrPty != nil {
		if err := c.RptgCtrPty.Validate(); err != nil {
			return messages.AtPath(err, "RptgCtrPty")
		}
	}
	if c.OthrCtrPty != nil {
		if err := c.OthrCtrPty.Validate(); err != nil {
			return messages.AtPath(err, "OthrCtrPty")
		}
	}
	return nil
}

// TradePartyIdentificationQuery8 matches counterparties by LEI or BIC,
// or marks them as not reported.
type TradePartyIdentificationQuery8 struct {
	Id      []common.LEIIdentifier           `xml:"Id,omitempty" json:"Id,omitempty"`
	AnyBIC  []common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	NotRptd *NotReported1Code                `xml:"NotRptd,omitempty" json:"NotRptd,omitempty"`
}

func (q *TradePartyIdentificationQuery8) Validate() error {
	if err := messages.ValidateEach("Id", q.Id); err != nil {
		return err
	}
	if err := messages.ValidateEach("AnyBIC", q.AnyBIC); err != nil {
		return err
	}
	if q.NotRptd != nil {
		if err := q.NotRptd.Validate(); err != nil {
			return messages.AtPath(err, "NotRptd")
		}
	}
	return nil
}

// TradeTypeQueryCriteria2 filters by the product traded.
type TradeTypeQueryCriteria2 struct {
	Oprtr    Operation3Code     `xml:"Oprtr" json:"Oprtr"`
	AsstClss []ProductType4Code `xml:"AsstClss,omitempty" json:"AsstClss,omitempty"`
}

func (c *TradeTypeQueryCriteria2) Validate() error {
	if err := c.Oprtr.Validate(); err != nil {
		return messages.AtPath(err, "Oprtr")
	}
	return messages.ValidateEach("AsstClss", c.AsstClss)
}

// TradeDateTimeQueryCriteria2 filters by the lifecycle dates of a
// trade.
type TradeDateTimeQueryCriteria2 struct {
	RptgDtTm  *common.DateTimePeriod1 `xml:"RptgDtTm,omitempty" json:"RptgDtTm,omitempty"`
	ExctnDtTm *common.DateTimePeriod1 `xml:"ExctnDtTm,omitempty" json:"ExctnDtTm,omitempty"`
	MtrtyDt   *common.DatePeriod2     `xml:"MtrtyDt,omitempty" json:"MtrtyDt,omitempty"`
	TermntnDt *common.DatePeriod2     `xml:"TermntnDt,omitempty" json:"TermntnDt,omitempty"`
}

func (c *TradeDateTimeQueryCriteria2) Validate() error {
	if c.RptgDtTm != nil {
		if err := c.RptgDtTm.Validate(); err != nil {
			return messages.AtPath(err, "RptgDtTm")
		}
	}
	if c.ExctnDtTm != nil {
		if err := c.ExctnDtTm.Validate(); err != nil {
			return messages.AtPath(err, "ExctnDtTm")
		}
	}
	if c.MtrtyDt != nil {
		if err := c.MtrtyDt.Validate(); err != nil {
			return messages.AtPath(err, "MtrtyDt")
		}
	}
	if c.TermntnDt != nil {
		if err := c.TermntnDt.Validate(); err != nil {
			return messages.AtPath(err, "TermntnDt")
		}
	}
	return nil
}

// TradeRecurrentQuery5 schedules a query for repeated execution.
type TradeRecurrentQuery5 struct {
	QryTp    common.Max35Text              `xml:"QryTp" json:"QryTp"`
	Frqcy    TradeQueryExecutionFrequency3 `xml:"Frqcy" json:"Frqcy"`
	VldUntil common.ISODate                `xml:"VldUntil" json:"VldUntil"`
}

func (q *TradeRecurrentQuery5) Validate() error {
	if err := q.QryTp.Validate(); err != nil {
		return messages.AtPath(err, "QryTp")
	}
	if err := q.Frqcy.Validate(); err != nil {
		return messages.AtPath(err, "Frqcy")
	}
	if err := q.VldUntil.Validate(); err != nil {
		return messages.AtPath(err, "VldUntil")
	}
	return nil
}

// TradeQueryExecutionFrequency3 states how often and when results are
// delivered.
type TradeQueryExecutionFrequency3 struct {
	ExctnFrqcy common.Frequency6Code `xml:"ExctnFrqcy" json:"ExctnFrqcy"`
	DlvryDay   []WeekDay3Code        `xml:"DlvryDay,omitempty" json:"DlvryDay,omitempty"`
	DlvryTm    []common.ISOTime      `xml:"DlvryTm,omitempty" json:"DlvryTm,omitempty"`
}

func (f *TradeQueryExecutionFrequency3) Validate() error {
	if err := f.ExctnFrqcy.Validate(); err != nil {
		return messages.AtPath(err, "ExctnFrqcy")
	}
	if err := messages.ValidateEach("DlvryDay", f.DlvryDay); err != nil {
		return err
	}
	return messages.ValidateEach("DlvryTm", f.DlvryTm)
}
