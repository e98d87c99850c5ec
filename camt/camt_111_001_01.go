package camt

import (
	"encoding/xml"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

// Camt11100101Namespace is the XML namespace of the
// camt.111.001.01 document.
const Camt11100101Namespace = "urn:iso:std:iso:20022:tech:xsd:camt.111.001.01"

// InvestigationRequestDocument is the camt.111 root envelope.
type InvestigationRequestDocument struct {
	XMLName     xml.Name                `xml:"urn:iso:std:iso:20022:tech:xsd:camt.111.001.01 Document" json:"-"`
	InvstgtnReq InvestigationRequestV01 `xml:"InvstgtnReq" json:"InvstgtnReq"`
}

func (d *InvestigationRequestDocument) Validate() error {
	if err := d.InvstgtnReq.Validate(); err != nil {
		return messages.AtPath(err, "InvstgtnReq")
	}
	return nil
}

// InvestigationRequestV01 opens or escalates an investigation into a
// payment or statement entry.
type InvestigationRequestV01 struct {
	InvstgtnReq InvestigationRequest2       `xml:"InvstgtnReq" json:"InvstgtnReq"`
	Undrlyg     UnderlyingData2Choice       `xml:"Undrlyg" json:"Undrlyg"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m *InvestigationRequestV01) Validate() error {
	if err := m.InvstgtnReq.Validate(); err != nil {
		return messages.AtPath(err, "InvstgtnReq")
	}
	if err := m.Undrlyg.Validate(); err != nil {
		return messages.AtPath(err, "Undrlyg")
	}
	return messages.ValidateEach("SplmtryData", m.SplmtryData)
}

// InvestigationRequest2 identifies the investigation and the parties
// driving it.
type InvestigationRequest2 struct {
	MsgId            common.Max35Text         `xml:"MsgId" json:"MsgId"`
	RqstrInvstgtnId  *common.Max35Text        `xml:"RqstrInvstgtnId,omitempty" json:"RqstrInvstgtnId,omitempty"`
	RspndrInvstgtnId *common.Max35Text        `xml:"RspndrInvstgtnId,omitempty" json:"RspndrInvstgtnId,omitempty"`
	EIR              *common.UUIDv4Identifier `xml:"EIR,omitempty" json:"EIR,omitempty"`
	InvstgtnTp       InvestigationType1Choice `xml:"InvstgtnTp" json:"InvstgtnTp"`
	Rqstr            common.Party40Choice     `xml:"Rqstr" json:"Rqstr"`
	Rspndr           common.Party40Choice     `xml:"Rspndr" json:"Rspndr"`
}

func (r *InvestigationRequest2) Validate() error {
	if err := r.MsgId.Validate(); err != nil {
		return messages.AtPath(err, "MsgId")
	}
	if r.RqstrInvstgtnId != nil {
		if err := r.RqstrInvstgtnId.Validate(); err != nil {
			return messages.AtPath(err, "RqstrInvstgtnId")
		}
	}
	if r.RspndrInvstgtnId != nil {
		if err := r.RspndrInvstgtnId.Validate(); err != nil {
			return messages.AtPath(err, "RspndrInvstgtnId")
		}
	}
	if r.EIR != nil {
		if err := r.EIR.Validate(); err != nil {
			return messages.AtPath(err, "EIR")
		}
	}
	if err := r.InvstgtnTp.Validate(); err != nil {
		return messages.AtPath(err, "InvstgtnTp")
	}
	if err := r.Rqstr.Validate(); err != nil {
		return messages.AtPath(err, "Rqstr")
	}
	if err := r.Rspndr.Validate(); err != nil {
		return messages.AtPath(err, "Rspndr")
	}
	return nil
}

// InvestigationType1Choice selects a coded or proprietary investigation
// type.
type InvestigationType1Choice struct {
	Cd    *common.ExternalInvestigationType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                      `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c *InvestigationType1Choice) Validate() error {
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

// UnderlyingData2Choice points at the item under investigation.
type UnderlyingData2Choice struct {
	Initn    *UnderlyingPaymentInstruction8 `xml:"Initn,omitempty" json:"Initn,omitempty"`
	IntrBk   *UnderlyingPaymentTransaction7 `xml:"IntrBk,omitempty" json:"IntrBk,omitempty"`
	StmtNtry *UnderlyingStatementEntry3     `xml:"StmtNtry,omitempty" json:"StmtNtry,omitempty"`
}

func (c *UnderlyingData2Choice) Validate() error {
	if c.Initn != nil {
		if err := c.Initn.Validate(); err != nil {
			return messages.AtPath(err, "Initn")
		}
	}
	if c.IntrBk != nil {
		if err := c.IntrBk.Validate(); err != nil {
			return messages.AtPath(err, "IntrBk")
		}
	}
	if c.StmtNtry != nil {
		if err := c.StmtNtry.Validate(); err != nil {
			return messages.AtPath(err, "StmtNtry")
		}
	}
	return nil
}

// UnderlyingPaymentInstruction8 references an original customer payment
// initiation.
type UnderlyingPaymentInstruction8 struct {
	OrgnlGrpInf     *UnderlyingGroupInformation1              `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlPmtInfId   *common.Max35Text                         `xml:"OrgnlPmtInfId,omitempty" json:"OrgnlPmtInfId,omitempty"`
	OrgnlInstrId    *common.Max35Text                         `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId *common.Max35Text                         `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlUETR       *common.UUIDv4Identifier                  `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	OrgnlInstdAmt   *common.ActiveOrHistoricCurrencyAndAmount `xml:"OrgnlInstdAmt,omitempty" json:"OrgnlInstdAmt,omitempty"`
	ReqdExctnDt     *common.DateAndDateTime2Choice            `xml:"ReqdExctnDt,omitempty" json:"ReqdExctnDt,omitempty"`
	ReqdColltnDt    *common.ISODate                           `xml:"ReqdColltnDt,omitempty" json:"ReqdColltnDt,omitempty"`
}

func (u *UnderlyingPaymentInstruction8) Validate() error {
	if u.OrgnlGrpInf != nil {
		if err := u.OrgnlGrpInf.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlGrpInf")
		}
	}
	if u.OrgnlPmtInfId != nil {
		if err := u.OrgnlPmtInfId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlPmtInfId")
		}
	}
	if u.OrgnlInstrId != nil {
		if err := u.OrgnlInstrId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlInstrId")
		}
	}
	if u.OrgnlEndToEndId != nil {
		if err := u.OrgnlEndToEndId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlEndToEndId")
		}
	}
	if u.OrgnlUETR != nil {
		if err := u.OrgnlUETR.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlUETR")
		}
	}
	if u.OrgnlInstdAmt != nil {
		if err := u.OrgnlInstdAmt.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlInstdAmt")
		}
	}
	if u.ReqdExctnDt != nil {
		if err := u.ReqdExctnDt.Validate(); err != nil {
			return messages.AtPath(err, "ReqdExctnDt")
		}
	}
	if u.ReqdColltnDt != nil {
		if err := u.ReqdColltnDt.Validate(); err != nil {
			return messages.AtPath(err, "ReqdColltnDt")
		}
	}
	return nil
}

// UnderlyingPaymentTransaction7 references an original interbank
// payment.
type UnderlyingPaymentTransaction7 struct {
	OrgnlGrpInf         *UnderlyingGroupInformation1              `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlInstrId        *common.Max35Text                         `xml:"OrgnlInstrId,omitempty" json:"OrgnlInstrId,omitempty"`
	OrgnlEndToEndId     *common.Max35Text                         `xml:"OrgnlEndToEndId,omitempty" json:"OrgnlEndToEndId,omitempty"`
	OrgnlTxId           *common.Max35Text                         `xml:"OrgnlTxId,omitempty" json:"OrgnlTxId,omitempty"`
	OrgnlUETR           *common.UUIDv4Identifier                  `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
	OrgnlIntrBkSttlmAmt *common.ActiveOrHistoricCurrencyAndAmount `xml:"OrgnlIntrBkSttlmAmt,omitempty" json:"OrgnlIntrBkSttlmAmt,omitempty"`
	OrgnlIntrBkSttlmDt  *common.ISODate                           `xml:"OrgnlIntrBkSttlmDt,omitempty" json:"OrgnlIntrBkSttlmDt,omitempty"`
}

func (u *UnderlyingPaymentTransaction7) Validate() error {
	if u.OrgnlGrpInf != nil {
		if err := u.OrgnlGrpInf.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlGrpInf")
		}
	}
	if u.OrgnlInstrId != nil {
		if err := u.OrgnlInstrId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlInstrId")
		}
	}
	if u.OrgnlEndToEndId != nil {
		if err := u.OrgnlEndToEndId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlEndToEndId")
		}
	}
	if u.OrgnlTxId != nil {
		if err := u.OrgnlTxId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlTxId")
		}
	}
	if u.OrgnlUETR != nil {
		if err := u.OrgnlUETR.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlUETR")
		}
	}
	if u.OrgnlIntrBkSttlmAmt != nil {
		if err := u.OrgnlIntrBkSttlmAmt.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlIntrBkSttlmAmt")
		}
	}
	if u.OrgnlIntrBkSttlmDt != nil {
		if err := u.OrgnlIntrBkSttlmDt.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlIntrBkSttlmDt")
		}
	}
	return nil
}

// UnderlyingStatementEntry3 references an entry on an original
// statement.
type UnderlyingStatementEntry3 struct {
	OrgnlGrpInf  *OriginalGroupInformation29 `xml:"OrgnlGrpInf,omitempty" json:"OrgnlGrpInf,omitempty"`
	OrgnlStmtId  *common.Max35Text           `xml:"OrgnlStmtId,omitempty" json:"OrgnlStmtId,omitempty"`
	OrgnlNtryRef *common.Max35Text           `xml:"OrgnlNtryRef,omitempty" json:"OrgnlNtryRef,omitempty"`
	OrgnlUETR    *common.UUIDv4Identifier    `xml:"OrgnlUETR,omitempty" json:"OrgnlUETR,omitempty"`
}

func (u *UnderlyingStatementEntry3) Validate() error {
	if u.OrgnlGrpInf != nil {
		if err := u.OrgnlGrpInf.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlGrpInf")
		}
	}
	if u.OrgnlStmtId != nil {
		if err := u.OrgnlStmtId.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlStmtId")
		}
	}
	if u.OrgnlNtryRef != nil {
		if err := u.OrgnlNtryRef.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlNtryRef")
		}
	}
	if u.OrgnlUETR != nil {
		if err := u.OrgnlUETR.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlUETR")
		}
	}
	return nil
}

// UnderlyingGroupInformation1 identifies the original message the
// investigated item travelled in.
type UnderlyingGroupInformation1 struct {
	OrgnlMsgId         common.Max35Text    `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId       common.Max35Text    `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm       *common.ISODateTime `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
	OrgnlMsgDlvryChanl *common.Max35Text   `xml:"OrgnlMsgDlvryChanl,omitempty" json:"OrgnlMsgDlvryChanl,omitempty"`
}

func (u *UnderlyingGroupInformation1) Validate() error {
	if err := u.OrgnlMsgId.Validate(); err != nil {
		return messages.AtPath(err, "OrgnlMsgId")
	}
	if err := u.OrgnlMsgNmId.Validate(); err != nil {
		return messages.AtPath(err, "OrgnlMsgNmId")
	}
	if u.OrgnlCreDtTm != nil {
		if err := u.OrgnlCreDtTm.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlCreDtTm")
		}
	}
	if u.OrgnlMsgDlvryChanl != nil {
		if err := u.OrgnlMsgDlvryChanl.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlMsgDlvryChanl")
		}
	}
	return nil
}

// OriginalGroupInformation29 is the lighter original-message reference
// used for statement entries.
type OriginalGroupInformation29 struct {
	OrgnlMsgId   common.Max35Text    `xml:"OrgnlMsgId" json:"OrgnlMsgId"`
	OrgnlMsgNmId common.Max35Text    `xml:"OrgnlMsgNmId" json:"OrgnlMsgNmId"`
	OrgnlCreDtTm *common.ISODateTime `xml:"OrgnlCreDtTm,omitempty" json:"OrgnlCreDtTm,omitempty"`
}

func (o *OriginalGroupInformation29) Validate() error {
	if err := o.OrgnlMsgId.Validate(); err != nil {
		return messages.AtPath(err, "OrgnlMsgId")
	}
	if err := o.OrgnlMsgNmId.Validate(); err != nil {
		return messages.AtPath(err, "OrgnlMsgNmId")
	}
	if o.OrgnlCreDtTm != nil {
		if err := o.OrgnlCreDtTm.Validate(); err != nil {
			return messages.AtPath(err, "OrgnlCreDtTm")
		}
	}
	return nil
}
