// Package acmt holds the account-management message set, currently the
// request for an account management status report (acmt.005.001.06).
package acmt

import (
	"encoding/xml"

	messages "github.com/codetiger/messages-sub000"
	"github.com/codetiger/messages-sub000/common"
)

// Acmt00500106Namespace is the XML namespace of the
// acmt.005.001.06 document.
const Acmt00500106Namespace = "urn:iso:std:iso:20022:tech:xsd:acmt.005.001.06"

// RequestForAccountManagementStatusReportDocument is the acmt.005 root
// envelope.
type RequestForAccountManagementStatusReportDocument struct {
	XMLName              xml.Name                                   `xml:"urn:iso:std:iso:20022:tech:xsd:acmt.005.001.06 Document" json:"-"`
	ReqForAcctMgmtStsRpt RequestForAccountManagementStatusReportV06 `xml:"ReqForAcctMgmtStsRpt" json:"ReqForAcctMgmtStsRpt"`
}

func (d *RequestForAccountManagementStatusReportDocument) Validate() error {
	if err := d.ReqForAcctMgmtStsRpt.Validate(); err != nil {
		return messages.AtPath(err, "ReqForAcctMgmtStsRpt")
	}
	return nil
}

// RequestForAccountManagementStatusReportV06 asks an account servicer
// for the processing status of a previously sent account management
// instruction.
type RequestForAccountManagementStatusReportV06 struct {
	MsgId   common.MessageIdentification1      `xml:"MsgId" json:"MsgId"`
	ReqDtls AccountManagementMessageReference5 `xml:"ReqDtls" json:"ReqDtls"`
}

func (m *RequestForAccountManagementStatusReportV06) Validate() error {
	if err := m.MsgId.Validate(); err != nil {
		return messages.AtPath(err, "MsgId")
	}
	if err := m.ReqDtls.Validate(); err != nil {
		return messages.AtPath(err, "ReqDtls")
	}
	return nil
}

// AccountManagementType3Code narrows the status request to one kind of
// account management instruction.
type AccountManagementType3Code string

const (
	AccountManagementType3CodeACCO AccountManagementType3Code = "ACCO"
	AccountManagementType3CodeACCM AccountManagementType3Code = "ACCM"
	AccountManagementType3CodeGACC AccountManagementType3Code = "GACC"
)

func (v AccountManagementType3Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v AccountManagementType3Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("ACCO", "ACCM", "GACC")}
}

// AccountManagementMessageReference5 identifies the instruction whose
// status is requested.
type AccountManagementMessageReference5 struct {
	LkdRef      *LinkedMessage5Choice      `xml:"LkdRef,omitempty" json:"LkdRef,omitempty"`
	StsReqTp    AccountManagementType3Code `xml:"StsReqTp" json:"StsReqTp"`
	AcctApplId  *common.Max35Text          `xml:"AcctApplId,omitempty" json:"AcctApplId,omitempty"`
	ExstgAcctId *Account23                 `xml:"ExstgAcctId,omitempty" json:"ExstgAcctId,omitempty"`
	InvstmtAcct *InvestmentAccount77       `xml:"InvstmtAcct,omitempty" json:"InvstmtAcct,omitempty"`
}

func (r *AccountManagementMessageReference5) Validate() error {
	if r.LkdRef != nil {
		if err := r.LkdRef.Validate(); err != nil {
			return messages.AtPath(err, "LkdRef")
		}
	}
	if err := r.StsReqTp.Validate(); err != nil {
		return messages.AtPath(err, "StsReqTp")
	}
	if r.AcctApplId != nil {
		if err := r.AcctApplId.Validate(); err != nil {
			return messages.AtPath(err, "AcctApplId")
		}
	}
	if r.ExstgAcctId != nil {
		if err := r.ExstgAcctId.Validate(); err != nil {
			return messages.AtPath(err, "ExstgAcctId")
		}
	}
	if r.InvstmtAcct != nil {
		if err := r.InvstmtAcct.Validate(); err != nil {
			return messages.AtPath(err, "InvstmtAcct")
		}
	}
	return nil
}

// LinkedMessage5Choice references the linked message either as the
// previous one or as any other.
type LinkedMessage5Choice struct {
	PrvsRef *AdditionalReference13 `xml:"PrvsRef,omitempty" json:"PrvsRef,omitempty"`
	OthrRef *AdditionalReference13 `xml:"OthrRef,omitempty" json:"OthrRef,omitempty"`
}

func (c *LinkedMessage5Choice) Validate() error {
	if c.PrvsRef != nil {
		if err := c.PrvsRef.Validate(); err != nil {
			return messages.AtPath(err, "PrvsRef")
		}
	}
	if c.OthrRef != nil {
		if err := c.OthrRef.Validate(); err != nil {
			return messages.AtPath(err, "OthrRef")
		}
	}
	return nil
}

// AdditionalReference13 is a message reference qualified by its issuer.
type AdditionalReference13 struct {
	Ref     common.Max35Text              `xml:"Ref" json:"Ref"`
	RefIssr *PartyIdentification125Choice `xml:"RefIssr,omitempty" json:"RefIssr,omitempty"`
	MsgNm   *common.Max35Text             `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
}

func (a *AdditionalReference13) Validate() error {
	if err := a.Ref.Validate(); err != nil {
		return messages.AtPath(err, "Ref")
	}
	if a.RefIssr != nil {
		if err := a.RefIssr.Validate(); err != nil {
			return messages.AtPath(err, "RefIssr")
		}
	}
	if a.MsgNm != nil {
		if err := a.MsgNm.Validate(); err != nil {
			return messages.AtPath(err, "MsgNm")
		}
	}
	return nil
}

// PartyIdentification125Choice identifies a party by BIC, proprietary
// id or name and address.
type PartyIdentification125Choice struct {
	AnyBIC   *common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryId  *common.GenericIdentification1  `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *common.NameAndAddress5         `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (c *PartyIdentification125Choice) Validate() error {
	if c.AnyBIC != nil {
		if err := c.AnyBIC.Validate(); err != nil {
			return messages.AtPath(err, "AnyBIC")
		}
	}
	if c.PrtryId != nil {
		if err := c.PrtryId.Validate(); err != nil {
			return messages.AtPath(err, "PrtryId")
		}
	}
	if c.NmAndAdr != nil {
		if err := c.NmAndAdr.Validate(); err != nil {
			return messages.AtPath(err, "NmAndAdr")
		}
	}
	return nil
}

// Account23 identifies an existing account, optionally with related
// account details.
type Account23 struct {
	AcctId       common.Max35Text               `xml:"AcctId" json:"AcctId"`
	RltdAcctDtls *common.GenericIdentification1 `xml:"RltdAcctDtls,omitempty" json:"RltdAcctDtls,omitempty"`
}

func (a *Account23) Validate() error {
	if err := a.AcctId.Validate(); err != nil {
		return messages.AtPath(err, "AcctId")
	}
	if a.RltdAcctDtls != nil {
		if err := a.RltdAcctDtls.Validate(); err != nil {
			return messages.AtPath(err, "RltdAcctDtls")
		}
	}
	return nil
}

// InvestmentAccount77 identifies the investment account the instruction
// concerned.
type InvestmentAccount77 struct {
	AcctId common.Max35Text              `xml:"AcctId" json:"AcctId"`
	Nm     *common.Max35Text             `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Dsgnt  *common.Max35Text             `xml:"Dsgnt,omitempty" json:"Dsgnt,omitempty"`
	Svcr   *PartyIdentification125Choice `xml:"Svcr,omitempty" json:"Svcr,omitempty"`
}

func (a *InvestmentAccount77) Validate() error {
	if err := a.AcctId.Validate(); err != nil {
		return messages.AtPath(err, "AcctId")
	}
	if a.Nm != nil {
		if err := a.Nm.Validate(); err != nil {
			return messages.AtPath(err, "Nm")
		}
	}
	if a.Dsgnt != nil {
		if err := a.Dsgnt.Validate(); err != nil {
			return messages.AtPath(err, "Dsgnt")
		}
	}
	if a.Svcr != nil {
		if err := a.Svcr.Validate(); err != nil {
			return messages.AtPath(err, "Svcr")
		}
	}
	return nil
}
