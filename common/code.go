package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// CreditDebitCode indicates whether an entry is a credit or a debit.
type CreditDebitCode string

const (
	CreditDebitCodeCRDT CreditDebitCode = "CRDT"
	CreditDebitCodeDBIT CreditDebitCode = "DBIT"
)

func (v CreditDebitCode) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CreditDebitCode) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("CRDT", "DBIT")}
}

// AddressType2Code qualifies a postal address.
type AddressType2Code string

const (
	AddressType2CodeADDR AddressType2Code = "ADDR"
	AddressType2CodePBOX AddressType2Code = "PBOX"
	AddressType2CodeHOME AddressType2Code = "HOME"
	AddressType2CodeBIZZ AddressType2Code = "BIZZ"
	AddressType2CodeMLTO AddressType2Code = "MLTO"
	AddressType2CodeDLVY AddressType2Code = "DLVY"
)

func (v AddressType2Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v AddressType2Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY")}
}

// CopyDuplicate1Code states whether a message is a copy, a duplicate, or
// both.
type CopyDuplicate1Code string

const (
	CopyDuplicate1CodeCODU CopyDuplicate1Code = "CODU"
	CopyDuplicate1CodeCOPY CopyDuplicate1Code = "COPY"
	CopyDuplicate1CodeDUPL CopyDuplicate1Code = "DUPL"
)

func (v CopyDuplicate1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CopyDuplicate1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("CODU", "COPY", "DUPL")}
}

// NamePrefix2Code is the title prefixing a contact name.
type NamePrefix2Code string

const (
	NamePrefix2CodeDOCT NamePrefix2Code = "DOCT"
	NamePrefix2CodeMADM NamePrefix2Code = "MADM"
	NamePrefix2CodeMISS NamePrefix2Code = "MISS"
	NamePrefix2CodeMIST NamePrefix2Code = "MIST"
	NamePrefix2CodeMIKS NamePrefix2Code = "MIKS"
)

func (v NamePrefix2Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v NamePrefix2Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("DOCT", "MADM", "MISS", "MIST", "MIKS")}
}

// PreferredContactMethod1Code is the preferred channel for contacting a
// party.
type PreferredContactMethod1Code string

const (
	PreferredContactMethod1CodeLETT PreferredContactMethod1Code = "LETT"
	PreferredContactMethod1CodeMAIL PreferredContactMethod1Code = "MAIL"
	PreferredContactMethod1CodePHON PreferredContactMethod1Code = "PHON"
	PreferredContactMethod1CodeFAXX PreferredContactMethod1Code = "FAXX"
	PreferredContactMethod1CodeCELL PreferredContactMethod1Code = "CELL"
)

func (v PreferredContactMethod1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v PreferredContactMethod1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("LETT", "MAIL", "PHON", "FAXX", "CELL")}
}

// RemittanceLocationMethod2Code is the method for delivering remittance
// advice.
type RemittanceLocationMethod2Code string

const (
	RemittanceLocationMethod2CodeFAXI RemittanceLocationMethod2Code = "FAXI"
	RemittanceLocationMethod2CodeEDIC RemittanceLocationMethod2Code = "EDIC"
	RemittanceLocationMethod2CodeURID RemittanceLocationMethod2Code = "URID"
	RemittanceLocationMethod2CodeEMAL RemittanceLocationMethod2Code = "EMAL"
	RemittanceLocationMethod2CodePOST RemittanceLocationMethod2Code = "POST"
	RemittanceLocationMethod2CodeSMSM RemittanceLocationMethod2Code = "SMSM"
)

func (v RemittanceLocationMethod2Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v RemittanceLocationMethod2Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("FAXI", "EDIC", "URID", "EMAL", "POST", "SMSM")}
}

// DocumentType3Code identifies a referred document in a creditor
// reference.
type DocumentType3Code string

const (
	DocumentType3CodeRADM DocumentType3Code = "RADM"
	DocumentType3CodeRPIN DocumentType3Code = "RPIN"
	DocumentType3CodeFXDR DocumentType3Code = "FXDR"
	DocumentType3CodeDISP DocumentType3Code = "DISP"
	DocumentType3CodePUOR DocumentType3Code = "PUOR"
	DocumentType3CodeSCOR DocumentType3Code = "SCOR"
)

func (v DocumentType3Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v DocumentType3Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("RADM", "RPIN", "FXDR", "DISP", "PUOR", "SCOR")}
}

// DocumentType6Code identifies a referred document in structured
// remittance information.
type DocumentType6Code string

const (
	DocumentType6CodeMSIN DocumentType6Code = "MSIN"
	DocumentType6CodeCNFA DocumentType6Code = "CNFA"
	DocumentType6CodeDNFA DocumentType6Code = "DNFA"
	DocumentType6CodeCINV DocumentType6Code = "CINV"
	DocumentType6CodeCREN DocumentType6Code = "CREN"
	DocumentType6CodeDEBN DocumentType6Code = "DEBN"
	DocumentType6CodeHIRI DocumentType6Code = "HIRI"
	DocumentType6CodeSBIN DocumentType6Code = "SBIN"
	DocumentType6CodeCMCN DocumentType6Code = "CMCN"
	DocumentType6CodeSOAC DocumentType6Code = "SOAC"
	DocumentType6CodeDISP DocumentType6Code = "DISP"
	DocumentType6CodeBOLD DocumentType6Code = "BOLD"
	DocumentType6CodeVCHR DocumentType6Code = "VCHR"
	DocumentType6CodeAROI DocumentType6Code = "AROI"
	DocumentType6CodeTSUT DocumentType6Code = "TSUT"
	DocumentType6CodePUOR DocumentType6Code = "PUOR"
)

func (v DocumentType6Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v DocumentType6Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"MSIN", "CNFA", "DNFA", "CINV", "CREN", "DEBN", "HIRI", "SBIN",
		"CMCN", "SOAC", "DISP", "BOLD", "VCHR", "AROI", "TSUT", "PUOR",
	)}
}

// ChargeBearerType1Code states which party bears the charges.
type ChargeBearerType1Code string

const (
	ChargeBearerType1CodeDEBT ChargeBearerType1Code = "DEBT"
	ChargeBearerType1CodeCRED ChargeBearerType1Code = "CRED"
	ChargeBearerType1CodeSHAR ChargeBearerType1Code = "SHAR"
	ChargeBearerType1CodeSLEV ChargeBearerType1Code = "SLEV"
)

func (v ChargeBearerType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ChargeBearerType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("DEBT", "CRED", "SHAR", "SLEV")}
}

// InterestType1Code distinguishes intra-day from overnight interest.
type InterestType1Code string

const (
	InterestType1CodeINDY InterestType1Code = "INDY"
	InterestType1CodeOVRN InterestType1Code = "OVRN"
)

func (v InterestType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v InterestType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("INDY", "OVRN")}
}

// TaxRecordPeriod1Code identifies the period a tax record covers.
type TaxRecordPeriod1Code string

const (
	TaxRecordPeriod1CodeMM01 TaxRecordPeriod1Code = "MM01"
	TaxRecordPeriod1CodeMM02 TaxRecordPeriod1Code = "MM02"
	TaxRecordPeriod1CodeMM03 TaxRecordPeriod1Code = "MM03"
	TaxRecordPeriod1CodeMM04 TaxRecordPeriod1Code = "MM04"
	TaxRecordPeriod1CodeMM05 TaxRecordPeriod1Code = "MM05"
	TaxRecordPeriod1CodeMM06 TaxRecordPeriod1Code = "MM06"
	TaxRecordPeriod1CodeMM07 TaxRecordPeriod1Code = "MM07"
	TaxRecordPeriod1CodeMM08 TaxRecordPeriod1Code = "MM08"
	TaxRecordPeriod1CodeMM09 TaxRecordPeriod1Code = "MM09"
	TaxRecordPeriod1CodeMM10 TaxRecordPeriod1Code = "MM10"
	TaxRecordPeriod1CodeMM11 TaxRecordPeriod1Code = "MM11"
	TaxRecordPeriod1CodeMM12 TaxRecordPeriod1Code = "MM12"
	TaxRecordPeriod1CodeQTR1 TaxRecordPeriod1Code = "QTR1"
	TaxRecordPeriod1CodeQTR2 TaxRecordPeriod1Code = "QTR2"
	TaxRecordPeriod1CodeQTR3 TaxRecordPeriod1Code = "QTR3"
	TaxRecordPeriod1CodeQTR4 TaxRecordPeriod1Code = "QTR4"
	TaxRecordPeriod1CodeHLF1 TaxRecordPeriod1Code = "HLF1"
	TaxRecordPeriod1CodeHLF2 TaxRecordPeriod1Code = "HLF2"
)

func (v TaxRecordPeriod1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v TaxRecordPeriod1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"MM01", "MM02", "MM03", "MM04", "MM05", "MM06", "MM07", "MM08",
		"MM09", "MM10", "MM11", "MM12", "QTR1", "QTR2", "QTR3", "QTR4",
		"HLF1", "HLF2",
	)}
}

// Frequency6Code is a regularity of occurrence.
type Frequency6Code string

const (
	Frequency6CodeYEAR Frequency6Code = "YEAR"
	Frequency6CodeMNTH Frequency6Code = "MNTH"
	Frequency6CodeQURT Frequency6Code = "QURT"
	Frequency6CodeMIAN Frequency6Code = "MIAN"
	Frequency6CodeWEEK Frequency6Code = "WEEK"
	Frequency6CodeDAIL Frequency6Code = "DAIL"
	Frequency6CodeADHO Frequency6Code = "ADHO"
	Frequency6CodeINDA Frequency6Code = "INDA"
	Frequency6CodeFRTN Frequency6Code = "FRTN"
)

func (v Frequency6Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Frequency6Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("YEAR", "MNTH", "QURT", "MIAN", "WEEK", "DAIL", "ADHO", "INDA", "FRTN")}
}

// AttendanceContext1Code is the attendance context of a card payment.
type AttendanceContext1Code string

const (
	AttendanceContext1CodeATTD AttendanceContext1Code = "ATTD"
	AttendanceContext1CodeSATT AttendanceContext1Code = "SATT"
	AttendanceContext1CodeUATT AttendanceContext1Code = "UATT"
)

func (v AttendanceContext1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v AttendanceContext1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("ATTD", "SATT", "UATT")}
}

// TransactionEnvironment1Code is the location category of a card
// transaction.
type TransactionEnvironment1Code string

const (
	TransactionEnvironment1CodeMERC TransactionEnvironment1Code = "MERC"
	TransactionEnvironment1CodePRIV TransactionEnvironment1Code = "PRIV"
	TransactionEnvironment1CodePUBL TransactionEnvironment1Code = "PUBL"
)

func (v TransactionEnvironment1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v TransactionEnvironment1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("MERC", "PRIV", "PUBL")}
}

// TransactionChannel1Code is the channel a card transaction came through.
type TransactionChannel1Code string

const (
	TransactionChannel1CodeMAIL TransactionChannel1Code = "MAIL"
	TransactionChannel1CodeTLPH TransactionChannel1Code = "TLPH"
	TransactionChannel1CodeECOM TransactionChannel1Code = "ECOM"
	TransactionChannel1CodeTVPY TransactionChannel1Code = "TVPY"
)

func (v TransactionChannel1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v TransactionChannel1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("MAIL", "TLPH", "ECOM", "TVPY")}
}

// CardPaymentServiceType2Code is an additional card payment service.
type CardPaymentServiceType2Code string

const (
	CardPaymentServiceType2CodeAGGR CardPaymentServiceType2Code = "AGGR"
	CardPaymentServiceType2CodeDCCV CardPaymentServiceType2Code = "DCCV"
	CardPaymentServiceType2CodeGRTT CardPaymentServiceType2Code = "GRTT"
	CardPaymentServiceType2CodeINSP CardPaymentServiceType2Code = "INSP"
	CardPaymentServiceType2CodeLOYT CardPaymentServiceType2Code = "LOYT"
	CardPaymentServiceType2CodeNRES CardPaymentServiceType2Code = "NRES"
	CardPaymentServiceType2CodePUCO CardPaymentServiceType2Code = "PUCO"
	CardPaymentServiceType2CodeRECP CardPaymentServiceType2Code = "RECP"
	CardPaymentServiceType2CodeSOAF CardPaymentServiceType2Code = "SOAF"
	CardPaymentServiceType2CodeUNAF CardPaymentServiceType2Code = "UNAF"
	CardPaymentServiceType2CodeVCAU CardPaymentServiceType2Code = "VCAU"
)

func (v CardPaymentServiceType2Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CardPaymentServiceType2Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"AGGR", "DCCV", "GRTT", "INSP", "LOYT", "NRES", "PUCO", "RECP",
		"SOAF", "UNAF", "VCAU",
	)}
}

// CSCManagement1Code states how the card security code was handled.
type CSCManagement1Code string

const (
	CSCManagement1CodePRST CSCManagement1Code = "PRST"
	CSCManagement1CodeBYPS CSCManagement1Code = "BYPS"
	CSCManagement1CodeUNRD CSCManagement1Code = "UNRD"
	CSCManagement1CodeNCSC CSCManagement1Code = "NCSC"
)

func (v CSCManagement1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CSCManagement1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("PRST", "BYPS", "UNRD", "NCSC")}
}

// CardDataReading1Code is how card data was captured.
type CardDataReading1Code string

const (
	CardDataReading1CodeTAGC CardDataReading1Code = "TAGC"
	CardDataReading1CodePHYS CardDataReading1Code = "PHYS"
	CardDataReading1CodeBRCD CardDataReading1Code = "BRCD"
	CardDataReading1CodeMGST CardDataReading1Code = "MGST"
	CardDataReading1CodeCICC CardDataReading1Code = "CICC"
	CardDataReading1CodeDFLE CardDataReading1Code = "DFLE"
	CardDataReading1CodeCTLS CardDataReading1Code = "CTLS"
	CardDataReading1CodeECTL CardDataReading1Code = "ECTL"
)

func (v CardDataReading1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CardDataReading1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"TAGC", "PHYS", "BRCD", "MGST", "CICC", "DFLE", "CTLS", "ECTL",
	)}
}

// CardholderVerificationCapability1Code is a cardholder verification method
// a point of interaction supports.
type CardholderVerificationCapability1Code string

const (
	CardholderVerificationCapability1CodeMNSG CardholderVerificationCapability1Code = "MNSG"
	CardholderVerificationCapability1CodeNPIN CardholderVerificationCapability1Code = "NPIN"
	CardholderVerificationCapability1CodeFCPN CardholderVerificationCapability1Code = "FCPN"
	CardholderVerificationCapability1CodeFEPN CardholderVerificationCapability1Code = "FEPN"
	CardholderVerificationCapability1CodeFDSG CardholderVerificationCapability1Code = "FDSG"
	CardholderVerificationCapability1CodeFBIO CardholderVerificationCapability1Code = "FBIO"
	CardholderVerificationCapability1CodeMNVR CardholderVerificationCapability1Code = "MNVR"
	CardholderVerificationCapability1CodeFBIG CardholderVerificationCapability1Code = "FBIG"
	CardholderVerificationCapability1CodeAPKI CardholderVerificationCapability1Code = "APKI"
	CardholderVerificationCapability1CodePKIS CardholderVerificationCapability1Code = "PKIS"
	CardholderVerificationCapability1CodeCHDT CardholderVerificationCapability1Code = "CHDT"
	CardholderVerificationCapability1CodeSCEC CardholderVerificationCapability1Code = "SCEC"
)

func (v CardholderVerificationCapability1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CardholderVerificationCapability1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"MNSG", "NPIN", "FCPN", "FEPN", "FDSG", "FBIO", "MNVR", "FBIG",
		"APKI", "PKIS", "CHDT", "SCEC",
	)}
}

// OnLineCapability1Code is the on-line or off-line capability of a point of
// interaction.
type OnLineCapability1Code string

const (
	OnLineCapability1CodeOFLN OnLineCapability1Code = "OFLN"
	OnLineCapability1CodeONLN OnLineCapability1Code = "ONLN"
	OnLineCapability1CodeSMON OnLineCapability1Code = "SMON"
)

func (v OnLineCapability1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v OnLineCapability1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("OFLN", "ONLN", "SMON")}
}

// POIComponentType1Code identifies a component of a point of interaction.
type POIComponentType1Code string

const (
	POIComponentType1CodeSOFT POIComponentType1Code = "SOFT"
	POIComponentType1CodeEMVK POIComponentType1Code = "EMVK"
	POIComponentType1CodeEMVO POIComponentType1Code = "EMVO"
	POIComponentType1CodeMRIT POIComponentType1Code = "MRIT"
	POIComponentType1CodeCHIT POIComponentType1Code = "CHIT"
	POIComponentType1CodeSECM POIComponentType1Code = "SECM"
	POIComponentType1CodePEDV POIComponentType1Code = "PEDV"
)

func (v POIComponentType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v POIComponentType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"SOFT", "EMVK", "EMVO", "MRIT", "CHIT", "SECM", "PEDV",
	)}
}

// UserInterface2Code identifies a display of a point of interaction.
type UserInterface2Code string

const (
	UserInterface2CodeMDSP UserInterface2Code = "MDSP"
	UserInterface2CodeCDSP UserInterface2Code = "CDSP"
)

func (v UserInterface2Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v UserInterface2Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf("MDSP", "CDSP")}
}

// PartyType3Code is the type of party owning a point of interaction
// identification.
type PartyType3Code string

const (
	PartyType3CodeOPOI PartyType3Code = "OPOI"
	PartyType3CodeMERC PartyType3Code = "MERC"
	PartyType3CodeACCP PartyType3Code = "ACCP"
	PartyType3CodeITAG PartyType3Code = "ITAG"
	PartyType3CodeACQR PartyType3Code = "ACQR"
	PartyType3CodeCISS PartyType3Code = "CISS"
	PartyType3CodeDLIS PartyType3Code = "DLIS"
)

func (v PartyType3Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v PartyType3Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"OPOI", "MERC", "ACCP", "ITAG", "ACQR", "CISS", "DLIS",
	)}
}

// PartyType4Code is the type of party assigning a point of interaction
// identification.
type PartyType4Code string

const (
	PartyType4CodeMERC PartyType4Code = "MERC"
	PartyType4CodeACCP PartyType4Code = "ACCP"
	PartyType4CodeITAG PartyType4Code = "ITAG"
	PartyType4CodeACQR PartyType4Code = "ACQR"
	PartyType4CodeCISS PartyType4Code = "CISS"
	PartyType4CodeTAXH PartyType4Code = "TAXH"
)

func (v PartyType4Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v PartyType4Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.OneOf(
		"MERC", "ACCP", "ITAG", "ACQR", "CISS", "TAXH",
	)}
}
