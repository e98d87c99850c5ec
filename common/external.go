package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// External code sets are maintained outside the schemas as registries, so
// the catalog only checks their length window.

// ExternalAccountIdentification1Code identifies an account identification
// scheme from the external code list.
type ExternalAccountIdentification1Code string

func (v ExternalAccountIdentification1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalAccountIdentification1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalBankTransactionDomain1Code is a bank transaction code domain.
type ExternalBankTransactionDomain1Code string

func (v ExternalBankTransactionDomain1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalBankTransactionDomain1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalBankTransactionFamily1Code is a bank transaction code family.
type ExternalBankTransactionFamily1Code string

func (v ExternalBankTransactionFamily1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalBankTransactionFamily1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalBankTransactionSubFamily1Code is a bank transaction code
// sub-family.
type ExternalBankTransactionSubFamily1Code string

func (v ExternalBankTransactionSubFamily1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalBankTransactionSubFamily1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalCardTransactionCategory1Code is a card transaction category.
type ExternalCardTransactionCategory1Code string

func (v ExternalCardTransactionCategory1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalCardTransactionCategory1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalCashAccountType1Code identifies a cash account type.
type ExternalCashAccountType1Code string

func (v ExternalCashAccountType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalCashAccountType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalChargeType1Code identifies a charge type.
type ExternalChargeType1Code string

func (v ExternalChargeType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalChargeType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalClearingSystemIdentification1Code identifies a clearing system.
type ExternalClearingSystemIdentification1Code string

func (v ExternalClearingSystemIdentification1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalClearingSystemIdentification1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 5)}
}

// ExternalDiscountAmountType1Code identifies a discount amount type.
type ExternalDiscountAmountType1Code string

func (v ExternalDiscountAmountType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalDiscountAmountType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalDocumentLineType1Code identifies a document line type.
type ExternalDocumentLineType1Code string

func (v ExternalDocumentLineType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalDocumentLineType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalEntryStatus1Code identifies the status of an entry.
type ExternalEntryStatus1Code string

func (v ExternalEntryStatus1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalEntryStatus1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalFinancialInstitutionIdentification1Code identifies a financial
// institution identification scheme.
type ExternalFinancialInstitutionIdentification1Code string

func (v ExternalFinancialInstitutionIdentification1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalFinancialInstitutionIdentification1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalGarnishmentType1Code identifies a garnishment type.
type ExternalGarnishmentType1Code string

func (v ExternalGarnishmentType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalGarnishmentType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalInvestigationType1Code identifies an investigation type.
type ExternalInvestigationType1Code string

func (v ExternalInvestigationType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalInvestigationType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalLocalInstrument1Code identifies a local payment instrument.
type ExternalLocalInstrument1Code string

func (v ExternalLocalInstrument1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalLocalInstrument1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 35)}
}

// ExternalOrganisationIdentification1Code identifies an organisation
// identification scheme.
type ExternalOrganisationIdentification1Code string

func (v ExternalOrganisationIdentification1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalOrganisationIdentification1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalPersonIdentification1Code identifies a person identification
// scheme.
type ExternalPersonIdentification1Code string

func (v ExternalPersonIdentification1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalPersonIdentification1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalProxyAccountType1Code identifies a proxy account type.
type ExternalProxyAccountType1Code string

func (v ExternalProxyAccountType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalProxyAccountType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalPurpose1Code identifies the purpose of a payment.
type ExternalPurpose1Code string

func (v ExternalPurpose1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalPurpose1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalReportingSource1Code identifies the source of a report.
type ExternalReportingSource1Code string

func (v ExternalReportingSource1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalReportingSource1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalReturnReason1Code identifies the reason for a payment return.
type ExternalReturnReason1Code string

func (v ExternalReturnReason1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalReturnReason1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalTaxAmountType1Code identifies a tax amount type.
type ExternalTaxAmountType1Code string

func (v ExternalTaxAmountType1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalTaxAmountType1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// ExternalTechnicalInputChannel1Code identifies the technical channel an
// entry was input through.
type ExternalTechnicalInputChannel1Code string

func (v ExternalTechnicalInputChannel1Code) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ExternalTechnicalInputChannel1Code) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}
