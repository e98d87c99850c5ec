package common

import (
	"regexp"

	messages "github.com/codetiger/messages-sub000"
)

var (
	reLEI         = regexp.MustCompile(`^[A-Z0-9]{18}[0-9]{2}$`)
	reAnyBIC      = regexp.MustCompile(`^[A-Z0-9]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	reIBAN        = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[a-zA-Z0-9]{1,30}$`)
	reUUIDv4      = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	rePhoneNumber = regexp.MustCompile(`^\+[0-9]{1,3}-[0-9()+\-]{1,30}$`)
	reCountry     = regexp.MustCompile(`^[A-Z]{2}$`)
	reCurrency    = regexp.MustCompile(`^[A-Z]{3}$`)
)

// LEIIdentifier is a legal entity identifier: 18 alphanumerics followed by
// 2 check digits.
type LEIIdentifier string

func (v LEIIdentifier) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v LEIIdentifier) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reLEI)}
}

// AnyBICDec2014Identifier is a BIC of a financial or non-financial
// institution, 8 or 11 characters.
type AnyBICDec2014Identifier string

func (v AnyBICDec2014Identifier) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v AnyBICDec2014Identifier) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reAnyBIC)}
}

// BICFIDec2014Identifier is the BIC of a financial institution.
type BICFIDec2014Identifier string

func (v BICFIDec2014Identifier) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v BICFIDec2014Identifier) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reAnyBIC)}
}

// IBAN2007Identifier is an international bank account number.
type IBAN2007Identifier string

func (v IBAN2007Identifier) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v IBAN2007Identifier) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reIBAN)}
}

// UUIDv4Identifier is a lowercase RFC 4122 version 4 UUID, used for the
// unique end-to-end transaction reference (UETR).
type UUIDv4Identifier string

func (v UUIDv4Identifier) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v UUIDv4Identifier) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reUUIDv4)}
}

// PhoneNumber is a telephone number in the +CC-number convention.
type PhoneNumber string

func (v PhoneNumber) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v PhoneNumber) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(rePhoneNumber)}
}

// CountryCode is an ISO 3166-1 alpha-2 country code.
type CountryCode string

func (v CountryCode) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v CountryCode) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reCountry), messages.Country()}
}

// ActiveCurrencyCode is an ISO 4217 code of a currently active currency.
type ActiveCurrencyCode string

func (v ActiveCurrencyCode) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ActiveCurrencyCode) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reCurrency), messages.Currency()}
}

// ActiveOrHistoricCurrencyCode is an ISO 4217 currency code, active or
// withdrawn.
type ActiveOrHistoricCurrencyCode string

func (v ActiveOrHistoricCurrencyCode) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v ActiveOrHistoricCurrencyCode) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reCurrency)}
}
