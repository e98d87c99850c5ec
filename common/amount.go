package common

import (
	messages "github.com/codetiger/messages-sub000"
)

// Number is an unconstrained numeric element.
type Number float64

func (v Number) Validate() error { return nil }

// DecimalNumber is a decimal with up to 17 fractional digits.
type DecimalNumber float64

func (v DecimalNumber) Validate() error {
	return messages.ValidateValue(float64(v), v.ValueRules()...)
}

func (v DecimalNumber) ValueRules() []messages.Rule {
	return []messages.Rule{messages.FractionDigits(17)}
}

// NonNegativeDecimalNumber is a decimal greater than or equal to zero.
type NonNegativeDecimalNumber float64

func (v NonNegativeDecimalNumber) Validate() error {
	return messages.ValidateValue(float64(v), v.ValueRules()...)
}

func (v NonNegativeDecimalNumber) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Min(0), messages.FractionDigits(17)}
}

// PercentageRate is a rate expressed as a percentage with up to 10
// fractional digits.
type PercentageRate float64

func (v PercentageRate) Validate() error {
	return messages.ValidateValue(float64(v), v.ValueRules()...)
}

func (v PercentageRate) ValueRules() []messages.Rule {
	return []messages.Rule{messages.FractionDigits(10)}
}

// BaseOneRate is a rate expressed against base 1, e.g. an exchange rate.
type BaseOneRate float64

func (v BaseOneRate) Validate() error {
	return messages.ValidateValue(float64(v), v.ValueRules()...)
}

func (v BaseOneRate) ValueRules() []messages.Rule {
	return []messages.Rule{messages.FractionDigits(10)}
}

// ActiveOrHistoricCurrencyAndAmount is a non-negative amount with its
// currency carried as an attribute.
type ActiveOrHistoricCurrencyAndAmount struct {
	Value float64                      `xml:",chardata" json:"Value"`
	Ccy   ActiveOrHistoricCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
}

func (a *ActiveOrHistoricCurrencyAndAmount) Validate() error {
	if err := messages.ValidateValue(a.Value, messages.Min(0), messages.FractionDigits(5)); err != nil {
		return messages.AtPath(err, "Value")
	}
	if err := a.Ccy.Validate(); err != nil {
		return messages.AtPath(err, "Ccy")
	}
	return nil
}

// ActiveCurrencyAndAmount is a non-negative amount in a currently active
// currency.
type ActiveCurrencyAndAmount struct {
	Value float64            `xml:",chardata" json:"Value"`
	Ccy   ActiveCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
}

func (a *ActiveCurrencyAndAmount) Validate() error {
	if err := messages.ValidateValue(a.Value, messages.Min(0), messages.FractionDigits(5)); err != nil {
		return messages.AtPath(err, "Value")
	}
	if err := a.Ccy.Validate(); err != nil {
		return messages.AtPath(err, "Ccy")
	}
	return nil
}

// AmountAndDirection35 is an amount with a credit or debit direction.
type AmountAndDirection35 struct {
	Amt       NonNegativeDecimalNumber `xml:"Amt" json:"Amt"`
	CdtDbtInd CreditDebitCode          `xml:"CdtDbtInd" json:"CdtDbtInd"`
}

func (a *AmountAndDirection35) Validate() error {
	if err := a.Amt.Validate(); err != nil {
		return messages.AtPath(err, "Amt")
	}
	if err := a.CdtDbtInd.Validate(); err != nil {
		return messages.AtPath(err, "CdtDbtInd")
	}
	return nil
}
