package common

// Boolean elements carry no schema facets, so their Validate always
// succeeds.

// TrueFalseIndicator is a plain boolean element.
type TrueFalseIndicator bool

func (v TrueFalseIndicator) Validate() error { return nil }

// YesNoIndicator is a plain boolean element.
type YesNoIndicator bool

func (v YesNoIndicator) Validate() error { return nil }

// ChargeIncludedIndicator states whether a charge is included in the entry
// amount.
type ChargeIncludedIndicator bool

func (v ChargeIncludedIndicator) Validate() error { return nil }
