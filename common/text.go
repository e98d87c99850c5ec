// Package common defines the simple types and composites shared by every
// ISO 20022 message family in the catalog.
package common

import (
	"regexp"

	messages "github.com/codetiger/messages-sub000"
)

var (
	reExact4AlphaNumeric = regexp.MustCompile(`^[a-zA-Z0-9]{4}$`)
	reExact3Numeric      = regexp.MustCompile(`^[0-9]{3}$`)
	reMax3Numeric        = regexp.MustCompile(`^[0-9]{1,3}$`)
	reMax15Numeric       = regexp.MustCompile(`^[0-9]{1,15}$`)
	reMax5Numeric        = regexp.MustCompile(`^[0-9]{1,5}$`)
	reMax15PlusSigned    = regexp.MustCompile(`^[+]{0,1}[0-9]{1,15}$`)
	reMin2Max3Numeric    = regexp.MustCompile(`^[0-9]{2,3}$`)
	reMin3Max4Numeric    = regexp.MustCompile(`^[0-9]{3,4}$`)
	reMin8Max28Numeric   = regexp.MustCompile(`^[0-9]{8,28}$`)
)

// Max4Text is a string of 1 to 4 characters.
type Max4Text string

func (v Max4Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max4Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 4)}
}

// Max16Text is a string of 1 to 16 characters.
type Max16Text string

func (v Max16Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max16Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 16)}
}

// Max34Text is a string of 1 to 34 characters.
type Max34Text string

func (v Max34Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max34Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 34)}
}

// Max35Text is a string of 1 to 35 characters.
type Max35Text string

func (v Max35Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max35Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 35)}
}

// Max70Text is a string of 1 to 70 characters.
type Max70Text string

func (v Max70Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max70Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 70)}
}

// Max105Text is a string of 1 to 105 characters.
type Max105Text string

func (v Max105Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max105Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 105)}
}

// Max128Text is a string of 1 to 128 characters.
type Max128Text string

func (v Max128Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max128Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 128)}
}

// Max140Text is a string of 1 to 140 characters.
type Max140Text string

func (v Max140Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max140Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 140)}
}

// Max256Text is a string of 1 to 256 characters.
type Max256Text string

func (v Max256Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max256Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 256)}
}

// Max350Text is a string of 1 to 350 characters.
type Max350Text string

func (v Max350Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max350Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 350)}
}

// Max500Text is a string of 1 to 500 characters.
type Max500Text string

func (v Max500Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max500Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 500)}
}

// Max2048Text is a string of 1 to 2048 characters.
type Max2048Text string

func (v Max2048Text) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max2048Text) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Length(1, 2048)}
}

// Exact4AlphaNumericText is exactly 4 alphanumeric characters.
type Exact4AlphaNumericText string

func (v Exact4AlphaNumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Exact4AlphaNumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reExact4AlphaNumeric)}
}

// Max15NumericText is a digit string of 1 to 15 digits.
type Max15NumericText string

func (v Max15NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max15NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMax15Numeric)}
}

// Max5NumericText is a digit string of 1 to 5 digits.
type Max5NumericText string

func (v Max5NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max5NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMax5Numeric)}
}

// Max15PlusSignedNumericText is a digit string of 1 to 15 digits with an
// optional leading plus sign.
type Max15PlusSignedNumericText string

func (v Max15PlusSignedNumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max15PlusSignedNumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMax15PlusSigned)}
}

// Exact3NumericText is exactly 3 digits.
type Exact3NumericText string

func (v Exact3NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Exact3NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reExact3Numeric)}
}

// Max3NumericText is a digit string of 1 to 3 digits.
type Max3NumericText string

func (v Max3NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Max3NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMax3Numeric)}
}

// Min2Max3NumericText is a digit string of 2 or 3 digits.
type Min2Max3NumericText string

func (v Min2Max3NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Min2Max3NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMin2Max3Numeric)}
}

// Min3Max4NumericText is a digit string of 3 or 4 digits.
type Min3Max4NumericText string

func (v Min3Max4NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Min3Max4NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMin3Max4Numeric)}
}

// Min8Max28NumericText is a digit string of 8 to 28 digits, the shape of a
// primary account number.
type Min8Max28NumericText string

func (v Min8Max28NumericText) Validate() error {
	return messages.ValidateValue(string(v), v.ValueRules()...)
}

func (v Min8Max28NumericText) ValueRules() []messages.Rule {
	return []messages.Rule{messages.Pattern(reMin8Max28Numeric)}
}
