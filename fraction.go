package messages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type fractionDigitsRule struct {
	digits uint
}

// FractionDigits returns a rule that caps the number of decimal digits a
// numeric value may carry. XSD fractionDigits.
func FractionDigits(digits uint) Rule {
	return fractionDigitsRule{digits: digits}
}

func (r fractionDigitsRule) Validate(value any) error {
	s, ok := stringValue(value)
	if !ok {
		f, okf := floatValue(value)
		if !okf {
			return nil
		}
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	spl := strings.Split(s, ".")
	if len(spl) < 2 {
		return nil
	}
	if len(spl[1]) > int(r.digits) {
		return NewValidationError(CodeBadFraction, fmt.Sprintf("carries more than %d decimal digits", r.digits))
	}
	return nil
}

func (r fractionDigitsRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref.Value, fmt.Sprintf("no more than %d decimal digits", r.digits))
	return nil
}
