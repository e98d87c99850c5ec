package messages

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	threshold float64
	min       bool
}

// Min returns a rule that checks if a numeric value is greater than or
// equal to threshold. XSD minInclusive.
func Min(threshold float64) Rule {
	return thresholdRule{
		validation.Min(threshold),
		threshold,
		true,
	}
}

// Max returns a rule that checks if a numeric value is less than or equal
// to threshold. XSD maxInclusive.
func Max(threshold float64) Rule {
	return thresholdRule{
		validation.Max(threshold),
		threshold,
		false,
	}
}

func (r thresholdRule) Validate(value any) error {
	// Ozzo skips zero values; a zero still has to clear the threshold.
	if f, ok := floatValue(value); ok && f == 0 {
		if r.min && r.threshold > 0 {
			return r.violation()
		}
		if !r.min && r.threshold < 0 {
			return r.violation()
		}
		return nil
	}
	if err := r.ThresholdRule.Validate(value); err != nil {
		return r.violation()
	}
	return nil
}

func (r thresholdRule) violation() *ValidationError {
	if r.min {
		return NewValidationError(CodeBelowMin, fmt.Sprintf("is below the minimum of %v", r.threshold))
	}
	return NewValidationError(CodeAboveMax, fmt.Sprintf("is above the maximum of %v", r.threshold))
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	f := r.threshold
	if r.min {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}
