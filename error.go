package messages

import (
	"fmt"
	"strconv"
)

// Validation error codes. One code per schema facet family.
const (
	CodeTooShort    = 1001 // value shorter than the minimum length
	CodeTooLong     = 1002 // value exceeds the maximum length
	CodeBelowMin    = 1003 // value below the numeric minimum
	CodeNotInSet    = 1004 // value not in the permitted code set
	CodeBadPattern  = 1005 // value does not match the required pattern
	CodeAboveMax    = 1006 // value above the numeric maximum
	CodeBadFraction = 1007 // value carries more decimal digits than allowed
)

// ValidationError is the single failure type for the whole catalog.
// Code identifies the violated facet, Path the offending element as a
// dotted trail built up while validation unwinds (e.g. "Ntfctn[0].Acct.Id").
type ValidationError struct {
	Code    int
	Message string
	Path    string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s (code %d)", e.Path, e.Message, e.Code)
}

// NewValidationError creates a ValidationError with no path.
func NewValidationError(code int, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// AtPath returns err with elem prepended to its path. Nil-safe, and errors
// other than *ValidationError pass through untouched.
func AtPath(err error, elem string) error {
	ve, ok := err.(*ValidationError)
	if !ok || ve == nil {
		return err
	}
	if ve.Path == "" {
		ve.Path = elem
	} else {
		ve.Path = elem + "." + ve.Path
	}
	return ve
}

// AtIndex is AtPath for repeating elements: the path segment becomes
// "elem[i]".
func AtIndex(err error, elem string, i int) error {
	return AtPath(err, elem+"["+strconv.Itoa(i)+"]")
}
