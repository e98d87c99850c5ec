package messages

// ValidateValue runs rules against value in order and returns the first
// failure. This is the entry point every simple type delegates to.
func ValidateValue(value any, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEach validates every element of a repeating element, tagging
// failures with "elem[i]". The first failing element aborts the walk.
// Works for both value- and pointer-receiver Validate methods.
func ValidateEach[T any, PT interface {
	Validator
	*T
}](elem string, items []T) error {
	for i := range items {
		if err := PT(&items[i]).Validate(); err != nil {
			return AtIndex(err, elem, i)
		}
	}
	return nil
}
