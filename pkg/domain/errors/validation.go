package domain

import "errors"

type validationError struct {
	Message string
}

func (e *validationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &validationError{
		Message: message,
	}
}

// IsValidation reports whether err is a validation error. Matching uses a
// local target so concurrent callers never share state.
func IsValidation(err error) bool {
	var target *validationError
	return errors.As(err, &target)
}
