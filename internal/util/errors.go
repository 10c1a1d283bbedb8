package util

import "errors"

var (
	ErrQuestionNotFound = errors.New("quiz question not found")
	ErrSessionNotFound  = errors.New("quiz session not found")
	ErrWrongPasscode    = errors.New("wrong passcode")
	ErrTooManyAttempts  = errors.New("too many passcode attempts, try again later")
)

// ValidationError reports the first violated input constraint. The message
// is surfaced to the client verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
