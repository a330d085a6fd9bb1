package services

import "errors"

// ValidationError marks input the caller can fix; handlers surface its
// message verbatim with a 400 status.
type ValidationError struct {
	Message string
}

func (err *ValidationError) Error() string {
	return err.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// ErrCycleNotFound covers both absent records and records owned by another
// user, so a caller cannot probe for foreign cycle ids.
var ErrCycleNotFound = errors.New("cycle not found")

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
