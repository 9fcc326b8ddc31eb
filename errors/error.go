package errors

import (
	"fmt"
)

// compile time check for the simple error interfaces.
var _ ClassError = simpleError{}

// New creates a simple ClassError with given 'c' Class and 'message'.
func New(c Class, message string) ClassError {
	return simpleError{class: c, message: message}
}

// Newf creates a simple ClassError with given 'c' Class and formatted message.
func Newf(c Class, format string, args ...interface{}) ClassError {
	return simpleError{class: c, message: fmt.Sprintf(format, args...)}
}

// simpleError is a lightweight classed error without details or instance id.
type simpleError struct {
	class   Class
	message string
}

// Class implements ClassError interface.
func (e simpleError) Class() Class {
	return e.class
}

// Error implements error interface.
func (e simpleError) Error() string {
	return e.message
}
