package errors

import (
	"strings"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(",")
		}
	}
	return sb.String()
}

// HasMajor checks if any of the errors in given multi error
// has given major classification.
func (m MultiError) HasMajor(mjr Major) bool {
	for _, e := range m {
		if classError, ok := e.(ClassError); ok && classError.Class().IsMajor(mjr) {
			return true
		}
	}
	return false
}
