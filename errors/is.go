package errors

// IsClass checks if given error is of given 'class'.
func IsClass(err error, class Class) bool {
	classError, ok := err.(ClassError)
	if !ok {
		return false
	}
	return classError.Class() == class
}

// HasMajor checks if given error has given major classification.
// For a MultiError the check passes when any of the contained
// errors has given major.
func HasMajor(err error, mjr Major) bool {
	switch e := err.(type) {
	case ClassError:
		return e.Class().IsMajor(mjr)
	case MultiError:
		return e.HasMajor(mjr)
	}
	return false
}
