package mapping

import (
	"github.com/gospike/nest/errors"
)

var (
	// MjrMapping is the major model mapping error classification.
	MjrMapping errors.Major
	// MnrModel is the minor classification for the model reflection issues.
	MnrModel errors.Minor
	// ClassInvalidModelName is the classification for empty or malformed model names.
	ClassInvalidModelName errors.Class
	// ClassReceptorNotFound is the classification for unknown receptor type names.
	ClassReceptorNotFound errors.Class
)

func init() {
	MjrMapping = errors.MustNewMajor()
	MnrModel = errors.MustNewMinor(MjrMapping)
	ClassInvalidModelName = errors.MustNewClassWIndex(MjrMapping, MnrModel)
	ClassReceptorNotFound = errors.MustNewClassWIndex(MjrMapping, MnrModel)
}
