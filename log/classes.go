package log

import (
	"github.com/gospike/nest/errors"
)

var (
	// MjrLogger is the major logger error classification.
	MjrLogger errors.Major
	// MnrLevel is the minor classification for the logger level issues.
	MnrLevel errors.Minor
	// ClassUnknownLevel is the classification for unknown logger levels.
	ClassUnknownLevel errors.Class
	// ClassInvalidLogger is the classification for the invalid logger.
	ClassInvalidLogger errors.Class
)

func init() {
	MjrLogger = errors.MustNewMajor()
	MnrLevel = errors.MustNewMinor(MjrLogger)
	ClassUnknownLevel = errors.MustNewClassWIndex(MjrLogger, MnrLevel)
	ClassInvalidLogger = errors.MustNewMajorClass(MjrLogger)
}
