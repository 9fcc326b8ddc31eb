package recording

import (
	"github.com/gospike/nest/errors"
)

var (
	// MjrRecording is the major recorded data error classification.
	MjrRecording errors.Major

	// MnrHandler is the minor classification for the output handler registry issues.
	MnrHandler errors.Minor
	// ClassHandlerNotFound is the classification for extensions with no registered handler.
	ClassHandlerNotFound errors.Class
	// ClassHandlerAlreadyRegistered is the classification for duplicated handler registration.
	ClassHandlerAlreadyRegistered errors.Class

	// MnrOutput is the minor classification for the output write issues.
	MnrOutput errors.Minor
	// ClassOutputFailed is the classification for failed output writes.
	ClassOutputFailed errors.Class
)

func init() {
	MjrRecording = errors.MustNewMajor()

	MnrHandler = errors.MustNewMinor(MjrRecording)
	ClassHandlerNotFound = errors.MustNewClassWIndex(MjrRecording, MnrHandler)
	ClassHandlerAlreadyRegistered = errors.MustNewClassWIndex(MjrRecording, MnrHandler)

	MnrOutput = errors.MustNewMinor(MjrRecording)
	ClassOutputFailed = errors.MustNewClassWIndex(MjrRecording, MnrOutput)
}
