package nest

import (
	"github.com/gospike/nest/errors"
)

var (
	// MjrSession is the major session lifecycle error classification.
	MjrSession errors.Major

	// MnrPhase is the minor classification for the lifecycle phase violations.
	MnrPhase errors.Minor
	// ClassSessionPhase is the classification for operations called in a
	// phase that does not allow them.
	ClassSessionPhase errors.Class

	// MnrSetup is the minor classification for the setup input issues.
	MnrSetup errors.Minor
	// ClassSetupValue is the classification for invalid setup and config values.
	ClassSetupValue errors.Class

	// MnrRun is the minor classification for the run control issues.
	MnrRun errors.Minor
	// ClassInvalidDuration is the classification for negative run durations.
	ClassInvalidDuration errors.Class

	// MnrNetwork is the minor classification for the network build issues.
	MnrNetwork errors.Minor
	// ClassUnknownParameter is the classification for parameters unknown to
	// the cell type descriptor.
	ClassUnknownParameter errors.Class
	// ClassDelayInconsistent is the classification for realized connection
	// delays differing from the requested delay by the timestep or more.
	ClassDelayInconsistent errors.Class

	// MnrRecord is the minor classification for the recording issues.
	MnrRecord errors.Minor
	// ClassRecordInput is the classification for invalid record requests.
	ClassRecordInput errors.Class
	// ClassTempDir is the classification for session tempdir failures.
	ClassTempDir errors.Class
)

func init() {
	MjrSession = errors.MustNewMajor()

	MnrPhase = errors.MustNewMinor(MjrSession)
	ClassSessionPhase = errors.MustNewClassWIndex(MjrSession, MnrPhase)

	MnrSetup = errors.MustNewMinor(MjrSession)
	ClassSetupValue = errors.MustNewClassWIndex(MjrSession, MnrSetup)

	MnrRun = errors.MustNewMinor(MjrSession)
	ClassInvalidDuration = errors.MustNewClassWIndex(MjrSession, MnrRun)

	MnrNetwork = errors.MustNewMinor(MjrSession)
	ClassUnknownParameter = errors.MustNewClassWIndex(MjrSession, MnrNetwork)
	ClassDelayInconsistent = errors.MustNewClassWIndex(MjrSession, MnrNetwork)

	MnrRecord = errors.MustNewMinor(MjrSession)
	ClassRecordInput = errors.MustNewClassWIndex(MjrSession, MnrRecord)
	ClassTempDir = errors.MustNewClassWIndex(MjrSession, MnrRecord)
}
