package simulator

import (
	"github.com/gospike/nest/errors"
)

var (
	// MjrSimulator is the major error classification for the engine issues.
	MjrSimulator errors.Major

	// MnrModel is the minor classification for the engine model registry issues.
	MnrModel errors.Minor
	// ClassModelNotFound is the classification for models unknown to the engine.
	ClassModelNotFound errors.Class
	// ClassInvalidParam is the classification for invalid model parameter input.
	ClassInvalidParam errors.Class
	// ClassModelTable is the classification for invalid model table input.
	ClassModelTable errors.Class

	// MnrKernel is the minor classification for the engine kernel issues.
	MnrKernel errors.Minor
	// ClassKernelStatus is the classification for failed kernel status changes.
	ClassKernelStatus errors.Class
	// ClassSimulationFailed is the classification for failed simulation runs.
	ClassSimulationFailed errors.Class

	// MnrNetwork is the minor classification for the node and connection issues.
	MnrNetwork errors.Minor
	// ClassNodeNotFound is the classification for unknown node identifiers.
	ClassNodeNotFound errors.Class
	// ClassConnectionFailed is the classification for failed connection calls.
	ClassConnectionFailed errors.Class

	// MnrFactory is the minor classification for the engine factory issues.
	MnrFactory errors.Minor
	// ClassFactoryAlreadyRegistered is the classification for duplicated factory registration.
	ClassFactoryAlreadyRegistered errors.Class
	// ClassFactoryNotFound is the classification for unregistered factory access.
	ClassFactoryNotFound errors.Class

	// ClassEngineClosed is the classification for operations on a closed engine.
	ClassEngineClosed errors.Class
)

func init() {
	MjrSimulator = errors.MustNewMajor()

	MnrModel = errors.MustNewMinor(MjrSimulator)
	ClassModelNotFound = errors.MustNewClassWIndex(MjrSimulator, MnrModel)
	ClassInvalidParam = errors.MustNewClassWIndex(MjrSimulator, MnrModel)
	ClassModelTable = errors.MustNewClassWIndex(MjrSimulator, MnrModel)

	MnrKernel = errors.MustNewMinor(MjrSimulator)
	ClassKernelStatus = errors.MustNewClassWIndex(MjrSimulator, MnrKernel)
	ClassSimulationFailed = errors.MustNewClassWIndex(MjrSimulator, MnrKernel)

	MnrNetwork = errors.MustNewMinor(MjrSimulator)
	ClassNodeNotFound = errors.MustNewClassWIndex(MjrSimulator, MnrNetwork)
	ClassConnectionFailed = errors.MustNewClassWIndex(MjrSimulator, MnrNetwork)

	MnrFactory = errors.MustNewMinor(MjrSimulator)
	ClassFactoryAlreadyRegistered = errors.MustNewClassWIndex(MjrSimulator, MnrFactory)
	ClassFactoryNotFound = errors.MustNewClassWIndex(MjrSimulator, MnrFactory)

	ClassEngineClosed = errors.MustNewMajorClass(MjrSimulator)
}
