package simulator

import (
	"github.com/gospike/nest/config"
)

// Factory is the interface used for creating the engines.
type Factory interface {
	// DriverName gets the driver name for given factory.
	DriverName() string
	// New creates new Engine instance for given 'cfg'.
	New(cfg *config.Engine) (Engine, error)
}
