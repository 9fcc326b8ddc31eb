package mocksim

import (
	"github.com/gospike/nest/config"
	"github.com/gospike/nest/simulator"
)

// DriverName is the driver name of the mock engine factory.
const DriverName = "mock"

func init() {
	simulator.RegisterFactory(&Factory{})
}

var _ simulator.Factory = &Factory{}

// Factory is the simulator.Factory mock implementation.
type Factory struct{}

// DriverName implements simulator.Factory interface.
func (f *Factory) DriverName() string {
	return DriverName
}

// New implements simulator.Factory interface. When the config points at a
// model table file the models are loaded from it, otherwise the engine
// serves the builtin table.
func (f *Factory) New(cfg *config.Engine) (simulator.Engine, error) {
	models := Builtin()
	if cfg != nil && cfg.ModelTables != "" {
		loaded, err := LoadModels(cfg.ModelTables)
		if err != nil {
			return nil, err
		}
		models = loaded
	}
	return New(DriverName, models...), nil
}
