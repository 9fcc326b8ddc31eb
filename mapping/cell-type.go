package mapping

import (
	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/namer"
	"github.com/gospike/nest/simulator"
)

// CellType is the interface implemented by the model types consumable by
// the population layer.
type CellType interface {
	// ModelName gets the native model name.
	ModelName() string
	// Descriptor gets the simulator neutral model description.
	Descriptor() *Descriptor
	// NativeModel gets the native model name used for given spike
	// precision mode.
	NativeModel(precision simulator.SpikePrecision) string
	// ReceptorPort gets the engine port of given receptor type 'name'.
	ReceptorPort(name string) (int, error)
}

// compile time check for the NativeType interfaces.
var _ CellType = &NativeType{}

// NativeType is the generic CellType implementation parameterized by a
// reflected model descriptor. One implementation serves every native model -
// no per model types are generated.
type NativeType struct {
	engine     simulator.Engine
	descriptor *Descriptor
}

// NewNativeType reflects given 'model' from the engine registry and adapts
// its descriptor to the CellType interface.
func NewNativeType(e simulator.Engine, model string) (*NativeType, error) {
	return newNativeType(e, model, namer.NamingSnake)
}

func newNativeType(e simulator.Engine, model string, namerFunc namer.Namer) (*NativeType, error) {
	d, err := describe(e, model, namerFunc)
	if err != nil {
		return nil, err
	}
	return &NativeType{engine: e, descriptor: d}, nil
}

// ModelName gets the native model name.
func (n *NativeType) ModelName() string {
	return n.descriptor.Name
}

// Descriptor gets the reflected model descriptor.
func (n *NativeType) Descriptor() *Descriptor {
	return n.descriptor
}

// NativeModel gets the native model name for given spike precision mode.
// Models reflected from the engine registry keep one name for both
// timing modes.
func (n *NativeType) NativeModel(precision simulator.SpikePrecision) string {
	return n.descriptor.Name
}

// ReceptorPort gets the engine port of given receptor type 'name' from the
// live engine registry.
func (n *NativeType) ReceptorPort(name string) (int, error) {
	defaults, err := n.engine.GetDefaults(n.descriptor.Name)
	if err != nil {
		return 0, err
	}

	ports := receptorPorts(defaults["receptor_types"])
	port, ok := ports[name]
	if !ok {
		return 0, errors.Newf(ClassReceptorNotFound, "receptor type: '%s' not defined for the model: '%s'", name, n.descriptor.Name)
	}
	return port, nil
}
