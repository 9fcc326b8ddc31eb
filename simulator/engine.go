package simulator

import (
	"context"
)

// Engine is the interface that defines the native surface of one spiking
// network simulator kernel. The session and reflection layers treat it as
// an opaque collaborator - all engine failures are surfaced unmodified.
type Engine interface {
	Namer
	ModelRegistry
	KernelController
	NetworkBuilder
	Closer
}

// Namer is the interface that defines the engine instance name.
type Namer interface {
	EngineName() string
}

// ModelRegistry is the interface for the engine model introspection
// and manipulation calls.
type ModelRegistry interface {
	// Models lists the names of the models known to the engine.
	Models() []string
	// GetDefaults gets the full default status of given 'model'.
	GetDefaults(model string) (Params, error)
	// SetDefaults permanently changes the defaults of given 'model'.
	SetDefaults(model string, params Params) error
}

// KernelController is the interface for the engine global configuration
// and clock calls.
type KernelController interface {
	// SetKernelStatus applies given 'params' to the engine kernel.
	SetKernelStatus(params Params) error
	// Simulate advances the simulation time by 'duration' milliseconds.
	// The call blocks until the requested duration is simulated.
	Simulate(duration float64) error
	// ResetKernel resets the engine kernel to its startup state.
	ResetKernel() error
	// Rank gets the identifier of the calling compute process.
	Rank() int
	// NumProcesses gets the number of distributed compute processes.
	NumProcesses() int
}

// NetworkBuilder is the interface for the engine node and connection calls.
type NetworkBuilder interface {
	// Create creates 'n' instances of given 'model' applying
	// optional 'params'.
	Create(model string, n int, params Params) (NodeIDs, error)
	// Connect connects the 'pre' and 'post' node collections with given
	// connectivity rule and synapse parameters.
	Connect(pre, post NodeIDs, conn *ConnSpec, syn Params) error
	// GetConnections lists the connection handles between the 'pre' and
	// 'post' node collections, restricted to 'synapseModel' when non empty.
	GetConnections(pre, post NodeIDs, synapseModel string) ([]Connection, error)
	// ConnectionValues gets the numeric attribute 'key' of given connections.
	ConnectionValues(conns []Connection, key string) ([]float64, error)
	// SetConnectionValues applies 'params' to every given connection.
	SetConnectionValues(conns []Connection, params Params) error
}

// Closer is the interface used to release the engine resources.
type Closer interface {
	Close(ctx context.Context) error
}
