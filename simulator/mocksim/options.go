package mocksim

import (
	"github.com/gospike/nest/simulator"
)

// Options are the settings for the OnXXX functions.
type Options struct {
	Permanent bool
	Count     int
}

// Option is function that changes options.
type Option func(o *Options)

// Permanent is a permanent option
func Permanent() Option {
	return func(o *Options) {
		o.Permanent = true
	}
}

// Count sets the number of executions of given function.
func Count(count int) Option {
	return func(o *Options) {
		o.Count = count
	}
}

// SimulateExecuter is an executor of the simulate functions.
type SimulateExecuter struct {
	Options     *Options
	ExecuteFunc SimulateFunc
}

// SimulateFunc is a simulate execution function.
type SimulateFunc func(duration float64) error

// DefaultsExecuter is an executor of the model defaults functions.
type DefaultsExecuter struct {
	Options     *Options
	ExecuteFunc DefaultsFunc
}

// DefaultsFunc is a model defaults execution function.
type DefaultsFunc func(model string) (simulator.Params, error)

// StatusExecuter is an executor of the kernel status functions.
type StatusExecuter struct {
	Options     *Options
	ExecuteFunc StatusFunc
}

// StatusFunc is a kernel status execution function.
type StatusFunc func(params simulator.Params) error

// ValuesExecuter is an executor of the connection values functions.
type ValuesExecuter struct {
	Options     *Options
	ExecuteFunc ValuesFunc
}

// ValuesFunc is a connection values execution function.
type ValuesFunc func(conns []simulator.Connection, key string) ([]float64, error)
