// Package simulator defines the simulation engine abstraction with its
// factories. An engine is a structure that gives an access with well known
// interfaces to one spiking network simulator kernel - its model registry,
// node and connection builders and the simulation clock.
// A factory is the structure with unique driver name that is responsible
// of creating new engine instances of given type.
// The package is used to register and get engine factories.
package simulator
