package simulator

import (
	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/log"
)

var ctr = newContainer()

// RegisterFactory registers provided Factory within the container.
func RegisterFactory(f Factory) error {
	log.Infof("Registering engine factory: '%s'", f.DriverName())
	return ctr.registerFactory(f)
}

// GetFactory gets the factory with given driver 'name'.
func GetFactory(name string) Factory {
	f, ok := ctr.factories[name]
	if ok {
		return f
	}
	return nil
}

// container maps the registered engine factories by their driver names.
type container struct {
	factories map[string]Factory
}

func newContainer() *container {
	c := &container{
		factories: map[string]Factory{},
	}

	return c
}

func (c *container) registerFactory(f Factory) error {
	driverName := f.DriverName()

	_, ok := c.factories[driverName]
	if ok {
		log.Debugf("Engine factory already registered: %s", driverName)
		return errors.NewDetf(ClassFactoryAlreadyRegistered, "factory: '%s' already registered", driverName)
	}

	c.factories[driverName] = f

	log.Debugf("Engine factory: '%s' registered successfully.", driverName)
	return nil
}
