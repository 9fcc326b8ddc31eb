package recording

import (
	"path/filepath"
	"strings"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/log"
)

// Output is the open destination of the recorded data blocks.
type Output interface {
	// Write persists given data 'block'.
	Write(block *Block) error
	// Close flushes and releases the output.
	Close() error
}

// Handler opens the recorded data outputs for one data format.
type Handler interface {
	// Extensions lists the file extensions claimed by the handler.
	Extensions() []string
	// Open opens the output file at 'path', writing the numeric values
	// with 'precision' decimal places.
	Open(path string, precision int) (Output, error)
}

var ctr = newContainer()

// RegisterHandler registers provided output 'handler' for its extensions.
func RegisterHandler(handler Handler) error {
	return ctr.registerHandler(handler)
}

// Get gets the output handler claiming the extension of given 'path'.
func Get(path string) (Handler, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return nil, errors.Newf(ClassHandlerNotFound, "destination: '%s' has no format extension", path)
	}
	handler, ok := ctr.handlers[ext]
	if !ok {
		return nil, errors.Newf(ClassHandlerNotFound, "no output handler registered for the extension: '%s'", ext)
	}
	return handler, nil
}

// container maps the registered output handlers by their extensions.
type container struct {
	handlers map[string]Handler
}

func newContainer() *container {
	return &container{
		handlers: map[string]Handler{},
	}
}

func (c *container) registerHandler(handler Handler) error {
	for _, ext := range handler.Extensions() {
		ext = strings.ToLower(ext)
		if _, ok := c.handlers[ext]; ok {
			return errors.Newf(ClassHandlerAlreadyRegistered, "output handler for the extension: '%s' already registered", ext)
		}
		c.handlers[ext] = handler

		log.Debugf("Output handler for the extension: '%s' registered successfully.", ext)
	}
	return nil
}
