package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/gospike/nest/recording"
)

var _ recording.Handler = &Handler{}

// Handler is the structure that implements recording.Handler
type Handler struct {
	mock.Mock
}

// Extensions lists the mocked handler extensions
// Implements recording.Handler method
func (h *Handler) Extensions() []string {
	args := h.Called()
	return args.Get(0).([]string)
}

// Open opens the mocked output
// Implements recording.Handler method
func (h *Handler) Open(path string, precision int) (recording.Output, error) {
	args := h.Called(path, precision)
	if out := args.Get(0); out != nil {
		return out.(recording.Output), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ recording.Output = &Output{}

// Output is the structure that implements recording.Output
type Output struct {
	mock.Mock
}

// Write persists given data block
// Implements recording.Output method
func (o *Output) Write(block *recording.Block) error {
	args := o.Called(block)
	return args.Error(0)
}

// Close flushes and releases the output
// Implements recording.Output method
func (o *Output) Close() error {
	args := o.Called()
	return args.Error(0)
}
