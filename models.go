package nest

import (
	"github.com/gospike/nest/mapping"
)

// CellType gets the cell type of given 'model', reflecting it from the
// engine registry on the first use.
func (s *Session) CellType(model string) (*mapping.NativeType, error) {
	return s.models.CellType(model)
}

// Describe gets the descriptor of given 'model' in the simulator neutral
// vocabulary. Engine registry failures propagate unmodified.
func (s *Session) Describe(model string) (*mapping.Descriptor, error) {
	return s.models.Descriptor(model)
}

// ReceptorTypes lists the ordered receptor type names of given 'model'.
// Engine registry failures propagate unmodified.
func (s *Session) ReceptorTypes(model string) ([]string, error) {
	return mapping.ReceptorTypes(s.engine, model)
}

// Recordables lists the recordable quantity names of given 'model'. The
// introspection is best effort - engine failures map to an empty list.
func (s *Session) Recordables(model string) []string {
	return mapping.Recordables(s.engine, model)
}

// Models lists the model names known to the engine.
func (s *Session) Models() []string {
	return s.models.Models()
}
