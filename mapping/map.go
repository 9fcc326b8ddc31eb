package mapping

import (
	"github.com/gospike/nest/log"
	"github.com/gospike/nest/namer"
	"github.com/gospike/nest/simulator"
)

// Map caches the reflected cell types for one engine instance. The cache
// assumes the single writer session semantics - it is not safe for
// concurrent use.
type Map struct {
	engine    simulator.Engine
	namerFunc namer.Namer
	cellTypes map[string]*NativeType
}

// NewMap creates the cell type cache for given engine 'e' labeling the
// descriptor collections with provided naming convention.
func NewMap(e simulator.Engine, namerFunc namer.Namer) *Map {
	if namerFunc == nil {
		namerFunc = namer.NamingSnake
	}
	return &Map{
		engine:    e,
		namerFunc: namerFunc,
		cellTypes: map[string]*NativeType{},
	}
}

// CellType gets the cell type for given 'model', reflecting it from the
// engine registry on the first use.
func (m *Map) CellType(model string) (*NativeType, error) {
	if cellType, ok := m.cellTypes[model]; ok {
		return cellType, nil
	}

	cellType, err := newNativeType(m.engine, model, m.namerFunc)
	if err != nil {
		return nil, err
	}
	m.cellTypes[model] = cellType

	log.Debug2f("Model: '%s' mapped successfully.", model)
	return cellType, nil
}

// Descriptor gets the descriptor of given 'model', reflecting it on the
// first use.
func (m *Map) Descriptor(model string) (*Descriptor, error) {
	cellType, err := m.CellType(model)
	if err != nil {
		return nil, err
	}
	return cellType.Descriptor(), nil
}

// Invalidate drops the cached cell type of given 'model'. The next CellType
// call reflects the model registry state again.
func (m *Map) Invalidate(model string) {
	delete(m.cellTypes, model)
}

// Reload drops the cached state of given 'model' and reflects it again.
func (m *Map) Reload(model string) (*NativeType, error) {
	m.Invalidate(model)
	return m.CellType(model)
}

// Models lists the model names known to the underlying engine.
func (m *Map) Models() []string {
	return m.engine.Models()
}
