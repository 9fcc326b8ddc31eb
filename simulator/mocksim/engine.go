package mocksim

import (
	"context"
	"math"
	"sort"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/simulator"
)

var _ simulator.Engine = &Engine{}

// kernelStatus is the mutable global state of the mock kernel.
type kernelStatus struct {
	resolution float64
	minDelay   float64
	maxDelay   float64
	rngSeed    int64
	threads    int
	offGrid    bool
}

// startupKernel gets the kernel state the engine boots with.
func startupKernel() kernelStatus {
	return kernelStatus{
		resolution: 0.1,
		minDelay:   0.1,
		maxDelay:   10.0,
		rngSeed:    1,
		threads:    1,
	}
}

// node is a single created network element.
type node struct {
	model  string
	params simulator.Params
}

// connection binds the connection handle with its numeric attributes.
type connection struct {
	handle simulator.Connection
	values map[string]float64
}

// Engine is a mock engine implementation.
type Engine struct {
	RankValue      int
	ProcessesValue int

	Simulators []*SimulateExecuter
	Defaulters []*DefaultsExecuter
	Statusers  []*StatusExecuter
	Valuers    []*ValuesExecuter

	name     string
	models   map[string]*Model
	kernel   kernelStatus
	now      float64
	nextNode simulator.NodeID
	nodes    map[simulator.NodeID]*node
	conns    []*connection
	closed   bool
}

// New creates the mock engine named 'name' serving given model table.
func New(name string, models ...*Model) *Engine {
	e := &Engine{
		name:     name,
		models:   make(map[string]*Model, len(models)),
		kernel:   startupKernel(),
		nextNode: 1,
		nodes:    map[simulator.NodeID]*node{},
	}
	for _, model := range models {
		e.models[model.Name] = model
	}
	return e
}

// OnSimulate adds the simulate executor.
func (e *Engine) OnSimulate(simulateFunc SimulateFunc, options ...Option) {
	o := &Options{}
	for _, option := range options {
		option(o)
	}
	e.Simulators = append(e.Simulators, &SimulateExecuter{Options: o, ExecuteFunc: simulateFunc})
}

// OnGetDefaults adds the model defaults executor.
func (e *Engine) OnGetDefaults(defaultsFunc DefaultsFunc, options ...Option) {
	o := &Options{}
	for _, option := range options {
		option(o)
	}
	e.Defaulters = append(e.Defaulters, &DefaultsExecuter{Options: o, ExecuteFunc: defaultsFunc})
}

// OnSetKernelStatus adds the kernel status executor.
func (e *Engine) OnSetKernelStatus(statusFunc StatusFunc, options ...Option) {
	o := &Options{}
	for _, option := range options {
		option(o)
	}
	e.Statusers = append(e.Statusers, &StatusExecuter{Options: o, ExecuteFunc: statusFunc})
}

// OnConnectionValues adds the connection values executor.
func (e *Engine) OnConnectionValues(valuesFunc ValuesFunc, options ...Option) {
	o := &Options{}
	for _, option := range options {
		option(o)
	}
	e.Valuers = append(e.Valuers, &ValuesExecuter{Options: o, ExecuteFunc: valuesFunc})
}

// EngineName implements simulator.Namer interface.
func (e *Engine) EngineName() string {
	return e.name
}

// Models implements simulator.ModelRegistry interface.
func (e *Engine) Models() []string {
	names := make([]string, 0, len(e.models))
	for name := range e.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetDefaults implements simulator.ModelRegistry interface.
func (e *Engine) GetDefaults(model string) (simulator.Params, error) {
	if e.closed {
		return nil, e.closedError()
	}
	if len(e.Defaulters) > 0 {
		defaulter := e.Defaulters[0]
		if defaulter.Options.Count > 0 {
			defaulter.Options.Count--
		}
		if defaulter.Options.Count == 0 && !defaulter.Options.Permanent {
			e.Defaulters = e.Defaulters[1:]
		}
		return defaulter.ExecuteFunc(model)
	}
	m, ok := e.models[model]
	if !ok {
		return nil, errors.NewDetf(simulator.ClassModelNotFound, "model: '%s' is not known to the engine", model)
	}
	status := simulator.Params(m.copyDefaults())
	if m.Recordables != nil {
		status["recordables"] = append([]string{}, m.Recordables...)
	}
	if m.ReceptorTypes != nil {
		receptors := make(map[string]int, len(m.ReceptorTypes))
		for name, port := range m.ReceptorTypes {
			receptors[name] = port
		}
		status["receptor_types"] = receptors
	}
	status["element_type"] = m.ElementType
	return status, nil
}

// SetDefaults implements simulator.ModelRegistry interface.
func (e *Engine) SetDefaults(model string, params simulator.Params) error {
	if e.closed {
		return e.closedError()
	}
	m, ok := e.models[model]
	if !ok {
		return errors.NewDetf(simulator.ClassModelNotFound, "model: '%s' is not known to the engine", model)
	}
	for key, value := range params {
		switch key {
		case "recordables", "receptor_types", "element_type":
			return errors.NewDetf(simulator.ClassInvalidParam, "model entry: '%s' is read only", key)
		}
		m.Defaults[key] = value
	}
	return nil
}

// SetKernelStatus implements simulator.KernelController interface.
func (e *Engine) SetKernelStatus(params simulator.Params) error {
	if e.closed {
		return e.closedError()
	}
	if len(e.Statusers) > 0 {
		statuser := e.Statusers[0]
		if statuser.Options.Count > 0 {
			statuser.Options.Count--
		}
		if statuser.Options.Count == 0 && !statuser.Options.Permanent {
			e.Statusers = e.Statusers[1:]
		}
		return statuser.ExecuteFunc(params)
	}
	for key, value := range params {
		switch key {
		case simulator.KeyResolution:
			f, ok := floatValue(value)
			if !ok || f <= 0 {
				return errors.NewDetf(simulator.ClassKernelStatus, "invalid kernel resolution: '%v'", value)
			}
			e.kernel.resolution = f
		case simulator.KeyMinDelay:
			f, ok := floatValue(value)
			if !ok || f <= 0 {
				return errors.NewDetf(simulator.ClassKernelStatus, "invalid kernel min_delay: '%v'", value)
			}
			e.kernel.minDelay = f
		case simulator.KeyMaxDelay:
			f, ok := floatValue(value)
			if !ok || f <= 0 {
				return errors.NewDetf(simulator.ClassKernelStatus, "invalid kernel max_delay: '%v'", value)
			}
			e.kernel.maxDelay = f
		case simulator.KeyRNGSeed:
			n, ok := intValue(value)
			if !ok || n < 0 {
				return errors.NewDetf(simulator.ClassKernelStatus, "invalid kernel rng_seed: '%v'", value)
			}
			e.kernel.rngSeed = n
		case simulator.KeyThreads:
			n, ok := intValue(value)
			if !ok || n < 1 {
				return errors.NewDetf(simulator.ClassKernelStatus, "invalid kernel thread number: '%v'", value)
			}
			e.kernel.threads = int(n)
		case simulator.KeyOffGridSpiking:
			b, ok := value.(bool)
			if !ok {
				return errors.NewDetf(simulator.ClassKernelStatus, "invalid kernel off grid flag: '%v'", value)
			}
			e.kernel.offGrid = b
		default:
			return errors.NewDetf(simulator.ClassKernelStatus, "unknown kernel status entry: '%s'", key)
		}
	}
	return nil
}

// Simulate implements simulator.KernelController interface.
func (e *Engine) Simulate(duration float64) error {
	if e.closed {
		return e.closedError()
	}
	if len(e.Simulators) > 0 {
		simulater := e.Simulators[0]
		if simulater.Options.Count > 0 {
			simulater.Options.Count--
		}
		if simulater.Options.Count == 0 && !simulater.Options.Permanent {
			e.Simulators = e.Simulators[1:]
		}
		return simulater.ExecuteFunc(duration)
	}
	if duration < 0 {
		return errors.NewDetf(simulator.ClassSimulationFailed, "cannot simulate negative duration: '%v'", duration)
	}
	e.now += duration
	return nil
}

// ResetKernel implements simulator.KernelController interface.
func (e *Engine) ResetKernel() error {
	if e.closed {
		return e.closedError()
	}
	e.kernel = startupKernel()
	e.now = 0
	e.nextNode = 1
	e.nodes = map[simulator.NodeID]*node{}
	e.conns = nil
	return nil
}

// Rank implements simulator.KernelController interface.
func (e *Engine) Rank() int {
	return e.RankValue
}

// NumProcesses implements simulator.KernelController interface.
func (e *Engine) NumProcesses() int {
	if e.ProcessesValue > 0 {
		return e.ProcessesValue
	}
	return 1
}

// Now gets the current kernel simulation time in milliseconds.
func (e *Engine) Now() float64 {
	return e.now
}

// Kernel gets the kernel status entries in the engine parameter form.
func (e *Engine) Kernel() simulator.Params {
	return simulator.Params{
		simulator.KeyResolution:     e.kernel.resolution,
		simulator.KeyMinDelay:       e.kernel.minDelay,
		simulator.KeyMaxDelay:       e.kernel.maxDelay,
		simulator.KeyRNGSeed:        e.kernel.rngSeed,
		simulator.KeyThreads:        e.kernel.threads,
		simulator.KeyOffGridSpiking: e.kernel.offGrid,
	}
}

// Create implements simulator.NetworkBuilder interface.
func (e *Engine) Create(model string, n int, params simulator.Params) (simulator.NodeIDs, error) {
	if e.closed {
		return nil, e.closedError()
	}
	m, ok := e.models[model]
	if !ok {
		return nil, errors.NewDetf(simulator.ClassModelNotFound, "model: '%s' is not known to the engine", model)
	}
	if m.ElementType == string(simulator.ElementSynapse) {
		return nil, errors.NewDetf(simulator.ClassInvalidParam, "cannot create nodes of the synapse model: '%s'", model)
	}
	if n <= 0 {
		return nil, errors.NewDetf(simulator.ClassInvalidParam, "cannot create: '%d' instances of model: '%s'", n, model)
	}
	ids := make(simulator.NodeIDs, n)
	for i := range ids {
		ids[i] = e.nextNode
		e.nodes[e.nextNode] = &node{model: model, params: params.Copy()}
		e.nextNode++
	}
	return ids, nil
}

// Connect implements simulator.NetworkBuilder interface.
func (e *Engine) Connect(pre, post simulator.NodeIDs, conn *simulator.ConnSpec, syn simulator.Params) error {
	if e.closed {
		return e.closedError()
	}
	if len(pre) == 0 || len(post) == 0 {
		return errors.NewDet(simulator.ClassConnectionFailed, "cannot connect empty node collections")
	}
	if err := e.checkNodes(pre); err != nil {
		return err
	}
	if err := e.checkNodes(post); err != nil {
		return err
	}
	synModel, weight, delay, port, err := e.synapseValues(syn)
	if err != nil {
		return err
	}
	rule := "all_to_all"
	if conn != nil && conn.Rule != "" {
		rule = conn.Rule
	}
	switch rule {
	case "one_to_one":
		if len(pre) != len(post) {
			return errors.NewDetf(simulator.ClassConnectionFailed,
				"one_to_one rule requires node collections of equal size, got: '%d' and '%d'", len(pre), len(post))
		}
		for i := range pre {
			e.addConnection(pre[i], post[i], synModel, port, weight, delay)
		}
	case "all_to_all":
		for _, source := range pre {
			for _, target := range post {
				e.addConnection(source, target, synModel, port, weight, delay)
			}
		}
	default:
		return errors.NewDetf(simulator.ClassConnectionFailed, "unknown connection rule: '%s'", rule)
	}
	return nil
}

// GetConnections implements simulator.NetworkBuilder interface.
func (e *Engine) GetConnections(pre, post simulator.NodeIDs, synapseModel string) ([]simulator.Connection, error) {
	if e.closed {
		return nil, e.closedError()
	}
	var handles []simulator.Connection
	for _, c := range e.conns {
		if len(pre) > 0 && !containsNode(pre, c.handle.Source) {
			continue
		}
		if len(post) > 0 && !containsNode(post, c.handle.Target) {
			continue
		}
		if synapseModel != "" && c.handle.SynapseModel != synapseModel {
			continue
		}
		handles = append(handles, c.handle)
	}
	return handles, nil
}

// ConnectionValues implements simulator.NetworkBuilder interface.
func (e *Engine) ConnectionValues(conns []simulator.Connection, key string) ([]float64, error) {
	if e.closed {
		return nil, e.closedError()
	}
	if len(e.Valuers) > 0 {
		valuer := e.Valuers[0]
		if valuer.Options.Count > 0 {
			valuer.Options.Count--
		}
		if valuer.Options.Count == 0 && !valuer.Options.Permanent {
			e.Valuers = e.Valuers[1:]
		}
		return valuer.ExecuteFunc(conns, key)
	}
	values := make([]float64, len(conns))
	for i, handle := range conns {
		c := e.findConnection(handle)
		if c == nil {
			return nil, errors.NewDetf(simulator.ClassConnectionFailed,
				"connection: '%d' -> '%d' is not known to the engine", handle.Source, handle.Target)
		}
		value, ok := c.values[key]
		if !ok {
			return nil, errors.NewDetf(simulator.ClassInvalidParam, "unknown connection attribute: '%s'", key)
		}
		values[i] = value
	}
	return values, nil
}

// SetConnectionValues implements simulator.NetworkBuilder interface.
func (e *Engine) SetConnectionValues(conns []simulator.Connection, params simulator.Params) error {
	if e.closed {
		return e.closedError()
	}
	for _, handle := range conns {
		c := e.findConnection(handle)
		if c == nil {
			return errors.NewDetf(simulator.ClassConnectionFailed,
				"connection: '%d' -> '%d' is not known to the engine", handle.Source, handle.Target)
		}
		for key, value := range params {
			f, ok := floatValue(value)
			if !ok {
				return errors.NewDetf(simulator.ClassInvalidParam,
					"connection attribute: '%s' with non numeric value type: '%T'", key, value)
			}
			if key == "delay" {
				f = quantize(f, e.kernel.resolution)
			}
			c.values[key] = f
		}
	}
	return nil
}

// Close implements simulator.Closer interface.
func (e *Engine) Close(ctx context.Context) error {
	if e.closed {
		return e.closedError()
	}
	e.closed = true
	return nil
}

func (e *Engine) closedError() error {
	return errors.NewDetf(simulator.ClassEngineClosed, "engine: '%s' is closed", e.name)
}

func (e *Engine) checkNodes(ids simulator.NodeIDs) error {
	for _, id := range ids {
		if _, ok := e.nodes[id]; !ok {
			return errors.NewDetf(simulator.ClassNodeNotFound, "node: '%d' is not known to the engine", id)
		}
	}
	return nil
}

// synapseValues extracts the synapse attributes from the Connect input,
// falling back to the kernel defaults. The delay is quantized to the
// kernel resolution grid the way the native kernel rounds it.
func (e *Engine) synapseValues(syn simulator.Params) (model string, weight, delay float64, port int, err error) {
	model, weight, delay = "static_synapse", 1.0, e.kernel.minDelay
	if value, ok := syn["synapse_model"]; ok {
		name, ok := value.(string)
		if !ok {
			return "", 0, 0, 0, errors.NewDetf(simulator.ClassInvalidParam, "synapse_model with non string value type: '%T'", value)
		}
		model = name
	}
	m, ok := e.models[model]
	if !ok {
		return "", 0, 0, 0, errors.NewDetf(simulator.ClassModelNotFound, "model: '%s' is not known to the engine", model)
	}
	if m.ElementType != string(simulator.ElementSynapse) {
		return "", 0, 0, 0, errors.NewDetf(simulator.ClassInvalidParam, "model: '%s' is not a synapse model", model)
	}
	if value, ok := syn["weight"]; ok {
		weight, ok = floatValue(value)
		if !ok {
			return "", 0, 0, 0, errors.NewDetf(simulator.ClassInvalidParam, "synapse weight with non numeric value type: '%T'", value)
		}
	}
	if value, ok := syn["delay"]; ok {
		delay, ok = floatValue(value)
		if !ok {
			return "", 0, 0, 0, errors.NewDetf(simulator.ClassInvalidParam, "synapse delay with non numeric value type: '%T'", value)
		}
	}
	delay = quantize(delay, e.kernel.resolution)
	if delay < e.kernel.minDelay || delay > e.kernel.maxDelay {
		return "", 0, 0, 0, errors.NewDetf(simulator.ClassConnectionFailed,
			"delay: '%v' is outside of the kernel bounds ['%v', '%v']", delay, e.kernel.minDelay, e.kernel.maxDelay)
	}
	if value, ok := syn["receptor_type"]; ok {
		n, ok := intValue(value)
		if !ok {
			return "", 0, 0, 0, errors.NewDetf(simulator.ClassInvalidParam, "receptor_type with non integer value type: '%T'", value)
		}
		port = int(n)
	}
	return model, weight, delay, port, nil
}

func (e *Engine) addConnection(source, target simulator.NodeID, synModel string, port int, weight, delay float64) {
	e.conns = append(e.conns, &connection{
		handle: simulator.Connection{Source: source, Target: target, SynapseModel: synModel, Port: port},
		values: map[string]float64{"weight": weight, "delay": delay},
	})
}

func (e *Engine) findConnection(handle simulator.Connection) *connection {
	for _, c := range e.conns {
		if c.handle == handle {
			return c
		}
	}
	return nil
}

func containsNode(ids simulator.NodeIDs, id simulator.NodeID) bool {
	for _, i := range ids {
		if i == id {
			return true
		}
	}
	return false
}

func floatValue(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func intValue(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	}
	return 0, false
}

// quantize rounds 'value' to the closest multiple of 'resolution'.
func quantize(value, resolution float64) float64 {
	if resolution <= 0 {
		return value
	}
	return math.Round(value/resolution) * resolution
}
