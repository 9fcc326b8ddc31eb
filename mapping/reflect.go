package mapping

import (
	"sort"
	"strings"

	"github.com/gospike/nest/errors"
	"github.com/gospike/nest/log"
	"github.com/gospike/nest/namer"
	"github.com/gospike/nest/simulator"
)

// Describe queries the engine model registry for given 'model' and
// synthesizes its descriptor. Engine registry failures - an unknown model
// name in particular - propagate unmodified.
//
// The engine defaults are split in two: entries classified by the engine as
// recordable state route to the initial value map, the remaining entries
// route to the parameter map after the bookkeeping denylist and the value
// type filter. Unsupported value types are dropped with a warning, never
// coerced.
func Describe(e simulator.Engine, model string) (*Descriptor, error) {
	return describe(e, model, namer.NamingSnake)
}

func describe(e simulator.Engine, model string, namerFunc namer.Namer) (*Descriptor, error) {
	if model == "" {
		return nil, errors.New(ClassInvalidModelName, "provided empty model name")
	}

	defaults, err := e.GetDefaults(model)
	if err != nil {
		return nil, err
	}

	reported := recordableNames(defaults)
	recordSet := make(map[string]struct{}, len(reported))
	for _, name := range reported {
		recordSet[name] = struct{}{}
	}

	parameters := simulator.Params{}
	initialValues := simulator.Params{}
	for name, value := range defaults {
		if _, ok := recordSet[name]; ok {
			initialValues[name] = value
			continue
		}
		if _, ok := engineInternalNames[name]; ok {
			continue
		}
		normalized, ok := normalizeValue(value)
		if !ok {
			log.Warningf("Ignoring parameter '%s' of model '%s' with unsupported type: '%T'", name, model, value)
			continue
		}
		parameters[name] = normalized
	}

	receptors := receptorNames(defaults)
	recordables := append(reported, "spikes")

	units := make(map[string]string, len(recordables))
	conductanceBased := false
	for _, name := range recordables {
		unit, ok := unitsMap[name]
		if !ok {
			unit = UnitUnknown
		}
		units[name] = unit

		if strings.HasPrefix(name, "g") {
			conductanceBased = true
		}
	}

	_, injectable := initialValues["V_m"]
	elementType := elementTypeOf(defaults)
	isStimulator := elementType == simulator.ElementStimulator

	d := &Descriptor{
		Name:              model,
		Collection:        namer.Collection(model, namerFunc),
		ElementType:       elementType,
		Parameters:        parameters,
		InitialValues:     initialValues,
		ReceptorTypes:     receptors,
		Recordables:       recordables,
		Units:             units,
		Injectable:        injectable,
		ConductanceBased:  conductanceBased,
		StandardReceptors: equalNames(receptors, standardReceptors),
		AlwaysLocal:       isStimulator,
		UsesRelay:         isStimulator,
	}
	return d, nil
}

// ReceptorTypes lists the ordered receptor type names of given model.
// Engine registry failures propagate unmodified.
func ReceptorTypes(e simulator.Engine, model string) ([]string, error) {
	if model == "" {
		return nil, errors.New(ClassInvalidModelName, "provided empty model name")
	}

	defaults, err := e.GetDefaults(model)
	if err != nil {
		return nil, err
	}
	return receptorNames(defaults), nil
}

// Recordables lists the recordable quantity names of given model. The
// recordability introspection is best effort - any engine failure maps to
// an empty list instead of an error.
func Recordables(e simulator.Engine, model string) []string {
	defaults, err := e.GetDefaults(model)
	if err != nil {
		log.Debugf("Recordables introspection for model '%s' failed: %v", model, err)
		return []string{}
	}
	names := recordableNames(defaults)
	if names == nil {
		return []string{}
	}
	return names
}

// normalizeValue maps an accepted engine value onto its canonical descriptor
// form. Accepted are numeric scalars, typed numeric sequences and plain
// numeric arrays - everything else is rejected.
func normalizeValue(value interface{}) (interface{}, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case simulator.Sequence:
		return v, true
	case []float64:
		return simulator.Sequence(v), true
	case []int:
		seq := make(simulator.Sequence, len(v))
		for i, n := range v {
			seq[i] = float64(n)
		}
		return seq, true
	}
	return nil, false
}

func recordableNames(defaults simulator.Params) []string {
	value, ok := defaults["recordables"]
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case []string:
		return append([]string{}, v...)
	case []interface{}:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if name, ok := item.(string); ok {
				names = append(names, name)
			}
		}
		return names
	}
	return nil
}

// receptorNames resolves the ordered receptor type list from the engine
// defaults. A model without the receptor entry keeps the standard
// excitatory/inhibitory pair, while an explicitly empty entry stays empty.
// The reported name to port mapping is ordered by ascending port.
func receptorNames(defaults simulator.Params) []string {
	value, ok := defaults["receptor_types"]
	if !ok {
		return append([]string{}, standardReceptors...)
	}

	ports := receptorPorts(value)
	names := make([]string, 0, len(ports))
	for name := range ports {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if ports[names[i]] == ports[names[j]] {
			return names[i] < names[j]
		}
		return ports[names[i]] < ports[names[j]]
	})
	return names
}

// receptorPorts normalizes the engine receptor mapping value.
func receptorPorts(value interface{}) map[string]int {
	switch v := value.(type) {
	case map[string]int:
		return v
	case map[string]interface{}:
		ports := make(map[string]int, len(v))
		for name, port := range v {
			switch p := port.(type) {
			case int:
				ports[name] = p
			case int64:
				ports[name] = int(p)
			case float64:
				ports[name] = int(p)
			}
		}
		return ports
	}
	return nil
}

func elementTypeOf(defaults simulator.Params) simulator.ElementType {
	switch v := defaults["element_type"].(type) {
	case simulator.ElementType:
		return v
	case string:
		return simulator.ElementType(v)
	}
	return simulator.ElementType("")
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
