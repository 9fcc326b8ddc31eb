// Package mapping synthesizes simulator neutral model descriptors from the
// native model registry of a simulation engine.
//
// The reflection entry point is Describe - it queries the engine defaults
// for one model name and derives the parameter map, the initial value map,
// the ordered receptor type list, the unit labels and the capability flags.
// A Map caches the descriptors per engine instance, and NativeType adapts a
// descriptor to the CellType interface consumed by the population layer.
package mapping
