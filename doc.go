// Package nest maps a simulator neutral spiking network api onto the
// native surface of one simulation engine. The engine itself - numerical
// integration, event delivery, network construction - is an opaque
// collaborator behind the simulator.Engine interface, this module only
// translates between the two vocabularies.
//
// The Session is the explicit entry point: it owns the lifecycle state
// machine (uninitialized, configured, running, ended), the kernel
// configuration, the model reflection cache and the bookkeeping of the
// pending data writes and temporary directories.
//
// The subpackages split by concern:
//   - config - simulation config structures, defaults and file readers.
//   - errors - the classified error system shared by every package.
//   - log - the leveled logging wrapper.
//   - mapping - model reflection and the descriptor synthesis.
//   - namer - naming convention helpers for the data block labels.
//   - recording - recorded data model and the format output handlers.
//   - simulator - the engine interface, the factory container and the
//     mock engine implementation.
package nest
