// Package mocksim implements an in memory simulation engine used by the
// tests and the command line tooling. The engine keeps a scripted model
// registry mirroring the native engine dialect - model defaults carry the
// recordables, receptor and element classification entries - together with
// a minimal kernel clock, node allocator and connection store that
// quantizes delays to the kernel resolution.
//
// Failure paths are scripted with the OnSimulate and OnGetDefaults
// executors consumed before the builtin behavior.
package mocksim
