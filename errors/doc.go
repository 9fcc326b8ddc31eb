// Package errors provides lightweight error handling and classification primitives.
//
// Errors are classified with a 32-bit Class composed of three runtime
// registered subclassifications: Major, Minor and Index. A package declares
// its classes once - in an 'init' function - and compares errors against
// them with IsClass.
//
// The package provides two error flavors: simple classed errors created
// with New and Newf, and DetailedError - a chainable error with a unique
// instance ID, human readable details and the operation it occurred in.
package errors
