// Package recording defines the recorded data model and the output
// handlers that persist it. A handler claims one or more file extensions
// and opens format specific outputs - the package registers the builtin
// csv and json handlers, custom formats join through RegisterHandler.
package recording
