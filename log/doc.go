// Package log contains the default logger interface used by all packages
// to log their messages.
//
// It wraps a leveled logger instance - any implementation of the
// unilogger.LeveledLogger interface - and exposes package level leveled
// functions. The logger is disabled until set with SetLogger, Default or New.
package log
