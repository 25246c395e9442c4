// Package telemetry provides structured logging for opencapture.
//
// The logger wraps zerolog and tags every entry with the component that
// emitted it. Library packages receive a zerolog.Logger and derive their own
// component loggers; the CLI builds the root logger from its flags.
package telemetry
