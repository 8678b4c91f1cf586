// Package try bridges Go's (value, error) convention and Result[error, V]
// at the boundaries of a pipeline.
//
// Highlights:
// - From: lift a (value, error) pair into a Result
// - Catch: run a function, converting errors and panics into failures
// - Do: context-aware variant; a finished context becomes a failure
// - Errors/IsNil/IsCancellation: small error inspection helpers
package try
