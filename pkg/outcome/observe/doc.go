// Package observe provides logging side effects over Result[E, V] in the
// shape of flow.Tee: each function records the outcome and returns it
// untouched, so observers slot into a pipeline between any two steps.
//
// The logger is taken from the context (internal/logging); call sites that
// carry no logger fall back to the process-wide default.
package observe
