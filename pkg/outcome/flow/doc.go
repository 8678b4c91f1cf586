// Package flow contains single-value, synchronous pipeline primitives that
// operate on Result[E, V] while threading a context.Context through user
// functions. These functions form the building blocks for error-aware
// pipelines.
//
// Highlights:
// - Succeed/FailWith: construct Result[E, V]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[E, In] to Result[E, Out]
// - Recover: switch to an alternative result when the input failed
// - Map/MapError/DoubleMap: transform one channel of the result
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package flow
