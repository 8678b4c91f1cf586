// Package outcome provides Result[E, V], a two-way outcome type for
// operations that either succeed with a value of type V or fail with a fault
// of type E, without panics or sentinel returns.
//
// Highlights:
// - Success/Failure: construct Result[E, V]
// - Value/Err: comma-ok access tied to the discriminant
// - IsSuccess/IsError: discriminant predicates for branching
// - Map/MapError: transform one channel, leave the other untouched
// - AndThen/OrElse: sequence and recover without nesting results
// - WithDefault/GetOrElse: unwrap with a fallback at chain boundaries
//
// Type-changing operations are package-level functions since Go methods
// cannot add type parameters. For context-aware pipelines see the flow
// package, for fluent chaining see chain.
package outcome
