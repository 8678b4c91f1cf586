// Package chain provides a fluent Chain[E, V] for synchronous composition of
// Result[E, V] values with a carried context.Context.
//
// Same-type steps are methods:
// - Start/FromValue: create a Chain
// - Then/Map/MapErr: compose result-returning or transforming functions
// - Or: pick the first successful chain
// - Ensure: trigger side effects without changing the result
// - RepeatUntil/While: loop a step over the chain
// - GetOrElse: collapse to the value or a fallback
//
// Type-changing steps are package-level functions (Then, ThenTry, Map,
// MapError, Recover, Finally) since Go methods cannot add type parameters.
package chain
