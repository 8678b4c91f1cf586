package outcome

// The type-changing operations live at package level because Go methods
// cannot introduce new type parameters. Each one invokes its function at
// most once and never mutates its input.

// Map transforms the success value, leaving a failure untouched.
func Map[E, V, V2 any](r Result[E, V], f func(V) V2) Result[E, V2] {
	if r.isSuccess {
		return Success[E](f(r.value))
	}
	return FailureFrom[E, V, V2](r)
}

// MapError transforms the fault, leaving a success untouched. On a success
// only the fault type parameter changes; the value is carried over as is.
func MapError[E, E2, V any](r Result[E, V], f func(E) E2) Result[E2, V] {
	if r.isSuccess {
		return SuccessFrom[E, E2](r)
	}
	return Failure[E2, V](f(r.fault))
}

// AndThen sequences a result-returning step. The step's result is returned
// directly, so chains never nest. A failure short-circuits; f is not called.
func AndThen[E, V, V2 any](r Result[E, V], f func(V) Result[E, V2]) Result[E, V2] {
	if r.isSuccess {
		return f(r.value)
	}
	return FailureFrom[E, V, V2](r)
}

// OrElse recovers from a failure with a result-returning step. A success
// short-circuits; f is not called.
func OrElse[E, E2, V any](r Result[E, V], f func(E) Result[E2, V]) Result[E2, V] {
	if r.isSuccess {
		return SuccessFrom[E, E2](r)
	}
	return f(r.fault)
}

// WithDefault unwraps the result, substituting fallback on a failure.
func WithDefault[E, V any](r Result[E, V], fallback V) V {
	if r.isSuccess {
		return r.value
	}
	return fallback
}
