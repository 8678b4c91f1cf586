package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of an operation: either a success carrying a value
// of type V, or a failure carrying a fault of type E. Instances are immutable
// once constructed; combinators return new instances.
type Result[E, V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	fault     E
	isSuccess bool
}

func Success[E, V any](value V) Result[E, V] {
	return Result[E, V]{
		value:     value,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[E, V any](fault E) Result[E, V] {
	return Result[E, V]{
		fault:     fault,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-wraps the failure of an existing result under a new value
// type, keeping the id and creation time of the originating outcome.
// Calling it on a success is a programming error; the result would be empty.
func FailureFrom[E, V, V2 any](from Result[E, V]) Result[E, V2] {
	return Result[E, V2]{
		fault:     from.fault,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-wraps the value of an existing result under a new fault
// type, keeping the id and creation time of the originating outcome.
func SuccessFrom[E, E2, V any](from Result[E, V]) Result[E2, V] {
	return Result[E2, V]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value. The second return is the discriminant:
// the value is only meaningful when it is true.
func (r Result[E, V]) Value() (V, bool) {
	return r.value, r.isSuccess
}

// Err returns the fault. The second return is the discriminant: the fault is
// only meaningful when it is true.
func (r Result[E, V]) Err() (E, bool) {
	return r.fault, !r.isSuccess
}

// MustValue returns the success value or panics on a failure.
func (r Result[E, V]) MustValue() V {
	if !r.isSuccess {
		panic("outcome: MustValue called on a failure")
	}
	return r.value
}

// MustErr returns the fault or panics on a success.
func (r Result[E, V]) MustErr() E {
	if r.isSuccess {
		panic("outcome: MustErr called on a success")
	}
	return r.fault
}

// GetOrElse returns the success value, or fallback on a failure.
func (r Result[E, V]) GetOrElse(fallback V) V {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[E, V]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[E, V]) IsError() bool {
	return !r.isSuccess
}

func (r Result[E, V]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[E, V]) Id() uuid.UUID {
	return r.id
}
