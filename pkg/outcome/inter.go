package outcome

import "time"

var _ Checked[error, any] = Result[error, any]{}

type Provider[V any] interface {
	// Value returns the success value together with the discriminant
	Value() (V, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Checked defines an interface for types that expose both channels of an
// outcome together with their discriminant predicates
type Checked[E, V any] interface {
	Provider[V]
	// Err returns the fault together with the discriminant
	Err() (E, bool)
	// IsSuccess returns true if the operation succeeded
	IsSuccess() bool
	// IsError returns true if the operation failed
	IsError() bool
}
