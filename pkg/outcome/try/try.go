package try

import (
	"context"
	"errors"
	"reflect"

	"github.com/zeebo/errs"

	"github.com/ib-77/outcome/pkg/outcome"
)

// From lifts Go's (value, error) convention into a Result.
func From[V any](v V, err error) outcome.Result[error, V] {
	if err != nil {
		return outcome.Failure[error, V](err)
	}
	return outcome.Success[error](v)
}

// Catch runs f and converts both its error and any panic into a failure.
func Catch[V any](f func() (V, error)) (r outcome.Result[error, V]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = outcome.Failure[error, V](errs.New("recovered from panic: %v", rec))
		}
	}()

	return From(f())
}

// Do runs f under ctx. A context already finished before the call becomes a
// failure without invoking f.
func Do[V any](ctx context.Context, f func(ctx context.Context) (V, error)) outcome.Result[error, V] {
	if ctx.Err() != nil {
		return outcome.Failure[error, V](errs.New("context finished: %w", ctx.Err()))
	}
	return From(f(ctx))
}

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
