package flow

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[E, V any](input V) outcome.Result[E, V] {
	return outcome.Success[E](input)
}

func FailWith[E, V any](fault E) outcome.Result[E, V] {
	return outcome.Failure[E, V](fault)
}

func Validate[V any](ctx context.Context, input V,
	validate func(ctx context.Context, in V) (valid bool, errMsg string)) outcome.Result[error, V] {
	return AndValidate(ctx, Succeed[error](input), validate)
}

func AndValidate[V any](ctx context.Context, input outcome.Result[error, V],
	validate func(ctx context.Context, in V) (valid bool, errMsg string)) outcome.Result[error, V] {

	if v, ok := input.Value(); ok {

		if isValid, errMsg := validate(ctx, v); isValid {
			return input
		} else {
			return outcome.Failure[error, V](errors.New(errMsg))
		}
	}
	return input
}

func Switch[E, In, Out any](ctx context.Context,
	input outcome.Result[E, In],
	onSuccess func(ctx context.Context, r In) outcome.Result[E, Out]) outcome.Result[E, Out] {

	if v, ok := input.Value(); ok {
		return onSuccess(ctx, v)
	}
	return outcome.FailureFrom[E, In, Out](input)
}

func Map[E, In, Out any](ctx context.Context,
	input outcome.Result[E, In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Result[E, Out] {

	if v, ok := input.Value(); ok {
		return outcome.Success[E](onSuccess(ctx, v))
	}
	return outcome.FailureFrom[E, In, Out](input)
}

func MapError[E, E2, V any](ctx context.Context,
	input outcome.Result[E, V],
	onFailure func(ctx context.Context, fault E) E2) outcome.Result[E2, V] {

	if e, ok := input.Err(); ok {
		return outcome.Failure[E2, V](onFailure(ctx, e))
	}
	return outcome.SuccessFrom[E, E2](input)
}

// Recover switches to an alternative result when the input failed. The dual
// of Switch: a success passes through and onFailure is not called.
func Recover[E, E2, V any](ctx context.Context,
	input outcome.Result[E, V],
	onFailure func(ctx context.Context, fault E) outcome.Result[E2, V]) outcome.Result[E2, V] {

	if e, ok := input.Err(); ok {
		return onFailure(ctx, e)
	}
	return outcome.SuccessFrom[E, E2](input)
}

func Tee[E, V any](ctx context.Context,
	input outcome.Result[E, V],
	onSuccess func(ctx context.Context, r outcome.Result[E, V])) outcome.Result[E, V] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[E, V any](ctx context.Context,
	input outcome.Result[E, V],
	condition func(ctx context.Context, r outcome.Result[E, V]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Result[E, V])) outcome.Result[E, V] {

	if input.IsSuccess() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[E, V any](ctx context.Context, input outcome.Result[E, V],
	onSuccess func(ctx context.Context, r V),
	onFailure func(ctx context.Context, fault E)) outcome.Result[E, V] {

	if v, ok := input.Value(); ok {
		onSuccess(ctx, v)
	} else if e, ok := input.Err(); ok {
		onFailure(ctx, e)
	}

	return input
}

// DoubleMap maps the success channel while reporting a failure to its
// handler. The failure itself is preserved untouched.
func DoubleMap[E, In, Out any](ctx context.Context, input outcome.Result[E, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, fault E)) outcome.Result[E, Out] {

	if v, ok := input.Value(); ok {
		return outcome.Success[E](onSuccess(ctx, v))
	}

	if e, ok := input.Err(); ok {
		onFailure(ctx, e)
	}

	return outcome.FailureFrom[E, In, Out](input)
}

func Try[In, Out any](ctx context.Context, input outcome.Result[error, In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[error, Out] {

	if v, ok := input.Value(); ok {

		out, err := onTryExecute(ctx, v)
		if err != nil {
			return outcome.Failure[error, Out](err)
		}

		return outcome.Success[error](out)
	}

	return outcome.FailureFrom[error, In, Out](input)
}

func FailOnError[V any](ctx context.Context, input outcome.Result[error, V],
	maybeErr func(ctx context.Context, in V) error) outcome.Result[error, V] {
	if v, ok := input.Value(); ok {
		err := maybeErr(ctx, v)
		if err != nil {
			return outcome.Failure[error, V](err)
		}
		return input
	}
	return input
}

func Finally[E, In, Out any](ctx context.Context, input outcome.Result[E, In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, fault E) Out) Out {

	if v, ok := input.Value(); ok {
		return onSuccess(ctx, v)
	}
	return onFailure(ctx, input.MustErr())
}
