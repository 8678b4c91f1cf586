package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/flow"
)

// Chain wraps an outcome.Result with context to enable fluent chaining
type Chain[E, V any] struct {
	ctx context.Context
	res outcome.Result[E, V]
}

// Start creates a new chain from an outcome.Result
func Start[E, V any](ctx context.Context, r outcome.Result[E, V]) Chain[E, V] {
	return Chain[E, V]{ctx: ctx, res: r}
}

// FromValue creates a new chain from a successful value
func FromValue[E, V any](ctx context.Context, v V) Chain[E, V] {
	return Start(ctx, outcome.Success[E](v))
}

// Result returns the underlying outcome.Result
func (c Chain[E, V]) Result() outcome.Result[E, V] {
	return c.res
}

// Then composes functions that already return outcome.Result[E, V]
func (c Chain[E, V]) Then(onSuccess func(ctx context.Context, v V) outcome.Result[E, V]) Chain[E, V] {
	if c.res.IsError() {
		return c
	}
	return Chain[E, V]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.MustValue())}
}

// Map transforms the successful value to a new value
func (c Chain[E, V]) Map(onSuccess func(ctx context.Context, v V) V) Chain[E, V] {
	if c.res.IsError() {
		return c
	}
	return Chain[E, V]{ctx: c.ctx, res: outcome.Success[E](onSuccess(c.ctx, c.res.MustValue()))}
}

// MapErr transforms the fault, leaving a success untouched
func (c Chain[E, V]) MapErr(onFailure func(ctx context.Context, fault E) E) Chain[E, V] {
	if c.res.IsSuccess() {
		return c
	}
	return Chain[E, V]{ctx: c.ctx, res: outcome.Failure[E, V](onFailure(c.ctx, c.res.MustErr()))}
}

// Or returns the receiver when it succeeded, otherwise the alternative when
// that one succeeded, otherwise the receiver's failure.
func (c Chain[E, V]) Or(alternative Chain[E, V]) Chain[E, V] {
	if c.res.IsSuccess() {
		return c
	}
	if alternative.res.IsSuccess() {
		return alternative
	}
	return c
}

func (c Chain[E, V]) RepeatUntil(onSuccess func(ctx context.Context, v V) outcome.Result[E, V],
	until func(ctx context.Context, v V) bool) Chain[E, V] {

	if c.res.IsError() {
		return c
	}

	for {
		c = c.Then(onSuccess)

		if c.res.IsError() || until(c.ctx, c.res.MustValue()) {
			return c
		}
	}
}

func (c Chain[E, V]) While(onSuccess func(ctx context.Context, v V) outcome.Result[E, V],
	while func(ctx context.Context, v V) bool) Chain[E, V] {

	for c.res.IsSuccess() && while(c.ctx, c.res.MustValue()) {
		c = c.Then(onSuccess)
	}
	return c
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[E, V]) Ensure(onSuccess func(context.Context, V), onFailure func(context.Context, E)) Chain[E, V] {
	if e, ok := c.res.Err(); ok {
		if onFailure != nil {
			onFailure(c.ctx, e)
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.MustValue())
	}
	return c
}

// GetOrElse collapses the chain to the success value or the fallback
func (c Chain[E, V]) GetOrElse(fallback V) V {
	return c.res.GetOrElse(fallback)
}

// Then chains a function that returns outcome.Result[E, U]
func Then[E, V, U any](c Chain[E, V], onSuccess func(context.Context, V) outcome.Result[E, U]) Chain[E, U] {
	return Chain[E, U]{
		ctx: c.ctx,
		res: flow.Switch(c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[V, U any](c Chain[error, V], tryOnSuccess func(context.Context, V) (U, error)) Chain[error, U] {
	return Chain[error, U]{
		ctx: c.ctx,
		res: flow.Try(c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[E, V, U any](c Chain[E, V], onSuccess func(context.Context, V) U) Chain[E, U] {
	return Chain[E, U]{
		ctx: c.ctx,
		res: flow.Map(c.ctx, c.res, onSuccess),
	}
}

// MapError chains a fault transformation function
func MapError[E, E2, V any](c Chain[E, V], onFailure func(context.Context, E) E2) Chain[E2, V] {
	return Chain[E2, V]{
		ctx: c.ctx,
		res: flow.MapError(c.ctx, c.res, onFailure),
	}
}

// Recover chains an alternative result for the failure channel
func Recover[E, E2, V any](c Chain[E, V], onFailure func(context.Context, E) outcome.Result[E2, V]) Chain[E2, V] {
	return Chain[E2, V]{
		ctx: c.ctx,
		res: flow.Recover(c.ctx, c.res, onFailure),
	}
}

// Finally collapses the chain into a final value using flow.Finally
func Finally[E, V, U any](c Chain[E, V], onSuccess func(context.Context, V) U,
	onFailure func(context.Context, E) U) U {
	return flow.Finally(c.ctx, c.res, onSuccess, onFailure)
}
