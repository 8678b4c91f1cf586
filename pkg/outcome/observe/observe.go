package observe

import (
	"context"
	"time"

	"github.com/ib-77/outcome/internal/logging"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Log records the outcome under msg and returns it untouched. A success is
// logged at info level, a failure at warn level.
func Log[E, V any](ctx context.Context, r outcome.Result[E, V], msg string) outcome.Result[E, V] {
	l := logger(ctx, r.Id().String(), r.CreatedAt())

	if v, ok := r.Value(); ok {
		l.Info(msg, logging.Any("value", v))
	} else if e, ok := r.Err(); ok {
		l.Warn(msg, logging.Any("fault", e))
	}

	return r
}

// LogSuccess records only a successful outcome and returns it untouched.
func LogSuccess[E, V any](ctx context.Context, r outcome.Result[E, V], msg string) outcome.Result[E, V] {
	if v, ok := r.Value(); ok {
		logger(ctx, r.Id().String(), r.CreatedAt()).Info(msg, logging.Any("value", v))
	}
	return r
}

// LogFailure records only a failed outcome and returns it untouched.
func LogFailure[E, V any](ctx context.Context, r outcome.Result[E, V], msg string) outcome.Result[E, V] {
	if e, ok := r.Err(); ok {
		logger(ctx, r.Id().String(), r.CreatedAt()).Warn(msg, logging.Any("fault", e))
	}
	return r
}

func logger(ctx context.Context, id string, createdAt time.Time) *logging.Logger {
	return logging.FromContext(ctx).With(
		logging.String("result_id", id),
		logging.Time("created_at", createdAt),
	)
}
