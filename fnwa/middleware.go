package fnwa

import (
	"time"

	"github.com/advdv/bfunc"
	"go.uber.org/zap"
)

// WithInvocationLog logs one line per invocation with method, path, trigger
// and duration.
func WithInvocationLog(logger *zap.Logger) bfunc.Middleware {
	return func(next bfunc.Handler) bfunc.Handler {
		return bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
			start := time.Now()
			out, err := next.ServeInvocation(c)

			logger.Info("invocation",
				zap.String("method", c.Request().Method()),
				zap.String("path", c.Request().Path()),
				zap.String("trigger", c.Headers().Trigger()),
				zap.String("execution_id", c.Headers().ExecutionID()),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err))

			return out, err
		})
	}
}

// WithErrorResponse converts handler errors into the conventional textual
// error response: the error is forwarded to the platform's error log and the
// client receives a 500 text body instead of the invocation failing upstream.
func WithErrorResponse() bfunc.Middleware {
	return func(next bfunc.Handler) bfunc.Handler {
		return bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
			out, err := next.ServeInvocation(c)
			if err != nil {
				c.Error(err.Error())
				return c.Response().Error("internal error"), nil
			}

			return out, nil
		})
	}
}
