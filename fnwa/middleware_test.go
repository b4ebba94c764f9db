package fnwa_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advdv/bfunc"
	"github.com/advdv/bfunc/fnwa"
	"github.com/advdv/bfunc/fnwa/fnwatest"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWithErrorResponse(t *testing.T) {
	failing := bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
		return nil, errors.New("db unreachable")
	})

	handler := bfunc.Wrap(failing, fnwa.WithErrorResponse())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	out, logs := fnwatest.Invoke(t, handler, req)

	artifact, ok := out.(*fnwa.Output)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, artifact.StatusCode)
	require.Equal(t, "internal error", string(artifact.Body))

	// the underlying cause went to the platform's error log, not the client
	require.Equal(t, []string{"db unreachable"}, logs.Errors)
}

func TestWithErrorResponsePassesSuccessThrough(t *testing.T) {
	ok := bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
		return c.Response().Text("pong"), nil
	})

	handler := bfunc.Wrap(ok, fnwa.WithErrorResponse())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	out, logs := fnwatest.Invoke(t, handler, req)

	require.Equal(t, "pong", string(out.(*fnwa.Output).Body))
	require.Empty(t, logs.Errors)
}

func TestWithInvocationLog(t *testing.T) {
	observed := 0
	inner := bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
		observed++
		return c.Response().Empty(), nil
	})

	handler := bfunc.Wrap(inner, fnwa.WithInvocationLog(zap.NewNop()))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	out, _ := fnwatest.Invoke(t, handler, req)

	require.Equal(t, 1, observed)
	require.Equal(t, http.StatusNoContent, out.(*fnwa.Output).StatusCode)
}

func TestWrapOrder(t *testing.T) {
	var order []string

	mw := func(name string) bfunc.Middleware {
		return func(next bfunc.Handler) bfunc.Handler {
			return bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
				order = append(order, name)
				return next.ServeInvocation(c)
			})
		}
	}

	inner := bfunc.HandlerFunc(func(c *bfunc.Context) (any, error) {
		order = append(order, "handler")
		return c.Response().Empty(), nil
	})

	handler := bfunc.Wrap(inner, mw("outer"), mw("inner"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	fnwatest.Invoke(t, handler, req)

	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}
