// Package fnwatest provides test helpers for fnwa applications.
//
// It constructs the identical DI graph as [fnwa.NewApp] but uses
// [fxtest.App] which fails the test immediately on DI errors.
//
// Example:
//
//	fnwatest.SetBaseEnv(t, 18081)
//	app := fnwatest.New[fnwa.BaseEnvironment](t, handler)
//	app.RequireStart()
//	t.Cleanup(app.RequireStop)
package fnwatest

import (
	"testing"

	"github.com/advdv/bfunc"
	"github.com/advdv/bfunc/fnwa"
	"go.uber.org/fx/fxtest"
)

// App embeds *fxtest.App for testing fnwa applications.
type App struct {
	*fxtest.App
}

// New creates a test app with the same DI graph as [fnwa.NewApp].
func New[E fnwa.Environment](t testing.TB, handler bfunc.Handler, opts ...fnwa.Option) *App {
	return &App{App: fxtest.New(t, fnwa.FxOptions[E](handler, opts...)...)}
}
