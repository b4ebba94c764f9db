package fnwa

import (
	"context"
	"net/http"

	"github.com/advdv/bfunc"
	"github.com/advdv/bfunc/fnenv"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// App wraps an fx.App for lifecycle management.
type App struct {
	app *fx.App
}

// AppConfig holds configuration for the app.
type AppConfig struct {
	ServerConfig
	DotenvPath string
	FxOptions  []fx.Option
}

// Option configures the App.
type Option func(*AppConfig)

// WithDotenv loads the given .env file into the process environment before the
// environment is parsed. A missing file is not an error: deployed environments
// carry their variables directly.
func WithDotenv(path string) Option {
	return func(c *AppConfig) {
		c.DotenvPath = path
	}
}

// WithMiddleware wraps the function handler with middleware. The middleware
// provided first is the outermost wrapping.
func WithMiddleware(mw ...bfunc.Middleware) Option {
	return func(c *AppConfig) {
		c.Middleware = append(c.Middleware, mw...)
	}
}

// WithHealthHandler sets a custom health check handler.
// If not set, a default handler returning 200 OK is used.
func WithHealthHandler(h func(http.ResponseWriter, *http.Request)) Option {
	return func(c *AppConfig) {
		c.HealthHandler = h
	}
}

// WithFx adds fx options for dependency injection.
func WithFx(fxOpts ...fx.Option) Option {
	return func(c *AppConfig) {
		c.FxOptions = append(c.FxOptions, fxOpts...)
	}
}

// FxOptions builds the fx option graph for serving the given handler. Exposed
// separately so tests can construct the identical graph with fxtest.
func FxOptions[E Environment](handler bfunc.Handler, opts ...Option) []fx.Option {
	var cfg AppConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.DotenvPath != "" {
		_ = godotenv.Load(cfg.DotenvPath)
	}

	baseOpts := make([]fx.Option, 0, 9+len(cfg.FxOptions))
	baseOpts = append(baseOpts, []fx.Option{
		fx.NopLogger,
		fx.Provide(ParseEnv[E]()),
		fx.Provide(func(e E) Environment { return e }),
		fx.Provide(func(e E) (*zap.Logger, error) { return NewLogger(e) }),
		fx.Provide(func() bfunc.Handler { return handler }),
		fx.Provide(fnenv.ParsePlatform),
		fx.Provide(NewRuntime[E]),
		fx.Supply(cfg.ServerConfig),
		fx.Provide(NewServer),
		fx.Invoke(startServerHook),
	}...)

	baseOpts = append(baseOpts, cfg.FxOptions...)

	return baseOpts
}

// NewApp creates a batteries-included app serving a single function handler.
//
// Example:
//
//	fnwa.NewApp[fnwa.BaseEnvironment](bfunc.HandlerFunc(handle),
//	    fnwa.WithMiddleware(fnwa.WithErrorResponse()),
//	    fnwa.WithDotenv(".env"),
//	).Run()
func NewApp[E Environment](handler bfunc.Handler, opts ...Option) *App {
	return &App{
		app: fx.New(FxOptions[E](handler, opts...)...),
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() {
	a.app.Run()
}

// Start starts the application with the given context.
func (a *App) Start(ctx context.Context) error {
	if err := a.app.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(ctx, a.app.StopTimeout())
	defer cancel()

	return a.app.Stop(stopCtx)
}
