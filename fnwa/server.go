package fnwa

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/advdv/bfunc"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// ServerConfig holds optional configuration for the HTTP server.
type ServerConfig struct {
	HealthHandler func(http.ResponseWriter, *http.Request)
	Middleware    []bfunc.Middleware
}

// ServerParams holds the dependencies for creating an HTTP server.
type ServerParams struct {
	fx.In

	Env     Environment
	Handler bfunc.Handler
	Logger  *zap.Logger
}

// NewServer creates an HTTP server that serves the function handler on every
// path, next to a readiness endpoint.
func NewServer(params ServerParams, cfg ServerConfig) *http.Server {
	handler := bfunc.Wrap(params.Handler, cfg.Middleware...)
	funcLogs := NewFuncLogger(params.Logger)

	// Register the health check endpoint at the path specified by
	// BFUNC_HEALTH_CHECK_PATH so orchestrator probes never invoke the function.
	// The handler can be customized via ServerConfig.HealthHandler; defaults to 200 OK.
	healthHandler := cfg.HealthHandler
	if healthHandler == nil {
		healthHandler = defaultHealthHandler
	}

	mux := http.NewServeMux()
	mux.HandleFunc(params.Env.healthCheckPath(), healthHandler)
	mux.Handle("/", invokeHandler(handler, funcLogs, params.Logger))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", params.Env.port()),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// invokeHandler serves one function invocation per request: it fills in the
// invocation metadata local callers omit, adapts the request into the opaque
// host context and renders the returned artifact.
func invokeHandler(h bfunc.Handler, funcLogs bfunc.Logger, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// platform-supplied ids always win; generate only when absent
		if r.Header.Get(bfunc.HeaderExecutionID) == "" {
			r.Header.Set(bfunc.HeaderExecutionID, uuid.NewString())
		}
		if r.Header.Get(bfunc.HeaderTrigger) == "" {
			r.Header.Set(bfunc.HeaderTrigger, "http")
		}

		host, err := NewHostContext(r, funcLogs)
		if err != nil {
			logger.Error("failed to adapt invocation", zap.Error(err))
			http.Error(w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)
			return
		}

		out, err := h.ServeInvocation(bfunc.New(host))
		if err != nil {
			logger.Error("unhandled invocation error", zap.Error(err))
			http.Error(w,
				http.StatusText(http.StatusInternalServerError),
				http.StatusInternalServerError)
			return
		}

		if err := WriteOutput(w, out); err != nil {
			logger.Error("failed to write response", zap.Error(err))
		}
	})
}

// startServerHook registers lifecycle hooks for the HTTP server.
func startServerHook(lc fx.Lifecycle, server *http.Server, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting server", zap.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func defaultHealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
