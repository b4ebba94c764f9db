package fnwatest

import (
	"strconv"
	"testing"

	"github.com/advdv/bfunc/fnenv"
)

// Env provides a chainable builder for overriding env vars via t.Setenv.
// Create one with [SetBaseEnv].
type Env struct {
	t testing.TB
}

// SetBaseEnv sets the serving and platform env vars to sensible test defaults.
// Port is required because each test must use a unique port to avoid
// collisions.
//
// Defaults:
//   - BFUNC_SERVICE_NAME: "test"
//   - BFUNC_HEALTH_CHECK_PATH: "/__health"
//   - APPWRITE_FUNCTION_API_ENDPOINT: "http://localhost/v1"
//   - APPWRITE_FUNCTION_PROJECT_ID: "test-project"
//   - APPWRITE_FUNCTION_API_KEY: "test-key"
//
// Use the returned [Env] to override individual values:
//
//	fnwatest.SetBaseEnv(t, 18085).ServiceName("pinger").ProjectID("p1")
func SetBaseEnv(t testing.TB, port int) *Env {
	t.Helper()
	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("BFUNC_SERVICE_NAME", "test")
	t.Setenv("BFUNC_HEALTH_CHECK_PATH", "/__health")
	t.Setenv(fnenv.EnvAPIEndpoint, "http://localhost/v1")
	t.Setenv(fnenv.EnvProjectID, "test-project")
	t.Setenv(fnenv.EnvAPIKey, "test-key")
	return &Env{t: t}
}

// ServiceName overrides BFUNC_SERVICE_NAME.
func (e *Env) ServiceName(name string) *Env {
	e.t.Helper()
	e.t.Setenv("BFUNC_SERVICE_NAME", name)
	return e
}

// HealthCheckPath overrides BFUNC_HEALTH_CHECK_PATH.
func (e *Env) HealthCheckPath(path string) *Env {
	e.t.Helper()
	e.t.Setenv("BFUNC_HEALTH_CHECK_PATH", path)
	return e
}

// APIEndpoint overrides APPWRITE_FUNCTION_API_ENDPOINT.
func (e *Env) APIEndpoint(endpoint string) *Env {
	e.t.Helper()
	e.t.Setenv(fnenv.EnvAPIEndpoint, endpoint)
	return e
}

// ProjectID overrides APPWRITE_FUNCTION_PROJECT_ID.
func (e *Env) ProjectID(id string) *Env {
	e.t.Helper()
	e.t.Setenv(fnenv.EnvProjectID, id)
	return e
}

// APIKey overrides APPWRITE_FUNCTION_API_KEY.
func (e *Env) APIKey(key string) *Env {
	e.t.Helper()
	e.t.Setenv(fnenv.EnvAPIKey, key)
	return e
}
