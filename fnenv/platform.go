package fnenv

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Environment variable names fixed by the platform. Values are always strings.
const (
	EnvAPIEndpoint    = "APPWRITE_FUNCTION_API_ENDPOINT"
	EnvVersion        = "APPWRITE_VERSION"
	EnvRegion         = "APPWRITE_REGION"
	EnvAPIKey         = "APPWRITE_FUNCTION_API_KEY"
	EnvFunctionID     = "APPWRITE_FUNCTION_ID"
	EnvFunctionName   = "APPWRITE_FUNCTION_NAME"
	EnvDeployment     = "APPWRITE_FUNCTION_DEPLOYMENT"
	EnvProjectID      = "APPWRITE_FUNCTION_PROJECT_ID"
	EnvRuntimeName    = "APPWRITE_FUNCTION_RUNTIME_NAME"
	EnvRuntimeVersion = "APPWRITE_FUNCTION_RUNTIME_VERSION"
)

// Platform holds the platform-supplied configuration, parsed once at process
// start. Prefer passing this into components over re-reading global state per
// call; the keyed accessors remain for ad-hoc reads.
type Platform struct {
	APIEndpoint    string `env:"APPWRITE_FUNCTION_API_ENDPOINT,required"`
	Version        string `env:"APPWRITE_VERSION"`
	Region         string `env:"APPWRITE_REGION"`
	APIKey         string `env:"APPWRITE_FUNCTION_API_KEY"`
	FunctionID     string `env:"APPWRITE_FUNCTION_ID"`
	FunctionName   string `env:"APPWRITE_FUNCTION_NAME"`
	Deployment     string `env:"APPWRITE_FUNCTION_DEPLOYMENT"`
	ProjectID      string `env:"APPWRITE_FUNCTION_PROJECT_ID"`
	RuntimeName    string `env:"APPWRITE_FUNCTION_RUNTIME_NAME"`
	RuntimeVersion string `env:"APPWRITE_FUNCTION_RUNTIME_VERSION"`
}

// ParsePlatform parses the platform environment variables into a [Platform].
func ParsePlatform() (Platform, error) {
	var p Platform
	if err := env.Parse(&p); err != nil {
		return p, errors.Wrap(err, "failed to parse platform environment")
	}

	return p, nil
}

// Named convenience accessors, each a thin [String] call with a fixed key.

// APIEndpoint returns the platform API endpoint.
func APIEndpoint() (string, error) { return String(EnvAPIEndpoint) }

// Version returns the platform version.
func Version() (string, error) { return String(EnvVersion) }

// Region returns the deployment region.
func Region() (string, error) { return String(EnvRegion) }

// APIKey returns the function's API key.
func APIKey() (string, error) { return String(EnvAPIKey) }

// FunctionID returns the function's id.
func FunctionID() (string, error) { return String(EnvFunctionID) }

// FunctionName returns the function's name.
func FunctionName() (string, error) { return String(EnvFunctionName) }

// Deployment returns the active deployment id.
func Deployment() (string, error) { return String(EnvDeployment) }

// ProjectID returns the owning project's id.
func ProjectID() (string, error) { return String(EnvProjectID) }

// RuntimeName returns the runtime's name.
func RuntimeName() (string, error) { return String(EnvRuntimeName) }

// RuntimeVersion returns the runtime's version.
func RuntimeVersion() (string, error) { return String(EnvRuntimeVersion) }
