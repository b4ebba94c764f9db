package fnwa

import (
	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

// Environment defines the interface that all environment configurations must implement.
// Embed BaseEnvironment in your struct to satisfy this interface.
type Environment interface {
	port() int
	serviceName() string
	logLevel() zapcore.Level
	healthCheckPath() string
}

// BaseEnvironment contains the environment variables the serving layer needs.
// Embed this in your custom environment struct.
type BaseEnvironment struct {
	Port        int           `env:"PORT" envDefault:"3000"`
	ServiceName string        `env:"BFUNC_SERVICE_NAME" envDefault:"function"`
	LogLevel    zapcore.Level `env:"BFUNC_LOG_LEVEL" envDefault:"info"`
	// HealthCheckPath is served with a plain 200 next to the function endpoint
	// so container orchestrators can probe readiness without invoking the
	// function.
	HealthCheckPath string `env:"BFUNC_HEALTH_CHECK_PATH" envDefault:"/__health"`
}

func (e BaseEnvironment) port() int {
	return e.Port
}

func (e BaseEnvironment) serviceName() string {
	return e.ServiceName
}

func (e BaseEnvironment) logLevel() zapcore.Level {
	return e.LogLevel
}

func (e BaseEnvironment) healthCheckPath() string {
	return e.HealthCheckPath
}

var _ Environment = BaseEnvironment{}

// ParseEnv parses environment variables into the given Environment type.
func ParseEnv[E Environment]() func() (E, error) {
	return func() (e E, err error) {
		if err := env.Parse(&e); err != nil {
			return e, errors.Wrap(err, "failed to parse environment")
		}
		return e, nil
	}
}
