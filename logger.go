package bfunc

import (
	"log"
	"testing"
)

// Logger is the sink a host adapter forwards a function's Log and Error output
// to. Implementations must not fail on behalf of the function.
type Logger interface {
	LogInfo(message string)
	LogError(message string)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogInfo(message string) {
	l.Logger.Printf("bfunc: %s", message)
}

func (l stdLogger) LogError(message string) {
	l.Logger.Printf("bfunc: error: %s", message)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

// TestLogger captures forwarded log lines for assertions in tests.
type TestLogger struct {
	tb testing.TB

	Infos  []string
	Errors []string
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogInfo(message string) {
	l.Infos = append(l.Infos, message)
	l.tb.Logf("bfunc: %s", message)
}

func (l *TestLogger) LogError(message string) {
	l.Errors = append(l.Errors, message)
	l.tb.Logf("bfunc: error: %s", message)
}

var _ Logger = &TestLogger{}
