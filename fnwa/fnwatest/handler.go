package fnwatest

import (
	"net/http"
	"testing"

	"github.com/advdv/bfunc"
	"github.com/advdv/bfunc/fnwa"
)

// Invoke runs a [bfunc.Handler] against a synthetic invocation built from req,
// without a server. It handles the boilerplate of adapting the request into
// the opaque host context and panics on adapter or handler errors, mirroring
// how an unhandled error would abort the invocation.
//
// The returned [*bfunc.TestLogger] holds the log lines the handler forwarded.
func Invoke(tb testing.TB, handler bfunc.Handler, req *http.Request) (any, *bfunc.TestLogger) {
	tb.Helper()

	logs := bfunc.NewTestLogger(tb)

	host, err := fnwa.NewHostContext(req, logs)
	if err != nil {
		panic("fnwatest: failed to adapt request: " + err.Error())
	}

	out, err := handler.ServeInvocation(bfunc.New(host))
	if err != nil {
		panic("fnwatest: handler returned error: " + err.Error())
	}

	return out, logs
}
