package bfunc

import "net/http"

// Response builds the platform response artifact for one invocation. Every
// method call is terminal: it immediately produces the host's opaque artifact,
// which the function must return up to the invocation boundary. The host
// expects at most one response per invocation; calling more than one method on
// the same builder is a caller error that is not guarded here.
//
// Each operation accepts an optional status-code override as a trailing
// argument; when omitted, the documented default applies.
type Response struct {
	res HostResponse
}

// Empty produces a response with no body and status 204.
func (r Response) Empty() any {
	return r.res.Empty()
}

// JSON produces an application/json response from the given mapping.
// Defaults to status 200.
func (r Response) JSON(body map[string]any, status ...int) any {
	return r.res.JSON(body, statusOr(http.StatusOK, status))
}

// Binary produces a raw byte response. Defaults to status 200.
func (r Response) Binary(body []byte, status ...int) any {
	return r.res.Binary(body, statusOr(http.StatusOK, status))
}

// Redirect produces a redirect to the given URL. Defaults to status 301.
func (r Response) Redirect(url string, status ...int) any {
	return r.res.Redirect(url, statusOr(http.StatusMovedPermanently, status))
}

// HTML produces a text/html response regardless of other arguments.
// Defaults to status 200.
func (r Response) HTML(body string, status ...int) any {
	return r.res.Text(body, statusOr(http.StatusOK, status), map[string]string{
		"content-type": "text/html",
	})
}

// Text produces a plain text response. Defaults to status 200.
func (r Response) Text(body string, status ...int) any {
	return r.res.Text(body, statusOr(http.StatusOK, status), nil)
}

// Success is a text shortcut defaulting to status 200. An empty message sends
// an empty body.
func (r Response) Success(message string, status ...int) any {
	return r.res.Text(message, statusOr(http.StatusOK, status), nil)
}

// Error is a text shortcut defaulting to status 500. An empty message sends an
// empty body.
func (r Response) Error(message string, status ...int) any {
	return r.res.Text(message, statusOr(http.StatusInternalServerError, status), nil)
}

func statusOr(def int, status []int) int {
	if len(status) > 0 {
		return status[0]
	}

	return def
}
