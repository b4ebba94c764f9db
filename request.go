package bfunc

import "github.com/tidwall/gjson"

// Request is a read-only projection over the request sub-object of the
// invocation context. Every getter is a direct pass-through read: idempotent,
// side-effect free and stable for the lifetime of one invocation.
type Request struct {
	req HostRequest
}

// BodyText returns the raw request body, verbatim.
func (r Request) BodyText() string { return r.req.BodyText() }

// BodyJSON returns the host-parsed JSON body, or the raw body string when the
// body is not valid JSON. The wrapper does not re-validate.
func (r Request) BodyJSON() any { return r.req.BodyJSON() }

// BodyBinary returns the raw request body bytes.
func (r Request) BodyBinary() []byte { return r.req.BodyBinary() }

// BodyPath looks up a single field in the JSON body by gjson path, e.g.
// "user.name" or "items.0.id". The result reports Exists() false when the body
// is not JSON or the path is absent.
func (r Request) BodyPath(path string) gjson.Result {
	return gjson.Get(r.req.BodyText(), path)
}

// Headers returns the raw header mapping, keys lower-cased by the host.
func (r Request) Headers() map[string]any { return r.req.Headers() }

// Scheme returns the request scheme as derived by the host from the
// forwarded-protocol header.
func (r Request) Scheme() string { return r.req.Scheme() }

// Method returns the HTTP method, verbatim uppercase token.
func (r Request) Method() string { return r.req.Method() }

// URL returns the full request URL including the query.
func (r Request) URL() string { return r.req.URL() }

// Host returns the hostname portion of the Host header.
func (r Request) Host() string { return r.req.Host() }

// Port returns the port portion of the Host header.
func (r Request) Port() int { return r.req.Port() }

// Path returns the URL path component.
func (r Request) Path() string { return r.req.Path() }

// QueryString returns the raw query substring without the leading "?".
func (r Request) QueryString() string { return r.req.QueryString() }

// Query returns the host-parsed query parameters.
func (r Request) Query() map[string]any { return r.req.Query() }
