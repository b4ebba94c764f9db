package bfunc

// HostContext describes the exact shape of the opaque object a serverless host
// passes into a function invocation: a request sub-object, a response builder
// and two logging entry points. The typed facade in this package is implemented
// against this interface so it never touches untyped host data directly; an
// adapter at the host boundary (see the fnwa package) produces implementations.
type HostContext interface {
	HostRequest() HostRequest
	HostResponse() HostResponse

	// Log and Error forward a single line to the platform's informational and
	// error log streams. They never fail on behalf of the caller.
	Log(message string)
	Error(message string)
}

// HostRequest is the request sub-object of the invocation context. All values
// are produced by the host; header keys are lower-cased by the host.
type HostRequest interface {
	BodyText() string

	// BodyJSON returns the host-parsed JSON body, or the raw body string when
	// the body is not valid JSON.
	BodyJSON() any

	BodyBinary() []byte
	Headers() map[string]any
	Scheme() string
	Method() string
	URL() string
	Host() string
	Port() int
	Path() string
	QueryString() string
	Query() map[string]any
}

// HostResponse is the response-builder sub-object. Every method immediately
// produces the platform-native response artifact for this invocation; there is
// no buffering or intermediate representation. The artifact is opaque to this
// package and must be returned up to the host's invocation boundary.
//
// Status codes are explicit here; the default-resolution for optional statuses
// happens in [Response], so host implementations stay trivial.
type HostResponse interface {
	Empty() any
	JSON(body map[string]any, status int) any
	Binary(body []byte, status int) any
	Redirect(url string, status int) any
	Text(body string, status int, headers map[string]string) any
}
