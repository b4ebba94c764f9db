package bfunc

// Context is the typed facade over one invocation's [HostContext]. It is
// constructed once per invocation, holds no state of its own and performs no
// caching: every accessor delegates to the underlying host object, so a
// malformed host shape surfaces at the point of use rather than eagerly.
type Context struct {
	host HostContext
}

// New wraps the opaque invocation context in a typed facade.
func New(host HostContext) *Context {
	return &Context{host: host}
}

// Request returns the read-only view over the invocation's request sub-object.
func (c *Context) Request() Request {
	return Request{req: c.host.HostRequest()}
}

// Response returns the response builder for this invocation.
func (c *Context) Response() Response {
	return Response{res: c.host.HostResponse()}
}

// Headers returns the reserved-header projection over the request headers,
// bypassing the request view for convenience.
func (c *Context) Headers() Headers {
	return NewHeaders(c.host.HostRequest().Headers())
}

// Log forwards the message verbatim to the platform's informational log.
func (c *Context) Log(message string) {
	c.host.Log(message)
}

// Error forwards the message verbatim to the platform's error log.
func (c *Context) Error(message string) {
	c.host.Error(message)
}
