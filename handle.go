package bfunc

// Handler handles one function invocation. The returned artifact is whatever
// the host's response builder produced; the host expects it back unchanged at
// the invocation boundary.
type Handler interface {
	ServeInvocation(c *Context) (any, error)
}

// HandlerFunc allows casting a function to an implementation of [Handler].
type HandlerFunc func(c *Context) (any, error)

// ServeInvocation implements the [Handler] interface.
func (f HandlerFunc) ServeInvocation(c *Context) (any, error) {
	return f(c)
}
