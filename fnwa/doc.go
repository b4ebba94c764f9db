// Package fnwa adapts HTTP-invoked serverless runtimes onto the typed bfunc
// core: it turns one inbound *http.Request into the opaque host-context shape
// the core wraps, renders the produced response artifact back onto the wire,
// and provides a batteries-included fx application for serving a single
// function handler locally or inside a runtime container.
//
// Example:
//
//	func main() {
//	    fnwa.NewApp[fnwa.BaseEnvironment](bfunc.HandlerFunc(handle),
//	        fnwa.WithMiddleware(fnwa.WithErrorResponse()),
//	    ).Run()
//	}
package fnwa
