// Package bfunc provides a typed facade over the opaque execution context a
// serverless host passes into a function invocation.
//
// # Overview
//
// Serverless platforms hand a function a single dynamically-shaped object
// bundling the inbound request, a response builder and logging hooks. bfunc
// presents that object through a fixed, documented surface so function authors
// get compile-time guarantees, discoverable fields and consistent parsing
// instead of ad-hoc dynamic lookups.
//
// A minimal function:
//
//	func handle(c *bfunc.Context) (any, error) {
//	    c.Log("invoked by " + c.Headers().Trigger())
//
//	    if c.Request().Method() == "POST" {
//	        name := c.Request().BodyPath("name").String()
//	        return c.Response().JSON(map[string]any{"hello": name}), nil
//	    }
//
//	    return c.Response().Text("pong"), nil
//	}
//
// # Host Shape
//
// The core never touches untyped host data directly. [HostContext],
// [HostRequest] and [HostResponse] describe the exact shape the host object
// must expose; an adapter at the host boundary (the fnwa subpackage provides
// one for HTTP-invoked runtimes) implements them. Shape validation is lazy: a
// missing host field surfaces at the point of use as whatever error the host
// binding produces, never as a wrapper-level check.
//
// # Response Builder
//
// Every [Response] method is terminal for the invocation: it produces the
// host-native artifact immediately and the function must return it unchanged.
// Methods take an optional trailing status override:
//
//	return c.Response().Redirect("https://example.org", 308), nil
//	return c.Response().HTML("<h1>hi</h1>"), nil // always text/html, status 200
//
// # Reserved Headers
//
// [Headers] exposes named getters for the platform's reserved x-appwrite-*
// headers plus raw escape hatches. [Require] asserts a declared type against an
// untyped value at lookup time:
//
//	jwt, err := bfunc.Require[string](c.Headers(), bfunc.HeaderUserJWT)
//	if err != nil { // key, expected and actual type are in the message
//	    return c.Response().Error("unauthorized", 401), nil
//	}
//
// # Errors
//
// Validation failures are explicit [*Error] values with a discriminated [Kind]
// (missing variable, invalid boolean/integer/float, header type mismatch)
// carrying the offending key. [KindOf] unwraps them for structural handling.
// The convention for function authors is to log via [Context.Error] and
// produce a textual error response rather than panic.
//
// # Environment
//
// The fnenv subpackage reads platform-supplied configuration from process
// environment variables, either per key ([fnenv.String], [fnenv.Bool], ...) or
// parsed once at startup into a [fnenv.Platform] struct.
package bfunc
