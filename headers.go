package bfunc

import (
	"reflect"

	"github.com/samber/lo"
)

// Reserved header names the platform sets on every invocation to carry
// invocation metadata. All keys are lower-case in the backing mapping.
const (
	HeaderTrigger       = "x-appwrite-trigger"
	HeaderEvent         = "x-appwrite-event"
	HeaderKey           = "x-appwrite-key"
	HeaderUserID        = "x-appwrite-user-id"
	HeaderUserJWT       = "x-appwrite-user-jwt"
	HeaderCountryCode   = "x-appwrite-country-code"
	HeaderContinentCode = "x-appwrite-continent-code"
	HeaderContinentEU   = "x-appwrite-continent-eu"
	HeaderClientIP      = "x-appwrite-client-ip"
	HeaderExecutionID   = "x-appwrite-execution-id"
)

// Headers is a read-only projection over the request's header mapping. Keys
// are lower-cased by the host; lookups that bypass the named getters must be
// case-normalized by the caller.
type Headers struct {
	vals map[string]any
}

// NewHeaders wraps a raw header mapping.
func NewHeaders(vals map[string]any) Headers {
	return Headers{vals: vals}
}

// Trigger returns what caused the invocation: "http", "schedule" or "event".
// The platform guarantees it present.
func (h Headers) Trigger() string { return h.text(HeaderTrigger) }

// Event returns the event payload header, present only for event-triggered
// invocations.
func (h Headers) Event() any { return h.Get(HeaderEvent) }

// Key returns the API key header, when present.
func (h Headers) Key() string { return h.text(HeaderKey) }

// UserID returns the invoking user's id. Absent for key- or console-triggered
// invocations.
func (h Headers) UserID() string { return h.text(HeaderUserID) }

// UserJWT returns the invoking user's JWT, when present.
func (h Headers) UserJWT() string { return h.text(HeaderUserJWT) }

// CountryCode returns the caller's country code, when present.
func (h Headers) CountryCode() string { return h.text(HeaderCountryCode) }

// ContinentCode returns the caller's continent code, when present.
func (h Headers) ContinentCode() string { return h.text(HeaderContinentCode) }

// ContinentEU reports "true" or "false" as set by the platform. It is not
// boolean-typed at this layer.
func (h Headers) ContinentEU() string { return h.text(HeaderContinentEU) }

// ClientIP returns the caller's IP address, when present.
func (h Headers) ClientIP() string { return h.text(HeaderClientIP) }

// ExecutionID returns the platform's execution id. The platform guarantees it
// present.
func (h Headers) ExecutionID() string { return h.text(HeaderExecutionID) }

// Get returns the untyped value stored under key, or nil when absent.
func (h Headers) Get(key string) any { return h.vals[key] }

// Has reports whether a value is stored under key.
func (h Headers) Has(key string) bool {
	_, ok := h.vals[key]
	return ok
}

// Len returns the number of headers in the mapping.
func (h Headers) Len() int { return len(h.vals) }

// Keys returns all header names.
func (h Headers) Keys() []string { return lo.Keys(h.vals) }

// Values returns all header values.
func (h Headers) Values() []any { return lo.Values(h.vals) }

// Entries returns a copy of the backing mapping for iteration.
func (h Headers) Entries() map[string]any {
	entries := make(map[string]any, len(h.vals))
	for key, val := range h.vals {
		entries[key] = val
	}

	return entries
}

// text reads a named string header, yielding the zero value when the header is
// absent or not a string. Use [Require] to distinguish those cases.
func (h Headers) text(key string) string {
	s, _ := h.vals[key].(string)
	return s
}

// Require returns the value stored under key asserted to type T. It fails with
// a [KindHeaderTypeMismatch] error naming the key, the expected type and the
// actual runtime type when the value is absent or of another type. This is a
// single-key, single-level assertion; there is no recursive schema checking.
func Require[T any](h Headers, key string) (T, error) {
	var zero T

	expected := reflect.TypeOf((*T)(nil)).Elem().String()

	raw, ok := h.vals[key]
	if !ok {
		return zero, NewTypeMismatchError(key, expected, "<absent>")
	}

	val, ok := raw.(T)
	if !ok {
		return zero, NewTypeMismatchError(key, expected, reflect.TypeOf(raw).String())
	}

	return val, nil
}
