package bfunc

import (
	"errors"
	"fmt"
)

// Kind discriminates the validation failures this library produces. It can be
// used to handle failures structurally instead of matching on messages.
type Kind int

const (
	KindUnknown Kind = iota

	// KindMissingVariable: an environment variable was read but is not set.
	KindMissingVariable

	// KindInvalidBool: an environment variable holds a value that is not one
	// of "true", "1", "false" or "0".
	KindInvalidBool

	// KindInvalidInt: an environment variable holds a value that does not
	// parse as a base-10 integer.
	KindInvalidInt

	// KindInvalidFloat: an environment variable holds a value that does not
	// parse as a floating-point number.
	KindInvalidFloat

	// KindHeaderTypeMismatch: a required header value is absent or does not
	// match the declared type.
	KindHeaderTypeMismatch
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingVariable:
		return "missing variable"
	case KindInvalidBool:
		return "invalid boolean"
	case KindInvalidInt:
		return "invalid integer"
	case KindInvalidFloat:
		return "invalid float"
	case KindHeaderTypeMismatch:
		return "header type mismatch"
	default:
		return "unknown"
	}
}

// Error describes a validation failure with a discriminated kind and the
// offending key embedded, so failure handling is explicit and testable.
type Error struct {
	kind Kind
	key  string
	msg  string
}

// NewMissingVariableError inits an error for an unset environment variable.
func NewMissingVariableError(key string) *Error {
	return &Error{
		kind: KindMissingVariable,
		key:  key,
		msg:  fmt.Sprintf("environment variable %q is not set", key),
	}
}

// NewInvalidBoolError inits an error for a variable that is not a valid boolean.
func NewInvalidBoolError(key, value string) *Error {
	return &Error{
		kind: KindInvalidBool,
		key:  key,
		msg:  fmt.Sprintf("environment variable %q is not a valid boolean: %q", key, value),
	}
}

// NewInvalidIntError inits an error for a variable that is not a valid integer.
func NewInvalidIntError(key, value string) *Error {
	return &Error{
		kind: KindInvalidInt,
		key:  key,
		msg:  fmt.Sprintf("environment variable %q is not a valid integer: %q", key, value),
	}
}

// NewInvalidFloatError inits an error for a variable that is not a valid float.
func NewInvalidFloatError(key, value string) *Error {
	return &Error{
		kind: KindInvalidFloat,
		key:  key,
		msg:  fmt.Sprintf("environment variable %q is not a valid float: %q", key, value),
	}
}

// NewTypeMismatchError inits an error for a header value that is absent or of
// another runtime type than declared.
func NewTypeMismatchError(key, expected, actual string) *Error {
	return &Error{
		kind: KindHeaderTypeMismatch,
		key:  key,
		msg:  fmt.Sprintf("header %q expected value of type %s but holds %s", key, expected, actual),
	}
}

// Kind returns the discriminated kind of the failure.
func (e *Error) Kind() Kind { return e.kind }

// Key returns the environment variable or header name the failure is about.
func (e *Error) Key() string { return e.key }

func (e *Error) Error() string { return e.msg }

// KindOf returns the error's kind if it is or wraps an [*Error] and
// [KindUnknown] otherwise.
func KindOf(err error) Kind {
	if verr, ok := asError(err); ok {
		return verr.Kind()
	}
	return KindUnknown
}

// asError uses errors.As to unwrap any error and look for an [*Error].
func asError(err error) (*Error, bool) {
	var verr *Error
	ok := errors.As(err, &verr)
	return verr, ok
}
