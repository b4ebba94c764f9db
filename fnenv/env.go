// Package fnenv reads platform-supplied configuration from process environment
// variables and converts it to typed values.
//
// Each keyed accessor re-reads the process environment on every call, so
// changes between calls are observable. For configuration that should be read
// once at process start, parse a [Platform] instead.
package fnenv

import (
	"os"
	"strconv"
	"strings"

	"github.com/advdv/bfunc"
)

// String returns the variable's value. It fails with a
// [bfunc.KindMissingVariable] error when the variable is not set. All other
// accessors depend on this for retrieval.
func String(key string) (string, error) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", bfunc.NewMissingVariableError(key)
	}

	return val, nil
}

// Bool parses the variable as a boolean. After lower-casing, "true" and "1"
// yield true, "false" and "0" yield false; any other value fails with a
// [bfunc.KindInvalidBool] error naming the key and value.
func Bool(key string) (bool, error) {
	val, err := String(key)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(val) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, bfunc.NewInvalidBoolError(key, val)
	}
}

// Int parses the variable as a base-10 integer. It fails with a
// [bfunc.KindInvalidInt] error naming the key and value on parse failure.
func Int(key string) (int, error) {
	val, err := String(key)
	if err != nil {
		return 0, err
	}

	num, perr := strconv.Atoi(val)
	if perr != nil {
		return 0, bfunc.NewInvalidIntError(key, val)
	}

	return num, nil
}

// Float64 parses the variable as a floating-point number. It fails with a
// [bfunc.KindInvalidFloat] error naming the key and value on parse failure.
func Float64(key string) (float64, error) {
	val, err := String(key)
	if err != nil {
		return 0, err
	}

	num, perr := strconv.ParseFloat(val, 64)
	if perr != nil {
		return 0, bfunc.NewInvalidFloatError(key, val)
	}

	return num, nil
}
