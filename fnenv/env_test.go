package fnenv_test

import (
	"testing"

	"github.com/advdv/bfunc"
	"github.com/advdv/bfunc/fnenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_STR", "hello")
		val, err := fnenv.String("BFUNC_TEST_STR")
		require.NoError(t, err)
		require.Equal(t, "hello", val)
	})

	t.Run("empty value is still set", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_STR", "")
		val, err := fnenv.String("BFUNC_TEST_STR")
		require.NoError(t, err)
		require.Empty(t, val)
	})

	t.Run("not set", func(t *testing.T) {
		_, err := fnenv.String("BFUNC_TEST_UNSET")
		require.Error(t, err)
		require.Equal(t, bfunc.KindMissingVariable, bfunc.KindOf(err))
		assert.Contains(t, err.Error(), `"BFUNC_TEST_UNSET"`)
	})
}

func TestBool(t *testing.T) {
	for _, tt := range []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"TRUE", true},
		{"False", false},
	} {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("BFUNC_TEST_BOOL", tt.raw)
			val, err := fnenv.Bool("BFUNC_TEST_BOOL")
			require.NoError(t, err)
			require.Equal(t, tt.want, val)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_BOOL", "yes")
		_, err := fnenv.Bool("BFUNC_TEST_BOOL")
		require.Error(t, err)
		require.Equal(t, bfunc.KindInvalidBool, bfunc.KindOf(err))
		assert.Contains(t, err.Error(), `"BFUNC_TEST_BOOL"`)
		assert.Contains(t, err.Error(), `"yes"`)
	})

	t.Run("not set", func(t *testing.T) {
		_, err := fnenv.Bool("BFUNC_TEST_UNSET")
		require.Equal(t, bfunc.KindMissingVariable, bfunc.KindOf(err))
	})
}

func TestInt(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_INT", "42")
		val, err := fnenv.Int("BFUNC_TEST_INT")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("negative", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_INT", "-7")
		val, err := fnenv.Int("BFUNC_TEST_INT")
		require.NoError(t, err)
		require.Equal(t, -7, val)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_INT", "abc")
		_, err := fnenv.Int("BFUNC_TEST_INT")
		require.Error(t, err)
		require.Equal(t, bfunc.KindInvalidInt, bfunc.KindOf(err))
		assert.Contains(t, err.Error(), `"abc"`)
	})
}

func TestFloat64(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_FLOAT", "3.14")
		val, err := fnenv.Float64("BFUNC_TEST_FLOAT")
		require.NoError(t, err)
		require.InEpsilon(t, 3.14, val, 1e-9)
	})

	t.Run("empty", func(t *testing.T) {
		t.Setenv("BFUNC_TEST_FLOAT", "")
		_, err := fnenv.Float64("BFUNC_TEST_FLOAT")
		require.Error(t, err)
		require.Equal(t, bfunc.KindInvalidFloat, bfunc.KindOf(err))
	})
}

func TestNoCachingBetweenCalls(t *testing.T) {
	t.Setenv("BFUNC_TEST_STR", "first")
	val, err := fnenv.String("BFUNC_TEST_STR")
	require.NoError(t, err)
	require.Equal(t, "first", val)

	t.Setenv("BFUNC_TEST_STR", "second")
	val, err = fnenv.String("BFUNC_TEST_STR")
	require.NoError(t, err)
	require.Equal(t, "second", val)
}
