package bfunc_test

import (
	"testing"

	"github.com/advdv/bfunc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedGetters(t *testing.T) {
	h := bfunc.NewHeaders(map[string]any{
		"x-appwrite-trigger":        "event",
		"x-appwrite-event":          "users.create",
		"x-appwrite-key":            "k1",
		"x-appwrite-user-id":        "u1",
		"x-appwrite-user-jwt":       "jwt1",
		"x-appwrite-country-code":   "NL",
		"x-appwrite-continent-code": "EU",
		"x-appwrite-continent-eu":   "true",
		"x-appwrite-client-ip":      "10.0.0.1",
		"x-appwrite-execution-id":   "abc123",
	})

	assert.Equal(t, "event", h.Trigger())
	assert.Equal(t, "users.create", h.Event())
	assert.Equal(t, "k1", h.Key())
	assert.Equal(t, "u1", h.UserID())
	assert.Equal(t, "jwt1", h.UserJWT())
	assert.Equal(t, "NL", h.CountryCode())
	assert.Equal(t, "EU", h.ContinentCode())
	assert.Equal(t, "true", h.ContinentEU())
	assert.Equal(t, "10.0.0.1", h.ClientIP())
	assert.Equal(t, "abc123", h.ExecutionID())
}

func TestNamedGettersAbsent(t *testing.T) {
	h := bfunc.NewHeaders(map[string]any{
		"x-appwrite-trigger":      "event",
		"x-appwrite-execution-id": "abc123",
	})

	assert.Equal(t, "event", h.Trigger())
	assert.Equal(t, "abc123", h.ExecutionID())

	assert.Empty(t, h.UserID())
	assert.Empty(t, h.Key())
	assert.Empty(t, h.UserJWT())
	assert.Empty(t, h.CountryCode())
	assert.Empty(t, h.ContinentCode())
	assert.Empty(t, h.ContinentEU())
	assert.Empty(t, h.ClientIP())
	assert.Nil(t, h.Event())
}

func TestEscapeHatches(t *testing.T) {
	h := bfunc.NewHeaders(map[string]any{
		"x-custom-a": "one",
		"x-custom-b": 2,
	})

	require.Equal(t, "one", h.Get("x-custom-a"))
	require.Equal(t, 2, h.Get("x-custom-b"))
	require.Nil(t, h.Get("x-custom-c"))

	require.True(t, h.Has("x-custom-a"))
	require.False(t, h.Has("x-custom-c"))
	require.Equal(t, 2, h.Len())

	require.ElementsMatch(t, []string{"x-custom-a", "x-custom-b"}, h.Keys())
	require.ElementsMatch(t, []any{"one", 2}, h.Values())
	require.Equal(t, map[string]any{"x-custom-a": "one", "x-custom-b": 2}, h.Entries())
}

func TestRequire(t *testing.T) {
	h := bfunc.NewHeaders(map[string]any{
		"x-appwrite-trigger": "http",
		"x-retry-count":      3,
	})

	t.Run("present and matching", func(t *testing.T) {
		val, err := bfunc.Require[string](h, "x-appwrite-trigger")
		require.NoError(t, err)
		require.Equal(t, "http", val)

		num, err := bfunc.Require[int](h, "x-retry-count")
		require.NoError(t, err)
		require.Equal(t, 3, num)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := bfunc.Require[string](h, "x-retry-count")
		require.Error(t, err)
		require.Equal(t, bfunc.KindHeaderTypeMismatch, bfunc.KindOf(err))
		assert.Contains(t, err.Error(), `"x-retry-count"`)
		assert.Contains(t, err.Error(), "string")
		assert.Contains(t, err.Error(), "int")
	})

	t.Run("absent", func(t *testing.T) {
		_, err := bfunc.Require[string](h, "x-missing")
		require.Error(t, err)
		require.Equal(t, bfunc.KindHeaderTypeMismatch, bfunc.KindOf(err))
		assert.Contains(t, err.Error(), `"x-missing"`)
		assert.Contains(t, err.Error(), "<absent>")
	})
}
