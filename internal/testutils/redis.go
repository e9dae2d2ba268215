// Package testutils provides fixtures, a scripted dice roller and Redis
// helpers for tests.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, mr := start(t)
	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}

// CreateTestRedis starts miniredis and returns a client plus the server so
// tests can inspect keys directly. Both are closed when the test ends.
func CreateTestRedis(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	client, mr := start(t)
	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})
	return client, mr
}

func start(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	return client, mr
}
