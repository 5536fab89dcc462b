// Package testutils provides test helpers: an in-memory Redis, a scripted
// dice roller and game-state fixtures
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/trivia-quest/internal/redis"
)

// TestRedis pairs a miniredis server with a client connected to it
type TestRedis struct {
	Server *miniredis.Miniredis
	Client redis.Client
}

// NewTestRedis starts miniredis for the duration of t. The client and server
// are closed by t.Cleanup.
func NewTestRedis(t testing.TB) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return &TestRedis{Server: mr, Client: client}
}
