package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewStore(NewRedisClient(RedisConfig{Address: mr.Addr()}))
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRevokeAndCheck(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Ping(ctx))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"jti-1"))

	mr.FastForward(2 * time.Minute)

	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRevokeExpiredTokenIsNoop(t *testing.T) {
	store, mr := setupStore(t)

	require.NoError(t, store.Revoke(context.Background(), "jti-2", -time.Second))
	assert.False(t, mr.Exists(keyPrefix+"jti-2"))
}

func TestIsRevokedConnectionError(t *testing.T) {
	store, mr := setupStore(t)
	mr.Close()

	_, err := store.IsRevoked(context.Background(), "jti-3")
	assert.Error(t, err)
}
