package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisListTest(t *testing.T) (*RedisList, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return NewRedisList(rdb, 15*time.Minute), mr
}

func TestRedisList_RevokeAndLookup(t *testing.T) {
	ctx := context.Background()
	l, _ := newRedisListTest(t)

	ok, err := l.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, l.Revoke(ctx, "tok-1"))
	require.NoError(t, l.Revoke(ctx, "tok-1")) // idempotent

	ok, err = l.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, ok)

	n, err := l.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRedisList_EntriesExpireWithTokenLifetime(t *testing.T) {
	ctx := context.Background()
	l, mr := newRedisListTest(t)

	require.NoError(t, l.Revoke(ctx, "tok-1"))

	// past the token TTL the entry is gone; the token itself has
	// expired by then, so nothing observable changes
	mr.FastForward(16 * time.Minute)

	ok, err := l.IsRevoked(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisList_Clear(t *testing.T) {
	ctx := context.Background()
	l, _ := newRedisListTest(t)

	require.NoError(t, l.Revoke(ctx, "tok-1"))
	require.NoError(t, l.Revoke(ctx, "tok-2"))
	require.NoError(t, l.Clear(ctx))

	n, err := l.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
