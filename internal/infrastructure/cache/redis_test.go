package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, refreshTTL, resetTTL time.Duration) (*TokenCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewTokenCache(rdb, refreshTTL, resetTTL), mr
}

func TestTokenCache_RefreshLifecycle(t *testing.T) {
	c, _ := newTestCache(t, time.Hour, 0)
	ctx := context.Background()

	require.NoError(t, c.SaveRefresh(ctx, "user-1", "tok-abc"))

	userID, err := c.CheckRefresh(ctx, "tok-abc")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	require.NoError(t, c.DeleteRefresh(ctx, "tok-abc"))

	// Отозванный токен больше не проходит
	_, err = c.CheckRefresh(ctx, "tok-abc")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestTokenCache_ResetTokenExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Hour, 0)
	ctx := context.Background()

	require.NoError(t, c.SaveResetToken(ctx, "reset-1", "user-1"))

	userID, err := c.GetResetToken(ctx, "reset-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	// Нулевой resetTTL заменяется дефолтом, после него токен мертв
	mr.FastForward(DefaultResetTTL + time.Second)
	_, err = c.GetResetToken(ctx, "reset-1")
	assert.ErrorIs(t, err, redis.Nil)
}
