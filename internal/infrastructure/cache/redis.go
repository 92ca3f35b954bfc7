package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	refreshPrefix = "session:refresh:"
	resetPrefix   = "session:reset:"

	DefaultResetTTL = 15 * time.Minute
)

// TokenCache хранит выданные refresh-токены и одноразовые reset-токены.
// TTL refresh-записи должен совпадать со сроком жизни самого токена,
// поэтому он приходит снаружи, а не зашит здесь.
type TokenCache struct {
	client     *redis.Client
	refreshTTL time.Duration
	resetTTL   time.Duration
}

func NewTokenCache(client *redis.Client, refreshTTL, resetTTL time.Duration) *TokenCache {
	if resetTTL == 0 {
		resetTTL = DefaultResetTTL
	}
	return &TokenCache{
		client:     client,
		refreshTTL: refreshTTL,
		resetTTL:   resetTTL,
	}
}

func (c *TokenCache) SaveRefresh(ctx context.Context, userID string, refreshToken string) error {
	return c.client.Set(ctx, refreshPrefix+refreshToken, userID, c.refreshTTL).Err()
}

// CheckRefresh возвращает userID, на которого выписан токен.
// Отозванный или истекший токен — redis.Nil.
func (c *TokenCache) CheckRefresh(ctx context.Context, refreshToken string) (string, error) {
	return c.client.Get(ctx, refreshPrefix+refreshToken).Result()
}

func (c *TokenCache) DeleteRefresh(ctx context.Context, refreshToken string) error {
	return c.client.Del(ctx, refreshPrefix+refreshToken).Err()
}

func (c *TokenCache) SaveResetToken(ctx context.Context, token string, userID string) error {
	return c.client.Set(ctx, resetPrefix+token, userID, c.resetTTL).Err()
}

func (c *TokenCache) GetResetToken(ctx context.Context, token string) (string, error) {
	return c.client.Get(ctx, resetPrefix+token).Result()
}

func (c *TokenCache) DeleteResetToken(ctx context.Context, token string) error {
	return c.client.Del(ctx, resetPrefix+token).Err()
}
