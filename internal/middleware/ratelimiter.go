package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RateLimiter struct {
	redisClient *redis.Client
	log         *zap.SugaredLogger
}

func NewRateLimiter(client *redis.Client, log *zap.SugaredLogger) *RateLimiter {
	return &RateLimiter{redisClient: client, log: log}
}

// Limit — скользящее окно на счетчике: INCR + ExpireNX одним пайплайном,
// TTL ставится только при первом запросе в окне. Если Redis недоступен,
// пропускаем запрос (лимитер не должен ронять вход в систему).
func (rl *RateLimiter) Limit(action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s:%s", action, c.ClientIP())

		pipe := rl.redisClient.TxPipeline()
		incr := pipe.Incr(c, key)
		pipe.ExpireNX(c, key, window)
		if _, err := pipe.Exec(c); err != nil {
			rl.log.Warnw("rate limiter unavailable, letting request through", "action", action, "error", err)
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			ttl, _ := rl.redisClient.TTL(c, key).Result()
			retryAfter := int(ttl.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":               "Too many requests",
				"retry_after_seconds": retryAfter,
			})
			return
		}
		c.Next()
	}
}
