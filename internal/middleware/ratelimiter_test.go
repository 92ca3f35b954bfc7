package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newLimiterRouter(t *testing.T, limit int, window time.Duration) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	rl := NewRateLimiter(rdb, zap.NewNop().Sugar())

	r := gin.New()
	r.GET("/ping", rl.Limit("ping", limit, window), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, mr
}

func doRequest(r *gin.Engine) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r, mr := newLimiterRouter(t, 2, time.Minute)

	assert.Equal(t, http.StatusOK, doRequest(r))
	assert.Equal(t, http.StatusOK, doRequest(r))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(r))

	// Окно истекло — счетчик умер по TTL, запросы снова проходят
	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, doRequest(r))
}

func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	r, mr := newLimiterRouter(t, 1, time.Minute)
	mr.Close()

	assert.Equal(t, http.StatusOK, doRequest(r))
	assert.Equal(t, http.StatusOK, doRequest(r))
}
