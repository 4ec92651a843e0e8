package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ErickMayorgaR/Prueba-Genesis/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ── Redis fixed-window rate limiter ──────────────────────────────────────────
// One counter per (scope, client IP, window) key. Keys carry a TTL of one
// window so counters expire on their own. When Redis cannot be
// reached the request is let through.

const rateLimitTimeout = 200 * time.Millisecond

func RateLimiter(rdb redis.Cmdable, scope string, limit int, window time.Duration) gin.HandlerFunc {
	if window < time.Second {
		window = time.Minute
	}
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		now := time.Now()
		bucket := now.Unix() / int64(window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", scope, c.ClientIP(), bucket)

		ctx, cancel := context.WithTimeout(c.Request.Context(), rateLimitTimeout)
		defer cancel()

		var incr *redis.IntCmd
		_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
			incr = p.Incr(ctx, key)
			p.Expire(ctx, key, window)
			return nil
		})
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		count := incr.Val()
		restantes := int64(limit) - count
		if restantes < 0 {
			restantes = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(restantes, 10))

		if count > int64(limit) {
			finVentana := time.Unix((bucket+1)*int64(window.Seconds()), 0)
			c.Header("Retry-After", strconv.Itoa(int(time.Until(finVentana).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Demasiadas solicitudes. Intente nuevamente en un momento."))
			return
		}
		c.Next()
	}
}
