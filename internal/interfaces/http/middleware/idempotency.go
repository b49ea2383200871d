package middleware

import (
	"context"
	"time"

	"github.com/dealerdesk/backend/internal/infrastructure/cache"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries a client-chosen key for a write request
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// IdempotencyConfig configures duplicate-submission protection
type IdempotencyConfig struct {
	Store  cache.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects a repeated request carrying an Idempotency-Key the same
// principal already used on the same route. Requests without the header pass
// through. A key whose request failed is released so the client can retry.
// Store errors let the request through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || cfg.Store == nil {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			abortWithError(c, "INVALID_IDEMPOTENCY_KEY", "Idempotency-Key must be at most 128 characters")
			return
		}

		scoped := c.Request.Method + ":" + c.FullPath() + ":" + key
		if p, ok := GetPrincipal(c); ok {
			scoped = p.ID.String() + ":" + scoped
		} else {
			scoped = c.ClientIP() + ":" + scoped
		}

		claimed, err := cfg.Store.Claim(c.Request.Context(), scoped, ttl)
		if err != nil {
			log.Warn("Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			abortWithError(c, "IDEMPOTENCY_KEY_IN_USE", "A request with this Idempotency-Key was already processed")
			return
		}

		c.Next()

		if c.Writer.Status() >= 400 {
			// the request context may already be cancelled
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := cfg.Store.Release(ctx, scoped); err != nil {
				log.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
