package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TokenBlacklist revokes session tokens before they expire
type TokenBlacklist interface {
	// AddToBlacklist revokes a single token by JTI; ttl should be the token's remaining lifetime
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error

	// IsBlacklisted checks if a token's JTI has been revoked
	IsBlacklisted(ctx context.Context, jti string) (bool, error)

	// InvalidateSubject revokes every token of a subject issued before now. The
	// subject is a principal id, or "company:<id>" for all sessions of a company.
	InvalidateSubject(ctx context.Context, subject string, ttl time.Duration) error

	// IsSubjectInvalidated reports whether a token issued at issuedAt predates
	// the subject's last invalidation
	IsSubjectInvalidated(ctx context.Context, subject string, issuedAt time.Time) (bool, error)
}

// CompanySubject is the invalidation subject covering every session of a company
func CompanySubject(companyID string) string {
	return "company:" + companyID
}

// issuedBefore compares at second granularity since JWT iat carries whole seconds.
// A token minted in the same second as the invalidation stays valid.
func issuedBefore(issuedAt time.Time, invalidatedAt int64) bool {
	return issuedAt.Unix() < invalidatedAt
}

// RedisTokenBlacklist implements TokenBlacklist using Redis
type RedisTokenBlacklist struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisTokenBlacklist connects to Redis and creates a token blacklist
func NewRedisTokenBlacklist(cfg config.RedisConfig) (*RedisTokenBlacklist, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 3,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis for token blacklist: %w", err)
	}

	return NewRedisTokenBlacklistWithClient(client), nil
}

// NewRedisTokenBlacklistWithClient creates a token blacklist with an existing Redis client
func NewRedisTokenBlacklistWithClient(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{
		client:    client,
		keyPrefix: "session:revoked:",
	}
}

func (b *RedisTokenBlacklist) jtiKey(jti string) string {
	return b.keyPrefix + "jti:" + jti
}

func (b *RedisTokenBlacklist) subjectKey(subject string) string {
	return b.keyPrefix + "subject:" + subject
}

// AddToBlacklist adds a token's JTI to the blacklist
func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := b.client.Set(ctx, b.jtiKey(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to add token to blacklist: %w", err)
	}
	return nil
}

// IsBlacklisted checks if a token's JTI is in the blacklist
func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := b.client.Exists(ctx, b.jtiKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return exists > 0, nil
}

// InvalidateSubject stores the current Unix time as the subject's invalidation point
func (b *RedisTokenBlacklist) InvalidateSubject(ctx context.Context, subject string, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.subjectKey(subject), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to invalidate sessions: %w", err)
	}
	return nil
}

// IsSubjectInvalidated checks the token's issue time against the stored invalidation point
func (b *RedisTokenBlacklist) IsSubjectInvalidated(ctx context.Context, subject string, issuedAt time.Time) (bool, error) {
	raw, err := b.client.Get(ctx, b.subjectKey(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session invalidation: %w", err)
	}
	invalidatedAt, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse invalidation timestamp: %w", err)
	}
	return issuedBefore(issuedAt, invalidatedAt), nil
}

// Close closes the Redis client
func (b *RedisTokenBlacklist) Close() error {
	return b.client.Close()
}

// Ping checks the Redis connection, used by the health check
func (b *RedisTokenBlacklist) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

var _ TokenBlacklist = (*RedisTokenBlacklist)(nil)

// InMemoryTokenBlacklist keeps revocations in process memory. Revocations are
// lost on restart and are not shared between instances.
type InMemoryTokenBlacklist struct {
	mu       sync.Mutex
	jtis     map[string]time.Time // JTI -> expiration time
	subjects map[string]subjectInvalidation
}

type subjectInvalidation struct {
	at        int64
	expiresAt time.Time
}

// NewInMemoryTokenBlacklist creates a new in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		jtis:     make(map[string]time.Time),
		subjects: make(map[string]subjectInvalidation),
	}
}

// AddToBlacklist adds a token's JTI to the in-memory blacklist
func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.jtis[jti] = time.Now().Add(ttl)
	return nil
}

// IsBlacklisted checks if a token's JTI is blacklisted and not yet expired
func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expiration, exists := b.jtis[jti]
	if !exists {
		return false, nil
	}
	if time.Now().After(expiration) {
		delete(b.jtis, jti)
		return false, nil
	}
	return true, nil
}

// InvalidateSubject revokes every token of the subject issued before now
func (b *InMemoryTokenBlacklist) InvalidateSubject(_ context.Context, subject string, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subjects[subject] = subjectInvalidation{at: time.Now().Unix(), expiresAt: time.Now().Add(ttl)}
	return nil
}

// IsSubjectInvalidated checks the token's issue time against the subject's invalidation point
func (b *InMemoryTokenBlacklist) IsSubjectInvalidated(_ context.Context, subject string, issuedAt time.Time) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	inv, exists := b.subjects[subject]
	if !exists {
		return false, nil
	}
	if time.Now().After(inv.expiresAt) {
		delete(b.subjects, subject)
		return false, nil
	}
	return issuedBefore(issuedAt, inv.at), nil
}

var _ TokenBlacklist = (*InMemoryTokenBlacklist)(nil)

// NewTokenBlacklist returns a Redis blacklist when Redis is enabled and reachable,
// otherwise an in-memory one. The returned close function is never nil.
func NewTokenBlacklist(cfg config.RedisConfig, log *zap.Logger) (TokenBlacklist, func() error) {
	if !cfg.Enabled {
		log.Info("Redis disabled, keeping session revocations in memory")
		return NewInMemoryTokenBlacklist(), func() error { return nil }
	}
	blacklist, err := NewRedisTokenBlacklist(cfg)
	if err != nil {
		log.Warn("Redis unavailable, keeping session revocations in memory",
			zap.String("addr", cfg.Addr()),
			zap.Error(err),
		)
		return NewInMemoryTokenBlacklist(), func() error { return nil }
	}
	log.Info("Session revocations stored in Redis", zap.String("addr", cfg.Addr()))
	return blacklist, blacklist.Close
}
