package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInMemoryTokenBlacklist_AddToBlacklist(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "jti-1", time.Hour))

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_ExpiredEntries(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.AddToBlacklist(ctx, "short", time.Millisecond))
	require.NoError(t, blacklist.AddToBlacklist(ctx, "already-expired", 0))
	time.Sleep(10 * time.Millisecond)

	revoked, err := blacklist.IsBlacklisted(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)

	revoked, err = blacklist.IsBlacklisted(ctx, "already-expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_SubjectInvalidation(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()
	subject := auth.CompanySubject("42")
	assert.Equal(t, "company:42", subject)

	issuedEarlier := time.Now().Add(-time.Hour)
	invalidated, err := blacklist.IsSubjectInvalidated(ctx, subject, issuedEarlier)
	require.NoError(t, err)
	assert.False(t, invalidated)

	require.NoError(t, blacklist.InvalidateSubject(ctx, subject, time.Hour))

	invalidated, err = blacklist.IsSubjectInvalidated(ctx, subject, issuedEarlier)
	require.NoError(t, err)
	assert.True(t, invalidated)

	invalidated, err = blacklist.IsSubjectInvalidated(ctx, subject, time.Now().Add(2*time.Second))
	require.NoError(t, err)
	assert.False(t, invalidated, "tokens issued after the invalidation stay valid")

	invalidated, err = blacklist.IsSubjectInvalidated(ctx, "company:43", issuedEarlier)
	require.NoError(t, err)
	assert.False(t, invalidated)
}

func TestInMemoryTokenBlacklist_SubjectInvalidationExpires(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	require.NoError(t, blacklist.InvalidateSubject(ctx, "user-1", time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	invalidated, err := blacklist.IsSubjectInvalidated(ctx, "user-1", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, invalidated)
}

func TestInMemoryTokenBlacklist_Concurrent(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			jti := "jti-" + string(rune('a'+i%26))
			_ = blacklist.AddToBlacklist(ctx, jti, time.Minute)
			_, _ = blacklist.IsBlacklisted(ctx, jti)
			_ = blacklist.InvalidateSubject(ctx, jti, time.Minute)
			_, _ = blacklist.IsSubjectInvalidated(ctx, jti, time.Now())
		}(i)
	}
	wg.Wait()

	revoked, err := blacklist.IsBlacklisted(ctx, "jti-a")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestNewTokenBlacklist_FallsBackToMemory(t *testing.T) {
	blacklist, closeFn := auth.NewTokenBlacklist(config.RedisConfig{Enabled: false}, zap.NewNop())
	require.NotNil(t, closeFn)
	assert.IsType(t, &auth.InMemoryTokenBlacklist{}, blacklist)
	assert.NoError(t, closeFn())
}
