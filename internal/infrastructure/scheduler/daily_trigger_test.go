package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestTrigger(t *testing.T, cfg DailyConfig, job Job) (*DailyTrigger, *fakeClock) {
	t.Helper()
	trigger, err := NewDailyTrigger("test", cfg, job, zap.NewNop())
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)}
	trigger.now = clock.now
	return trigger, clock
}

func TestNewDailyTrigger_Validation(t *testing.T) {
	job := func(context.Context) error { return nil }
	tests := []struct {
		name string
		cfg  DailyConfig
		job  Job
	}{
		{"hour too large", DailyConfig{Hour: 24, CheckInterval: time.Minute}, job},
		{"negative minute", DailyConfig{Minute: -1, CheckInterval: time.Minute}, job},
		{"no check interval", DailyConfig{Hour: 2}, job},
		{"nil job", DailyConfig{Hour: 2, CheckInterval: time.Minute}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDailyTrigger("test", tt.cfg, tt.job, zap.NewNop())
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDailyTrigger_RunsOncePerDay(t *testing.T) {
	var runs atomic.Int32
	trigger, clock := newTestTrigger(t, DailyConfig{Hour: 2, Minute: 30, CheckInterval: time.Minute},
		func(context.Context) error {
			runs.Add(1)
			return nil
		})
	ctx := context.Background()

	clock.t = time.Date(2024, 7, 1, 2, 29, 0, 0, time.Local)
	assert.False(t, trigger.checkAndRun(ctx), "before the slot")

	clock.t = time.Date(2024, 7, 1, 2, 30, 5, 0, time.Local)
	assert.True(t, trigger.checkAndRun(ctx))

	clock.t = time.Date(2024, 7, 1, 2, 30, 45, 0, time.Local)
	assert.False(t, trigger.checkAndRun(ctx), "same day again")

	clock.t = time.Date(2024, 7, 2, 2, 30, 0, 0, time.Local)
	assert.True(t, trigger.checkAndRun(ctx), "next day")

	assert.Equal(t, int32(2), runs.Load())
}

func TestDailyTrigger_FailedRunIsNotRetriedSameDay(t *testing.T) {
	var runs atomic.Int32
	trigger, clock := newTestTrigger(t, DailyConfig{Hour: 1, CheckInterval: time.Minute},
		func(context.Context) error {
			runs.Add(1)
			return errors.New("database unavailable")
		})
	clock.t = time.Date(2024, 7, 1, 1, 0, 0, 0, time.Local)

	assert.True(t, trigger.checkAndRun(context.Background()))
	assert.False(t, trigger.checkAndRun(context.Background()))
	assert.Equal(t, int32(1), runs.Load())
}

func TestDailyTrigger_TimeoutBoundsJob(t *testing.T) {
	var deadline atomic.Bool
	trigger, clock := newTestTrigger(t, DailyConfig{Hour: 3, CheckInterval: time.Minute, Timeout: 10 * time.Millisecond},
		func(ctx context.Context) error {
			<-ctx.Done()
			deadline.Store(errors.Is(ctx.Err(), context.DeadlineExceeded))
			return ctx.Err()
		})
	clock.t = time.Date(2024, 7, 1, 3, 0, 0, 0, time.Local)

	trigger.checkAndRun(context.Background())
	assert.True(t, deadline.Load())
}

func TestDailyTrigger_StartStop(t *testing.T) {
	trigger, _ := newTestTrigger(t, DailyConfig{Hour: 4, CheckInterval: time.Millisecond},
		func(context.Context) error { return nil })

	trigger.Start(context.Background())
	trigger.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, trigger.Stop(ctx))
	require.NoError(t, trigger.Stop(ctx), "stopping twice is a no-op")
}
