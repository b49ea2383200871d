// Package scheduler runs background jobs on a wall-clock schedule.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrInvalidConfig is returned when the trigger configuration is unusable
var ErrInvalidConfig = errors.New("invalid scheduler configuration")

// Job is the work run by a trigger. It must honour ctx cancellation.
type Job func(ctx context.Context) error

// DailyConfig holds configuration for a once-a-day trigger
type DailyConfig struct {
	// Hour and Minute are local wall-clock time, 24h format
	Hour   int
	Minute int

	// CheckInterval is how often the clock is checked
	CheckInterval time.Duration

	// Timeout bounds a single run; zero means no limit
	Timeout time.Duration
}

func (c DailyConfig) validate() error {
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.CheckInterval <= 0 {
		return ErrInvalidConfig
	}
	return nil
}

// DailyTrigger runs a job once per day at a fixed time. A day whose slot was
// missed while the process was down is not caught up.
type DailyTrigger struct {
	name   string
	config DailyConfig
	job    Job
	logger *zap.Logger
	now    func() time.Time

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunDate string
}

// NewDailyTrigger creates a trigger; name labels its log lines
func NewDailyTrigger(name string, config DailyConfig, job Job, logger *zap.Logger) (*DailyTrigger, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrInvalidConfig
	}
	return &DailyTrigger{
		name:   name,
		config: config,
		job:    job,
		logger: logger.With(zap.String("trigger", name)),
		now:    time.Now,
	}, nil
}

// Start launches the clock loop. Calling Start twice is a no-op.
func (d *DailyTrigger) Start(ctx context.Context) {
	d.mu.Lock()
	if d.isRunning {
		d.mu.Unlock()
		return
	}
	d.isRunning = true
	ctx, d.cancel = context.WithCancel(ctx)
	d.mu.Unlock()

	d.wg.Add(1)
	go d.runLoop(ctx)

	d.logger.Info("Daily trigger started",
		zap.Int("hour", d.config.Hour),
		zap.Int("minute", d.config.Minute),
		zap.Duration("check_interval", d.config.CheckInterval),
	)
}

// Stop cancels a running job and waits for the loop to exit or ctx to end
func (d *DailyTrigger) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.isRunning {
		d.mu.Unlock()
		return nil
	}
	d.isRunning = false
	cancel := d.cancel
	d.mu.Unlock()

	cancel()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("Daily trigger stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Daily trigger stop timed out")
		return ctx.Err()
	}
}

func (d *DailyTrigger) runLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.checkAndRun(ctx)
		}
	}
}

// checkAndRun runs the job when the clock is at the configured minute and the
// job has not run yet today. It reports whether the job was started.
func (d *DailyTrigger) checkAndRun(ctx context.Context) bool {
	now := d.now()
	today := now.Format("2006-01-02")

	d.mu.Lock()
	if d.lastRunDate == today || now.Hour() != d.config.Hour || now.Minute() != d.config.Minute {
		d.mu.Unlock()
		return false
	}
	d.lastRunDate = today
	d.mu.Unlock()

	d.run(ctx)
	return true
}

func (d *DailyTrigger) run(ctx context.Context) {
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	start := d.now()
	d.logger.Info("Scheduled job started")
	if err := d.job(ctx); err != nil {
		d.logger.Error("Scheduled job failed", zap.Duration("duration", d.now().Sub(start)), zap.Error(err))
		return
	}
	d.logger.Info("Scheduled job completed", zap.Duration("duration", d.now().Sub(start)))
}
