package telemetry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const meterName = "github.com/dealerdesk/backend"

// MeterProvider wraps the OpenTelemetry MeterProvider with lifecycle management
type MeterProvider struct {
	provider *sdkmetric.MeterProvider
	logger   *zap.Logger
}

// NewMeterProvider creates the meter provider and installs it globally.
// When metrics are disabled the global no-op provider is left in place.
func NewMeterProvider(ctx context.Context, cfg Config, interval time.Duration, logger *zap.Logger) (*MeterProvider, error) {
	mp := &MeterProvider{logger: logger}

	if !cfg.Enabled {
		logger.Info("Metrics disabled, using no-op meter provider")
		return mp, nil
	}
	if interval <= 0 {
		interval = 60 * time.Second
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.CollectorEndpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	mp.provider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)
	otel.SetMeterProvider(mp.provider)

	logger.Info("OpenTelemetry MeterProvider initialized",
		zap.String("collector_endpoint", cfg.CollectorEndpoint),
		zap.Duration("export_interval", interval),
	)
	return mp, nil
}

// Meter returns the application meter
func (mp *MeterProvider) Meter() metric.Meter {
	if mp.provider == nil {
		return otel.GetMeterProvider().Meter(meterName)
	}
	return mp.provider.Meter(meterName)
}

// Shutdown flushes pending metrics and stops the exporter
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if mp.provider == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := mp.provider.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown meter provider: %w", err)
	}
	mp.logger.Info("OpenTelemetry MeterProvider shutdown complete")
	return nil
}

// IsEnabled returns whether metrics are exported
func (mp *MeterProvider) IsEnabled() bool {
	return mp.provider != nil
}

// DealerMetrics holds the business instruments of the back office
type DealerMetrics struct {
	recomputes    metric.Int64Counter
	sweepDuration metric.Float64Histogram
	payments      metric.Int64Counter
	paymentAmount metric.Float64Counter
	logins        metric.Int64Counter
}

// NewDealerMetrics registers the business instruments on the meter
func NewDealerMetrics(meter metric.Meter) (*DealerMetrics, error) {
	m := &DealerMetrics{}
	var err error

	if m.recomputes, err = meter.Int64Counter("dealer_batch_recompute_total",
		metric.WithDescription("Batch total recomputations by kind and outcome"),
		metric.WithUnit("{recompute}"),
	); err != nil {
		return nil, err
	}
	if m.sweepDuration, err = meter.Float64Histogram("dealer_batch_sweep_duration_seconds",
		metric.WithDescription("Duration of batch recompute sweeps"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60),
	); err != nil {
		return nil, err
	}
	if m.payments, err = meter.Int64Counter("dealer_payments_recorded_total",
		metric.WithDescription("Installments recorded by payment method"),
		metric.WithUnit("{payment}"),
	); err != nil {
		return nil, err
	}
	if m.paymentAmount, err = meter.Float64Counter("dealer_payments_amount_total",
		metric.WithDescription("Sum of recorded installment amounts"),
	); err != nil {
		return nil, err
	}
	if m.logins, err = meter.Int64Counter("dealer_login_total",
		metric.WithDescription("Login attempts by role and outcome"),
		metric.WithUnit("{login}"),
	); err != nil {
		return nil, err
	}
	return m, nil
}

// NewNopDealerMetrics returns instruments bound to the no-op meter
func NewNopDealerMetrics() *DealerMetrics {
	m, _ := NewDealerMetrics(otel.GetMeterProvider().Meter(meterName))
	return m
}

// RecordRecompute counts one batch total computation
func (m *DealerMetrics) RecordRecompute(ctx context.Context, kind, outcome string) {
	m.recomputes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

// RecordSweep records the duration of a sweep over many batches
func (m *DealerMetrics) RecordSweep(ctx context.Context, kind string, d time.Duration, failed int) {
	outcome := "success"
	if failed > 0 {
		outcome = "partial"
	}
	m.sweepDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

// RecordPayment counts an installment and adds its amount
func (m *DealerMetrics) RecordPayment(ctx context.Context, method string, amount float64) {
	attrs := metric.WithAttributes(attribute.String("method", method))
	m.payments.Add(ctx, 1, attrs)
	m.paymentAmount.Add(ctx, amount, attrs)
}

// RecordLogin counts a login attempt
func (m *DealerMetrics) RecordLogin(ctx context.Context, role, outcome string) {
	m.logins.Add(ctx, 1, metric.WithAttributes(
		attribute.String("role", role),
		attribute.String("outcome", outcome),
	))
}

// RegisterPoolMetrics observes the database connection pool
func RegisterPoolMetrics(meter metric.Meter, db *sql.DB) error {
	open, err := meter.Int64ObservableGauge("dealer_db_connections_open",
		metric.WithDescription("Open database connections"))
	if err != nil {
		return err
	}
	inUse, err := meter.Int64ObservableGauge("dealer_db_connections_in_use",
		metric.WithDescription("Database connections in use"))
	if err != nil {
		return err
	}
	waits, err := meter.Int64ObservableCounter("dealer_db_connections_wait_total",
		metric.WithDescription("Connections waited for"))
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := db.Stats()
		o.ObserveInt64(open, int64(stats.OpenConnections))
		o.ObserveInt64(inUse, int64(stats.InUse))
		o.ObserveInt64(waits, stats.WaitCount)
		return nil
	}, open, inUse, waits)
	return err
}
