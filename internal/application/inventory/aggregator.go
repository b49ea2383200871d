package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ErrBatchNotFound is returned when a batch does not exist within the company
var ErrBatchNotFound = shared.NewDomainError("BATCH_NOT_FOUND", "Batch not found")

// BatchAggregator recomputes the derived totals of batches from the cars,
// sales, investors and expenses that reference them. Recomputes read then
// write without locking; the final write of each total is atomic.
type BatchAggregator struct {
	batches   inventory.BatchRepository
	expenses  inventory.BatchExpenseRepository
	cars      inventory.CarRepository
	customers sales.CustomerRepository
	investors finance.InvestorRepository
	metrics   *telemetry.DealerMetrics
	logger    *zap.Logger
}

// NewBatchAggregator creates a batch aggregator. metrics may be nil.
func NewBatchAggregator(
	batches inventory.BatchRepository,
	expenses inventory.BatchExpenseRepository,
	cars inventory.CarRepository,
	customers sales.CustomerRepository,
	investors finance.InvestorRepository,
	metrics *telemetry.DealerMetrics,
	logger *zap.Logger,
) *BatchAggregator {
	if metrics == nil {
		metrics = telemetry.NewNopDealerMetrics()
	}
	return &BatchAggregator{
		batches:   batches,
		expenses:  expenses,
		cars:      cars,
		customers: customers,
		investors: investors,
		metrics:   metrics,
		logger:    logger,
	}
}

// summer computes one total for a batch and records its source counts on result
type summer func(ctx context.Context, batch *inventory.Batch, result *AggregationResult) (decimal.Decimal, error)

// ComputeTotalCost sums the landed cost of every car in the batch. Cars
// without a financing breakdown count as zero.
func (a *BatchAggregator) ComputeTotalCost(ctx context.Context, companyID, batchID uuid.UUID) (*AggregationResult, error) {
	return a.compute(ctx, inventory.TotalKindCost, companyID, batchID)
}

// ComputeTotalSalePrice sums the sale price of every customer whose vehicle
// is a car of the batch
func (a *BatchAggregator) ComputeTotalSalePrice(ctx context.Context, companyID, batchID uuid.UUID) (*AggregationResult, error) {
	return a.compute(ctx, inventory.TotalKindSalePrice, companyID, batchID)
}

// ComputeTotalInvestment sums the invested amount of every investor of the batch
func (a *BatchAggregator) ComputeTotalInvestment(ctx context.Context, companyID, batchID uuid.UUID) (*AggregationResult, error) {
	return a.compute(ctx, inventory.TotalKindInvestment, companyID, batchID)
}

// ComputeTotalExpense sums the expenses recorded on the batch
func (a *BatchAggregator) ComputeTotalExpense(ctx context.Context, companyID, batchID uuid.UUID) (*AggregationResult, error) {
	return a.compute(ctx, inventory.TotalKindExpense, companyID, batchID)
}

func (a *BatchAggregator) summerFor(kind inventory.TotalKind) summer {
	switch kind {
	case inventory.TotalKindCost:
		return a.sumCost
	case inventory.TotalKindSalePrice:
		return a.sumSalePrice
	case inventory.TotalKindInvestment:
		return a.sumInvestment
	case inventory.TotalKindExpense:
		return a.sumExpense
	}
	return nil
}

func (a *BatchAggregator) compute(ctx context.Context, kind inventory.TotalKind, companyID, batchID uuid.UUID) (*AggregationResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "batch_aggregator", "compute_total_"+string(kind),
		attribute.String(telemetry.AttrCompanyID, companyID.String()),
		attribute.String(telemetry.AttrTotalKind, string(kind)),
	)
	defer span.End()

	result, err := a.run(ctx, kind, companyID, batchID)
	if err != nil {
		telemetry.RecordError(span, err)
		a.metrics.RecordRecompute(ctx, string(kind), "failure")
		return nil, err
	}
	span.SetAttributes(attribute.String(telemetry.AttrBatchNo, result.BatchNo))
	telemetry.SetOK(span)
	a.metrics.RecordRecompute(ctx, string(kind), "success")
	return result, nil
}

func (a *BatchAggregator) run(ctx context.Context, kind inventory.TotalKind, companyID, batchID uuid.UUID) (*AggregationResult, error) {
	sum := a.summerFor(kind)
	if sum == nil {
		return nil, shared.NewDomainError("INVALID_TOTAL_KIND", "Unknown batch total: "+string(kind))
	}

	batch, err := a.batches.FindByIDForCompany(ctx, companyID, batchID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to load batch", err)
	}

	result := &AggregationResult{BatchID: batch.ID, BatchNo: batch.BatchNo}
	total, err := sum(ctx, batch, result)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to compute batch "+string(kind)+" total", err)
	}

	updated, err := a.batches.UpdateTotal(ctx, batch.ID, kind, total)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to save batch total", err)
	}
	result.Total = updated.Total(kind)
	result.Batch = ToBatchDTO(updated)

	a.logger.Debug("Batch total recomputed",
		zap.String("batch_no", batch.BatchNo),
		zap.String("kind", string(kind)),
		zap.String("total", result.Total.StringFixed(2)),
	)
	return result, nil
}

func (a *BatchAggregator) sumCost(ctx context.Context, batch *inventory.Batch, result *AggregationResult) (decimal.Decimal, error) {
	cars, err := a.cars.FindByBatch(ctx, batch.CompanyID, batch.BatchNo)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, car := range cars {
		total = total.Add(car.TotalCost())
	}
	result.CarsCount = len(cars)
	return total, nil
}

func (a *BatchAggregator) sumSalePrice(ctx context.Context, batch *inventory.Batch, result *AggregationResult) (decimal.Decimal, error) {
	cars, err := a.cars.FindByBatch(ctx, batch.CompanyID, batch.BatchNo)
	if err != nil {
		return decimal.Zero, err
	}
	result.CarsCount = len(cars)
	if len(cars) == 0 {
		return decimal.Zero, nil
	}

	chassis := make([]string, len(cars))
	for i, car := range cars {
		chassis[i] = car.ChassisNumber
	}
	customers, err := a.customers.FindByChassisNumbers(ctx, batch.CompanyID, chassis)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, c := range customers {
		total = total.Add(c.Sale.SalePrice)
	}
	result.CustomersCount = len(customers)
	return total, nil
}

func (a *BatchAggregator) sumInvestment(ctx context.Context, batch *inventory.Batch, result *AggregationResult) (decimal.Decimal, error) {
	investors, err := a.investors.FindByBatch(ctx, batch.CompanyID, batch.BatchNo)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, inv := range investors {
		total = total.Add(inv.InvestAmount)
	}
	result.InvestorsCount = len(investors)
	return total, nil
}

func (a *BatchAggregator) sumExpense(ctx context.Context, batch *inventory.Batch, result *AggregationResult) (decimal.Decimal, error) {
	expenses, err := a.expenses.FindByBatch(ctx, batch.ID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	result.ExpensesCount = len(expenses)
	return total, nil
}

// CalculateAllBatchesTotalCost recomputes the cost total of every batch of the
// company, or of every company when companyID is nil
func (a *BatchAggregator) CalculateAllBatchesTotalCost(ctx context.Context, companyID *uuid.UUID) (*SweepReport, error) {
	return a.sweep(ctx, "calculate_all_total_cost", companyID, inventory.TotalKindCost)
}

// CalculateAllBatchesTotalSalePrice recomputes the sale price total of every
// batch of the company, or of every company when companyID is nil
func (a *BatchAggregator) CalculateAllBatchesTotalSalePrice(ctx context.Context, companyID *uuid.UUID) (*SweepReport, error) {
	return a.sweep(ctx, "calculate_all_total_sale_price", companyID, inventory.TotalKindSalePrice)
}

// RecalculateAllBatches recomputes all four totals of every batch
func (a *BatchAggregator) RecalculateAllBatches(ctx context.Context, companyID *uuid.UUID) (*SweepReport, error) {
	return a.sweep(ctx, "recalculate_all", companyID,
		inventory.TotalKindCost,
		inventory.TotalKindSalePrice,
		inventory.TotalKindInvestment,
		inventory.TotalKindExpense,
	)
}

// sweep runs the given computations over every batch in scope. A failing batch
// is reported and the sweep moves on; once ctx is done the remaining batches
// are reported as failed without being computed.
func (a *BatchAggregator) sweep(ctx context.Context, name string, companyID *uuid.UUID, kinds ...inventory.TotalKind) (*SweepReport, error) {
	start := time.Now()
	attrs := []attribute.KeyValue{}
	if companyID != nil {
		attrs = append(attrs, attribute.String(telemetry.AttrCompanyID, companyID.String()))
	}
	ctx, span := telemetry.StartServiceSpan(ctx, "batch_aggregator", name, attrs...)
	defer span.End()

	refs, err := a.batches.ListRefs(ctx, companyID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list batches", err)
	}

	report := &SweepReport{Results: make([]SweepItem, 0, len(refs))}
	for _, ref := range refs {
		item := SweepItem{BatchID: ref.ID, BatchNo: ref.BatchNo, CompanyID: ref.CompanyID, Success: true}
		for _, kind := range kinds {
			if err := ctx.Err(); err != nil {
				item.Success, item.Error = false, err.Error()
				break
			}
			res, err := a.compute(ctx, kind, ref.CompanyID, ref.ID)
			if err != nil {
				item.Success, item.Error = false, err.Error()
				break
			}
			if len(kinds) == 1 {
				total := res.Total
				item.Total = &total
			} else {
				profit := res.Batch.Profit
				item.Profit = &profit
			}
		}

		report.Processed++
		if !item.Success {
			report.Failed++
			a.logger.Warn("Batch recompute failed",
				zap.String("batch_no", ref.BatchNo),
				zap.String("company_id", ref.CompanyID.String()),
				zap.String("error", item.Error),
			)
		}
		report.Results = append(report.Results, item)
	}
	report.Success = report.Failed == 0

	span.SetAttributes(
		attribute.Int(telemetry.AttrBatchCount, report.Processed),
		attribute.Int(telemetry.AttrFailedCount, report.Failed),
	)
	a.metrics.RecordSweep(context.WithoutCancel(ctx), name, time.Since(start), report.Failed)
	a.logger.Info("Batch sweep finished",
		zap.String("sweep", name),
		zap.Int("processed", report.Processed),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", time.Since(start)),
	)
	return report, nil
}
