package report

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var hundred = decimal.NewFromInt(100)

// AnalyticsService reports batch profitability from the stored batch totals.
// Totals are as fresh as the last recompute of each batch.
type AnalyticsService struct {
	batches inventory.BatchRepository
	logger  *zap.Logger
}

// NewAnalyticsService creates an analytics service
func NewAnalyticsService(batches inventory.BatchRepository, logger *zap.Logger) *AnalyticsService {
	return &AnalyticsService{batches: batches, logger: logger}
}

// BatchProfitability lists batches with their totals, most profitable first
// unless the filter orders otherwise
func (s *AnalyticsService) BatchProfitability(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (*shared.Paginated[BatchProfitability], error) {
	f := filter.Normalize()
	if f.OrderBy == "" {
		f.OrderBy, f.OrderDir = "profit", "desc"
	}
	batches, err := s.batches.FindAll(ctx, companyID, f)
	if err != nil {
		s.logger.Error("Failed to list batch profitability", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list batches", err)
	}
	total, err := s.batches.Count(ctx, companyID, f)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count batches", err)
	}

	items := make([]BatchProfitability, len(batches))
	for i, b := range batches {
		items[i] = toProfitability(b)
	}
	page := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &page, nil
}

func toProfitability(b *inventory.Batch) BatchProfitability {
	margin := decimal.Zero
	if b.TotalSalePrice.IsPositive() {
		margin = b.Profit.Mul(hundred).Div(b.TotalSalePrice).Round(2)
	}
	return BatchProfitability{
		BatchID:         b.ID,
		BatchNo:         b.BatchNo,
		TotalCost:       b.TotalCost,
		TotalSalePrice:  b.TotalSalePrice,
		TotalInvestment: b.TotalInvestment,
		TotalExpense:    b.TotalExpense,
		Profit:          b.Profit,
		MarginPercent:   margin,
	}
}
