package report

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DashboardService builds the company overview from the stored aggregates
type DashboardService struct {
	batches   inventory.BatchRepository
	cars      inventory.CarRepository
	customers sales.CustomerRepository
	investors finance.InvestorRepository
	logger    *zap.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(
	batches inventory.BatchRepository,
	cars inventory.CarRepository,
	customers sales.CustomerRepository,
	investors finance.InvestorRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{batches: batches, cars: cars, customers: customers, investors: investors, logger: logger}
}

// Summary counts inventory and sums receivables and investor capital
func (s *DashboardService) Summary(ctx context.Context, companyID uuid.UUID) (*DashboardSummary, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "dashboard_service", "summary",
		attribute.String(telemetry.AttrCompanyID, companyID.String()),
	)
	defer span.End()

	summary, err := s.summary(ctx, companyID)
	if err != nil {
		telemetry.RecordError(span, err)
		s.logger.Error("Failed to build dashboard summary", zap.String("company_id", companyID.String()), zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to build dashboard summary", err)
	}
	telemetry.SetOK(span)
	return summary, nil
}

func (s *DashboardService) summary(ctx context.Context, companyID uuid.UUID) (*DashboardSummary, error) {
	batches, err := s.batches.Count(ctx, companyID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	byStatus, err := s.cars.CountByStatus(ctx, companyID)
	if err != nil {
		return nil, err
	}
	receivables, err := s.customers.Receivables(ctx, companyID)
	if err != nil {
		return nil, err
	}
	capital, err := s.investors.Capital(ctx, companyID)
	if err != nil {
		return nil, err
	}

	inStock, sold := byStatus[inventory.CarStatusInStock], byStatus[inventory.CarStatusSold]
	return &DashboardSummary{
		CompanyID: companyID,
		Inventory: InventoryCounts{
			Batches:     batches,
			Cars:        inStock + sold,
			CarsInStock: inStock,
			CarsSold:    sold,
		},
		Receivables: ReceivablesSummary{
			Customers:   receivables.Customers,
			SalesTotal:  receivables.SalesTotal,
			Received:    receivables.Received,
			Outstanding: receivables.Outstanding,
		},
		Capital: CapitalSummary{
			Investors: capital.Investors,
			Invested:  capital.Invested,
			Paid:      capital.Paid,
			Remaining: capital.Remaining,
		},
	}, nil
}
