package finance

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvestorFilter narrows investor listings
type InvestorFilter struct {
	shared.Filter
	BatchNo string
}

// CapitalSummary aggregates investor capital for one company
type CapitalSummary struct {
	Investors int64
	Invested  decimal.Decimal
	Paid      decimal.Decimal
	Remaining decimal.Decimal
}

// InvestorRepository defines persistence operations for investors
type InvestorRepository interface {
	Create(ctx context.Context, investor *Investor) error
	Update(ctx context.Context, investor *Investor) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Investor, error)
	FindByBatch(ctx context.Context, companyID uuid.UUID, batchNo string) ([]*Investor, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter InvestorFilter) ([]*Investor, error)
	Count(ctx context.Context, companyID uuid.UUID, filter InvestorFilter) (int64, error)
	Capital(ctx context.Context, companyID uuid.UUID) (*CapitalSummary, error)
}
