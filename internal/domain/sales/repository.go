package sales

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerFilter narrows customer listings
type CustomerFilter struct {
	shared.Filter
	PaymentStatus PaymentStatus
	ChassisNumber string
}

// ReceivablesSummary aggregates outstanding sale balances
type ReceivablesSummary struct {
	Customers   int64
	SalesTotal  decimal.Decimal
	Received    decimal.Decimal
	Outstanding decimal.Decimal
}

// CustomerRepository defines persistence operations for customers and their ledgers
type CustomerRepository interface {
	// Create stores the customer and any initial payments in one transaction
	Create(ctx context.Context, customer *Customer) error
	// Save updates the customer row and replaces its ledger rows in one transaction
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Customer, error)
	// FindByChassisNumbers returns customers of the company whose vehicle matches one of the chassis numbers
	FindByChassisNumbers(ctx context.Context, companyID uuid.UUID, chassisNumbers []string) ([]*Customer, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter CustomerFilter) ([]*Customer, error)
	Count(ctx context.Context, companyID uuid.UUID, filter CustomerFilter) (int64, error)
	Receivables(ctx context.Context, companyID uuid.UUID) (*ReceivablesSummary, error)
}
