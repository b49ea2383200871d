package inventory

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchRef identifies a batch during sweeps
type BatchRef struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	BatchNo   string
}

// BatchRepository defines persistence operations for batches
type BatchRepository interface {
	Create(ctx context.Context, batch *Batch) error
	Update(ctx context.Context, batch *Batch) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Batch, error)
	FindByBatchNo(ctx context.Context, companyID uuid.UUID, batchNo string) (*Batch, error)
	ExistsByBatchNo(ctx context.Context, companyID uuid.UUID, batchNo string) (bool, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]*Batch, error)
	Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error)
	// ListRefs lists every batch of a company, or of every company when companyID is nil
	ListRefs(ctx context.Context, companyID *uuid.UUID) ([]BatchRef, error)
	// UpdateTotal atomically writes one total and the recomputed profit, then
	// returns the updated batch
	UpdateTotal(ctx context.Context, id uuid.UUID, kind TotalKind, value decimal.Decimal) (*Batch, error)
	// CountReferences returns how many cars and investors name the batch
	CountReferences(ctx context.Context, companyID uuid.UUID, batchNo string) (cars int64, investors int64, err error)
}

// BatchExpenseRepository defines persistence operations for batch expenses
type BatchExpenseRepository interface {
	Create(ctx context.Context, expense *BatchExpense) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*BatchExpense, error)
	FindByBatch(ctx context.Context, batchID uuid.UUID) ([]*BatchExpense, error)
}

// CarFilter narrows car listings
type CarFilter struct {
	shared.Filter
	BatchNo string
	Status  CarStatus
}

// CarRepository defines persistence operations for cars
type CarRepository interface {
	Create(ctx context.Context, car *Car) error
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*Car, error)
	FindByChassis(ctx context.Context, companyID uuid.UUID, chassisNumber string) (*Car, error)
	// ExistsByChassis checks chassis uniqueness, ignoring the car with excludeID when set
	ExistsByChassis(ctx context.Context, companyID uuid.UUID, chassisNumber string, excludeID *uuid.UUID) (bool, error)
	// FindByBatch returns every car of the batch with its financing loaded
	FindByBatch(ctx context.Context, companyID uuid.UUID, batchNo string) ([]*Car, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter CarFilter) ([]*Car, error)
	Count(ctx context.Context, companyID uuid.UUID, filter CarFilter) (int64, error)
	CountByStatus(ctx context.Context, companyID uuid.UUID) (map[CarStatus]int64, error)
}
