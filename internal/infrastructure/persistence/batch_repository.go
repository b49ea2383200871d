package persistence

import (
	"context"
	"time"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormBatchRepository implements inventory.BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// Create inserts a new batch. A duplicate batch number within the company
// surfaces as ALREADY_EXISTS.
func (r *GormBatchRepository) Create(ctx context.Context, batch *inventory.Batch) error {
	return translateError(r.db.WithContext(ctx).Create(models.BatchModelFromDomain(batch)).Error)
}

// Update saves the editable batch columns. Totals are only written by UpdateTotal.
func (r *GormBatchRepository) Update(ctx context.Context, batch *inventory.Batch) error {
	result := r.db.WithContext(ctx).Model(&models.BatchModel{}).
		Where("id = ? AND company_id = ?", batch.ID, batch.CompanyID).
		Updates(map[string]any{
			"description":  batch.Description,
			"arrival_date": batch.ArrivalDate,
			"version":      batch.Version,
			"updated_at":   batch.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a batch and its expenses
func (r *GormBatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("batch_id = ?", id).Delete(&models.BatchExpenseModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.BatchModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a batch by ID regardless of company
func (r *GormBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByIDForCompany finds a batch by ID within a company
func (r *GormBatchRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByBatchNo finds a batch by its number within a company
func (r *GormBatchRepository) FindByBatchNo(ctx context.Context, companyID uuid.UUID, batchNo string) (*inventory.Batch, error) {
	var model models.BatchModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND batch_no = ?", companyID, batchNo).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByBatchNo reports whether the company has a batch with the number
func (r *GormBatchRepository) ExistsByBatchNo(ctx context.Context, companyID uuid.UUID, batchNo string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BatchModel{}).
		Where("company_id = ? AND batch_no = ?", companyID, batchNo).
		Count(&count).Error
	return count > 0, err
}

// FindAll lists a company's batches
func (r *GormBatchRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]*inventory.Batch, error) {
	var rows []models.BatchModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.BatchModel{}), companyID, filter).
		Scopes(ordered(filter, BatchSortFields), paginate(filter)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	batches := make([]*inventory.Batch, len(rows))
	for i := range rows {
		batches[i] = rows[i].ToDomain()
	}
	return batches, nil
}

// Count counts a company's batches matching the filter
func (r *GormBatchRepository) Count(ctx context.Context, companyID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.BatchModel{}), companyID, filter).Count(&count).Error
	return count, err
}

func (r *GormBatchRepository) applyFilter(query *gorm.DB, companyID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Scopes(byCompany(companyID))
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(batch_no) LIKE ? OR LOWER(description) LIKE ?", p, p)
	}
	return query
}

// ListRefs returns the identity of every batch, optionally for one company only.
// Sweeps iterate these instead of loading full rows.
func (r *GormBatchRepository) ListRefs(ctx context.Context, companyID *uuid.UUID) ([]inventory.BatchRef, error) {
	var rows []struct {
		ID        uuid.UUID
		CompanyID uuid.UUID
		BatchNo   string
	}
	query := r.db.WithContext(ctx).Model(&models.BatchModel{}).Select("id", "company_id", "batch_no")
	if companyID != nil {
		query = query.Scopes(byCompany(*companyID))
	}
	if err := query.Order("company_id ASC, batch_no ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	refs := make([]inventory.BatchRef, len(rows))
	for i, row := range rows {
		refs[i] = inventory.BatchRef{ID: row.ID, CompanyID: row.CompanyID, BatchNo: row.BatchNo}
	}
	return refs, nil
}

// profitExpr returns the SET expression for profit when column is assigned value
// in the same statement. SQL evaluates SET expressions against the old row, so the
// column being written is replaced by the bound value.
func profitExpr(column string, value decimal.Decimal) (string, []any) {
	terms := []string{"total_sale_price", "total_cost", "total_expense"}
	args := make([]any, 0, 1)
	expr := ""
	for i, term := range terms {
		if i > 0 {
			expr += " - "
		}
		if term == column {
			expr += "?"
			args = append(args, value)
			continue
		}
		expr += term
	}
	return expr, args
}

// UpdateTotal atomically writes one derived total together with the profit and
// returns the updated batch.
func (r *GormBatchRepository) UpdateTotal(ctx context.Context, id uuid.UUID, kind inventory.TotalKind, value decimal.Decimal) (*inventory.Batch, error) {
	column := kind.Column()
	if column == "" {
		return nil, shared.NewDomainError("INVALID_TOTAL_KIND", "Unknown batch total: "+string(kind))
	}
	value = shared.RoundMoney(value)

	var updated models.BatchModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expr, args := profitExpr(column, value)
		result := tx.Model(&models.BatchModel{}).Where("id = ?", id).Updates(map[string]any{
			column:       value,
			"profit":     gorm.Expr(expr, args...),
			"updated_at": time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return updated.ToDomain(), nil
}

// CountReferences counts the cars and investors that name the batch number
func (r *GormBatchRepository) CountReferences(ctx context.Context, companyID uuid.UUID, batchNo string) (int64, int64, error) {
	var cars, investors int64
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.CarModel{}).
		Where("company_id = ? AND batch_no = ?", companyID, batchNo).
		Count(&cars).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&models.InvestorModel{}).
		Where("company_id = ? AND batch_no = ?", companyID, batchNo).
		Count(&investors).Error; err != nil {
		return 0, 0, err
	}
	return cars, investors, nil
}

// GormBatchExpenseRepository implements inventory.BatchExpenseRepository using GORM
type GormBatchExpenseRepository struct {
	db *gorm.DB
}

// NewGormBatchExpenseRepository creates a new GormBatchExpenseRepository
func NewGormBatchExpenseRepository(db *gorm.DB) *GormBatchExpenseRepository {
	return &GormBatchExpenseRepository{db: db}
}

// Create inserts a new expense
func (r *GormBatchExpenseRepository) Create(ctx context.Context, expense *inventory.BatchExpense) error {
	m := &models.BatchExpenseModel{}
	m.FromDomain(expense)
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

// Delete removes an expense
func (r *GormBatchExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BatchExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an expense by ID
func (r *GormBatchExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.BatchExpense, error) {
	var model models.BatchExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByBatch lists the expenses of a batch by date
func (r *GormBatchExpenseRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) ([]*inventory.BatchExpense, error) {
	var rows []models.BatchExpenseModel
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	expenses := make([]*inventory.BatchExpense, len(rows))
	for i := range rows {
		expenses[i] = rows[i].ToDomain()
	}
	return expenses, nil
}

var (
	_ inventory.BatchRepository        = (*GormBatchRepository)(nil)
	_ inventory.BatchExpenseRepository = (*GormBatchExpenseRepository)(nil)
)
