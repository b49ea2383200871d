package persistence

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/finance"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormInvestorRepository implements finance.InvestorRepository using GORM
type GormInvestorRepository struct {
	db *gorm.DB
}

// NewGormInvestorRepository creates a new GormInvestorRepository
func NewGormInvestorRepository(db *gorm.DB) *GormInvestorRepository {
	return &GormInvestorRepository{db: db}
}

// Create inserts a new investor. The model's BeforeSave hook derives remaining_amount.
func (r *GormInvestorRepository) Create(ctx context.Context, investor *finance.Investor) error {
	return translateError(r.db.WithContext(ctx).Create(models.InvestorModelFromDomain(investor)).Error)
}

// Update saves all investor columns
func (r *GormInvestorRepository) Update(ctx context.Context, investor *finance.Investor) error {
	result := r.db.WithContext(ctx).
		Where("company_id = ?", investor.CompanyID).
		Select("*").
		Updates(models.InvestorModelFromDomain(investor))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an investor
func (r *GormInvestorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.InvestorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForCompany finds an investor by ID within a company
func (r *GormInvestorRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*finance.Investor, error) {
	var model models.InvestorModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByBatch lists the investors of a batch
func (r *GormInvestorRepository) FindByBatch(ctx context.Context, companyID uuid.UUID, batchNo string) ([]*finance.Investor, error) {
	var rows []models.InvestorModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND batch_no = ?", companyID, batchNo).
		Order("investment_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toInvestors(rows), nil
}

// FindAll lists a company's investors
func (r *GormInvestorRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter finance.InvestorFilter) ([]*finance.Investor, error) {
	var rows []models.InvestorModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.InvestorModel{}), companyID, filter).
		Scopes(ordered(filter.Filter, InvestorSortFields), paginate(filter.Filter)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toInvestors(rows), nil
}

// Count counts a company's investors matching the filter
func (r *GormInvestorRepository) Count(ctx context.Context, companyID uuid.UUID, filter finance.InvestorFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.InvestorModel{}), companyID, filter).Count(&count).Error
	return count, err
}

// Capital sums invested, paid and remaining capital of a company
func (r *GormInvestorRepository) Capital(ctx context.Context, companyID uuid.UUID) (*finance.CapitalSummary, error) {
	var row struct {
		Investors int64
		Invested  decimal.Decimal
		Paid      decimal.Decimal
		Remaining decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.InvestorModel{}).
		Select("COUNT(*) AS investors, " +
			"COALESCE(SUM(invest_amount), 0) AS invested, " +
			"COALESCE(SUM(amount_paid), 0) AS paid, " +
			"COALESCE(SUM(remaining_amount), 0) AS remaining").
		Scopes(byCompany(companyID)).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &finance.CapitalSummary{
		Investors: row.Investors,
		Invested:  row.Invested,
		Paid:      row.Paid,
		Remaining: row.Remaining,
	}, nil
}

func (r *GormInvestorRepository) applyFilter(query *gorm.DB, companyID uuid.UUID, filter finance.InvestorFilter) *gorm.DB {
	query = query.Scopes(byCompany(companyID))
	if filter.BatchNo != "" {
		query = query.Where("batch_no = ?", filter.BatchNo)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?", p, p, p)
	}
	return query
}

func toInvestors(rows []models.InvestorModel) []*finance.Investor {
	investors := make([]*finance.Investor, len(rows))
	for i := range rows {
		investors[i] = rows[i].ToDomain()
	}
	return investors
}

var _ finance.InvestorRepository = (*GormInvestorRepository)(nil)
