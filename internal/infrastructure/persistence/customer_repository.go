package persistence

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/sales"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCustomerRepository implements sales.CustomerRepository using GORM.
// The customer row and its installment rows are always written together.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func preloadPayments(db *gorm.DB) *gorm.DB {
	return db.Preload("Payments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("installment_number ASC")
	})
}

// Create inserts the customer and any initial installments
func (r *GormCustomerRepository) Create(ctx context.Context, customer *sales.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		if len(model.Payments) > 0 {
			return tx.Create(&model.Payments).Error
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}
	customer.MarkPersisted()
	return nil
}

// Save writes the customer row and replaces its ledger rows. The row must still
// carry the version the customer was loaded with; otherwise another request has
// written it since and ErrOptimisticLock is returned.
func (r *GormCustomerRepository) Save(ctx context.Context, customer *sales.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).
			Where("company_id = ? AND version = ?", customer.CompanyID, customer.PersistedVersion()).
			Select("*").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.CustomerModel{}).
				Where("company_id = ? AND id = ?", customer.CompanyID, customer.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return shared.ErrNotFound
			}
			return shared.ErrOptimisticLock
		}
		if err := tx.Where("customer_id = ?", customer.ID).Delete(&models.CustomerPaymentModel{}).Error; err != nil {
			return err
		}
		if len(model.Payments) > 0 {
			return tx.Create(&model.Payments).Error
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}
	customer.MarkPersisted()
	return nil
}

// Delete removes a customer and its ledger
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).Delete(&models.CustomerPaymentModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CustomerModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByIDForCompany finds a customer with its ledger within a company
func (r *GormCustomerRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*sales.Customer, error) {
	var model models.CustomerModel
	if err := preloadPayments(r.db.WithContext(ctx)).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByChassisNumbers returns the company's customers whose vehicle chassis
// number is in the given set
func (r *GormCustomerRepository) FindByChassisNumbers(ctx context.Context, companyID uuid.UUID, chassisNumbers []string) ([]*sales.Customer, error) {
	if len(chassisNumbers) == 0 {
		return []*sales.Customer{}, nil
	}
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND chassis_number IN ?", companyID, chassisNumbers).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

// FindAll lists a company's customers with their ledgers
func (r *GormCustomerRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter sales.CustomerFilter) ([]*sales.Customer, error) {
	var rows []models.CustomerModel
	err := preloadPayments(r.applyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), companyID, filter)).
		Scopes(ordered(filter.Filter, CustomerSortFields), paginate(filter.Filter)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCustomers(rows), nil
}

// Count counts a company's customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, companyID uuid.UUID, filter sales.CustomerFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), companyID, filter).Count(&count).Error
	return count, err
}

// Receivables sums sale prices, received and outstanding amounts of a company
func (r *GormCustomerRepository) Receivables(ctx context.Context, companyID uuid.UUID) (*sales.ReceivablesSummary, error) {
	var row struct {
		Customers   int64
		SalesTotal  decimal.Decimal
		Received    decimal.Decimal
		Outstanding decimal.Decimal
	}
	if err := r.db.WithContext(ctx).Model(&models.CustomerModel{}).
		Select("COUNT(*) AS customers, " +
			"COALESCE(SUM(sale_price), 0) AS sales_total, " +
			"COALESCE(SUM(paid_amount), 0) AS received, " +
			"COALESCE(SUM(remaining_amount), 0) AS outstanding").
		Scopes(byCompany(companyID)).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &sales.ReceivablesSummary{
		Customers:   row.Customers,
		SalesTotal:  row.SalesTotal,
		Received:    row.Received,
		Outstanding: row.Outstanding,
	}, nil
}

func (r *GormCustomerRepository) applyFilter(query *gorm.DB, companyID uuid.UUID, filter sales.CustomerFilter) *gorm.DB {
	query = query.Scopes(byCompany(companyID))
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.ChassisNumber != "" {
		query = query.Where("chassis_number = ?", shared.NormalizeIdentifier(filter.ChassisNumber))
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(buyer_name) LIKE ? OR LOWER(chassis_number) LIKE ? OR buyer_phone LIKE ?", p, p, p)
	}
	return query
}

func toCustomers(rows []models.CustomerModel) []*sales.Customer {
	customers := make([]*sales.Customer, len(rows))
	for i := range rows {
		customers[i] = rows[i].ToDomain()
	}
	return customers
}

var _ sales.CustomerRepository = (*GormCustomerRepository)(nil)
