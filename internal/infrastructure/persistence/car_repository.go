package persistence

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/inventory"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCarRepository implements inventory.CarRepository using GORM
type GormCarRepository struct {
	db *gorm.DB
}

// NewGormCarRepository creates a new GormCarRepository
func NewGormCarRepository(db *gorm.DB) *GormCarRepository {
	return &GormCarRepository{db: db}
}

// Create inserts a car and its financing breakdown in one transaction
func (r *GormCarRepository) Create(ctx context.Context, car *inventory.Car) error {
	model := models.CarModelFromDomain(car)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
			return err
		}
		if model.Financing != nil {
			return tx.Create(model.Financing).Error
		}
		return nil
	})
	return translateError(err)
}

// Update saves the car and replaces its financing breakdown
func (r *GormCarRepository) Update(ctx context.Context, car *inventory.Car) error {
	model := models.CarModelFromDomain(car)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Omit(clause.Associations).
			Where("company_id = ?", car.CompanyID).
			Select("*").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		if err := tx.Delete(&models.CarFinancingModel{}, "car_id = ?", car.ID).Error; err != nil {
			return err
		}
		if model.Financing != nil {
			return tx.Create(model.Financing).Error
		}
		return nil
	})
	return translateError(err)
}

// Delete removes a car and its financing breakdown
func (r *GormCarRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.CarFinancingModel{}, "car_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CarModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByIDForCompany finds a car with its financing within a company
func (r *GormCarRepository) FindByIDForCompany(ctx context.Context, companyID, id uuid.UUID) (*inventory.Car, error) {
	var model models.CarModel
	if err := r.db.WithContext(ctx).
		Preload("Financing").
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByChassis finds a car by its canonical chassis number within a company
func (r *GormCarRepository) FindByChassis(ctx context.Context, companyID uuid.UUID, chassisNumber string) (*inventory.Car, error) {
	var model models.CarModel
	if err := r.db.WithContext(ctx).
		Preload("Financing").
		Where("company_id = ? AND chassis_number = ?", companyID, shared.NormalizeIdentifier(chassisNumber)).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByChassis reports whether another car of the company uses the chassis number
func (r *GormCarRepository) ExistsByChassis(ctx context.Context, companyID uuid.UUID, chassisNumber string, excludeID *uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CarModel{}).
		Where("company_id = ? AND chassis_number = ?", companyID, shared.NormalizeIdentifier(chassisNumber))
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// FindByBatch lists every car of a batch with financing loaded
func (r *GormCarRepository) FindByBatch(ctx context.Context, companyID uuid.UUID, batchNo string) ([]*inventory.Car, error) {
	var rows []models.CarModel
	if err := r.db.WithContext(ctx).
		Preload("Financing").
		Where("company_id = ? AND batch_no = ?", companyID, batchNo).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCars(rows), nil
}

// FindAll lists a company's cars
func (r *GormCarRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter inventory.CarFilter) ([]*inventory.Car, error) {
	var rows []models.CarModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.CarModel{}), companyID, filter).
		Preload("Financing").
		Scopes(ordered(filter.Filter, CarSortFields), paginate(filter.Filter)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toCars(rows), nil
}

// Count counts a company's cars matching the filter
func (r *GormCarRepository) Count(ctx context.Context, companyID uuid.UUID, filter inventory.CarFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.CarModel{}), companyID, filter).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of cars per status
func (r *GormCarRepository) CountByStatus(ctx context.Context, companyID uuid.UUID) (map[inventory.CarStatus]int64, error) {
	var rows []struct {
		Status inventory.CarStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.CarModel{}).
		Select("status, COUNT(*) AS count").
		Scopes(byCompany(companyID)).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	counts := map[inventory.CarStatus]int64{
		inventory.CarStatusInStock: 0,
		inventory.CarStatusSold:    0,
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *GormCarRepository) applyFilter(query *gorm.DB, companyID uuid.UUID, filter inventory.CarFilter) *gorm.DB {
	query = query.Scopes(byCompany(companyID))
	if filter.BatchNo != "" {
		query = query.Where("batch_no = ?", filter.BatchNo)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(chassis_number) LIKE ? OR LOWER(make) LIKE ? OR LOWER(model) LIKE ?", p, p, p)
	}
	return query
}

func toCars(rows []models.CarModel) []*inventory.Car {
	cars := make([]*inventory.Car, len(rows))
	for i := range rows {
		cars[i] = rows[i].ToDomain()
	}
	return cars
}

var _ inventory.CarRepository = (*GormCarRepository)(nil)
