package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// likePattern builds a case-insensitive LIKE pattern that behaves the same on
// PostgreSQL and SQLite.
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// GormAdminRepository implements identity.AdminRepository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// Create inserts a new admin
func (r *GormAdminRepository) Create(ctx context.Context, admin *identity.Admin) error {
	return translateError(r.db.WithContext(ctx).Create(models.AdminModelFromDomain(admin)).Error)
}

// FindByID finds an admin by ID
func (r *GormAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds an admin by normalized email
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	var model models.AdminModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", shared.NormalizeEmail(email)).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Count returns the number of admins
func (r *GormAdminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdminModel{}).Count(&count).Error
	return count, err
}

// GormCompanyRepository implements identity.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Create inserts a new company
func (r *GormCompanyRepository) Create(ctx context.Context, company *identity.Company) error {
	return translateError(r.db.WithContext(ctx).Create(models.CompanyModelFromDomain(company)).Error)
}

// Update saves all company columns
func (r *GormCompanyRepository) Update(ctx context.Context, company *identity.Company) error {
	result := r.db.WithContext(ctx).Save(models.CompanyModelFromDomain(company))
	if result.Error != nil {
		return translateError(result.Error)
	}
	return nil
}

// tenantTables lists the tables holding company-owned rows, children first.
var tenantTables = []string{
	"sub_users",
	"customer_payments",
	"customers",
	"car_financings",
	"cars",
	"investors",
	"batch_expenses",
	"batches",
}

// Delete removes a company and every row it owns in one transaction
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tenantTables {
			stmt := "DELETE FROM " + table + " WHERE company_id = ?"
			if table == "car_financings" {
				stmt = "DELETE FROM car_financings WHERE car_id IN (SELECT id FROM cars WHERE company_id = ?)"
			}
			if err := tx.Exec(stmt, id).Error; err != nil {
				return fmt.Errorf("delete %s: %w", table, err)
			}
		}
		result := tx.Delete(&models.CompanyModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a company by normalized email
func (r *GormCompanyRepository) FindByEmail(ctx context.Context, email string) (*identity.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).
		Where("company_email = ?", shared.NormalizeEmail(email)).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail reports whether a company uses the email
func (r *GormCompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CompanyModel{}).
		Where("company_email = ?", shared.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// FindAll lists companies matching the filter
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.Company, error) {
	var rows []models.CompanyModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter).
		Scopes(ordered(filter, CompanySortFields), paginate(filter)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	companies := make([]*identity.Company, len(rows))
	for i := range rows {
		companies[i] = rows[i].ToDomain()
	}
	return companies, nil
}

// Count counts companies matching the filter
func (r *GormCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter).Count(&count).Error
	return count, err
}

func (r *GormCompanyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(company_name) LIKE ? OR LOWER(owner_name) LIKE ? OR LOWER(company_email) LIKE ?", p, p, p)
	}
	if status, ok := filter.Filters["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

// GormSubUserRepository implements identity.SubUserRepository using GORM
type GormSubUserRepository struct {
	db *gorm.DB
}

// NewGormSubUserRepository creates a new GormSubUserRepository
func NewGormSubUserRepository(db *gorm.DB) *GormSubUserRepository {
	return &GormSubUserRepository{db: db}
}

// Create inserts a new sub-user
func (r *GormSubUserRepository) Create(ctx context.Context, user *identity.SubUser) error {
	return translateError(r.db.WithContext(ctx).Create(models.SubUserModelFromDomain(user)).Error)
}

// Update saves all sub-user columns
func (r *GormSubUserRepository) Update(ctx context.Context, user *identity.SubUser) error {
	return translateError(r.db.WithContext(ctx).Save(models.SubUserModelFromDomain(user)).Error)
}

// Delete removes a sub-user
func (r *GormSubUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SubUserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a sub-user by ID
func (r *GormSubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.SubUser, error) {
	var model models.SubUserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByEmail finds a sub-user by normalized email
func (r *GormSubUserRepository) FindByEmail(ctx context.Context, email string) (*identity.SubUser, error) {
	var model models.SubUserModel
	if err := r.db.WithContext(ctx).
		Where("email = ?", shared.NormalizeEmail(email)).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail reports whether a sub-user uses the email
func (r *GormSubUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SubUserModel{}).
		Where("email = ?", shared.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// FindAll lists sub-users, optionally restricted to one company
func (r *GormSubUserRepository) FindAll(ctx context.Context, companyID *uuid.UUID, filter shared.Filter) ([]*identity.SubUser, error) {
	var rows []models.SubUserModel
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.SubUserModel{}), companyID, filter).
		Scopes(ordered(filter, SubUserSortFields), paginate(filter)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	users := make([]*identity.SubUser, len(rows))
	for i := range rows {
		users[i] = rows[i].ToDomain()
	}
	return users, nil
}

// Count counts sub-users, optionally restricted to one company
func (r *GormSubUserRepository) Count(ctx context.Context, companyID *uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.SubUserModel{}), companyID, filter).Count(&count).Error
	return count, err
}

func (r *GormSubUserRepository) applyFilter(query *gorm.DB, companyID *uuid.UUID, filter shared.Filter) *gorm.DB {
	if companyID != nil {
		query = query.Scopes(byCompany(*companyID))
	}
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", p, p)
	}
	if status, ok := filter.Filters["status"].(string); ok && status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

// GormSiteUserRepository implements identity.SiteUserRepository using GORM
type GormSiteUserRepository struct {
	db *gorm.DB
}

// NewGormSiteUserRepository creates a new GormSiteUserRepository
func NewGormSiteUserRepository(db *gorm.DB) *GormSiteUserRepository {
	return &GormSiteUserRepository{db: db}
}

// Create inserts a new site user
func (r *GormSiteUserRepository) Create(ctx context.Context, user *identity.SiteUser) error {
	m := &models.SiteUserModel{}
	m.FromDomain(user)
	return translateError(r.db.WithContext(ctx).Create(m).Error)
}

// Delete removes a site user
func (r *GormSiteUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SiteUserModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a site user by ID
func (r *GormSiteUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.SiteUser, error) {
	var model models.SiteUserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// ExistsByEmail reports whether a site user uses the email
func (r *GormSiteUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.SiteUserModel{}).
		Where("email = ?", shared.NormalizeEmail(email)).
		Count(&count).Error
	return count > 0, err
}

// FindAll lists site users
func (r *GormSiteUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.SiteUser, error) {
	var rows []models.SiteUserModel
	query := r.db.WithContext(ctx).Model(&models.SiteUserModel{})
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", p, p)
	}
	if err := query.Scopes(ordered(filter, SiteUserSortFields), paginate(filter)).Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]*identity.SiteUser, len(rows))
	for i := range rows {
		users[i] = rows[i].ToDomain()
	}
	return users, nil
}

// Count counts site users
func (r *GormSiteUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SiteUserModel{})
	if filter.Search != "" {
		p := likePattern(filter.Search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", p, p)
	}
	err := query.Count(&count).Error
	return count, err
}

var (
	_ identity.AdminRepository    = (*GormAdminRepository)(nil)
	_ identity.CompanyRepository  = (*GormCompanyRepository)(nil)
	_ identity.SubUserRepository  = (*GormSubUserRepository)(nil)
	_ identity.SiteUserRepository = (*GormSiteUserRepository)(nil)
)
