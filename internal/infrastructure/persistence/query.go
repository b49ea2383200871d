package persistence

import (
	"errors"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// translateError maps GORM errors onto domain errors. With TranslateError enabled
// the dialect reports unique violations as gorm.ErrDuplicatedKey.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.WrapDomainError(shared.ErrAlreadyExists.Code, "A record with the same unique value already exists", err)
	}
	return err
}

// byCompany scopes a query to one tenant.
func byCompany(companyID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// paginate applies the normalized filter's offset and limit.
func paginate(filter shared.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		f := filter.Normalize()
		return db.Offset(f.Offset()).Limit(f.PageSize)
	}
}

// ordered applies a whitelisted ORDER BY clause.
func ordered(filter shared.Filter, allowed map[string]bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		field := ValidateSortField(filter.OrderBy, allowed, "created_at")
		return db.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	}
}
