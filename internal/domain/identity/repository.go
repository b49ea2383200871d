package identity

import (
	"context"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AdminRepository defines persistence operations for admins
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	Count(ctx context.Context) (int64, error)
}

// CompanyRepository defines persistence operations for companies
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	// Delete removes the company together with every record it owns
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByEmail(ctx context.Context, email string) (*Company, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Company, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// SubUserRepository defines persistence operations for sub-users
type SubUserRepository interface {
	Create(ctx context.Context, user *SubUser) error
	Update(ctx context.Context, user *SubUser) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*SubUser, error)
	FindByEmail(ctx context.Context, email string) (*SubUser, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindAll lists sub-users; a nil companyID lists across all companies
	FindAll(ctx context.Context, companyID *uuid.UUID, filter shared.Filter) ([]*SubUser, error)
	Count(ctx context.Context, companyID *uuid.UUID, filter shared.Filter) (int64, error)
}

// SiteUserRepository defines persistence operations for site users
type SiteUserRepository interface {
	Create(ctx context.Context, user *SiteUser) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*SiteUser, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*SiteUser, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
