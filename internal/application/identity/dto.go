package identity

import (
	"time"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LoginInput contains the credentials for a login attempt
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned after a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Principal identity.Principal
	Profile   *ProfileDTO
}

// LogoutInput identifies the session to revoke
type LogoutInput struct {
	JTI       string
	ExpiresAt time.Time
}

// ProfileDTO is the signed-in account as shown by /auth/me. Exactly one of
// Admin, Company and SubUser is set.
type ProfileDTO struct {
	Role    identity.Role `json:"role"`
	Admin   *AdminDTO     `json:"admin,omitempty"`
	Company *CompanyDTO   `json:"company,omitempty"`
	SubUser *SubUserDTO   `json:"subUser,omitempty"`
}

// AdminDTO represents an admin in API responses
type AdminDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CompanyDTO represents a company in API responses
type CompanyDTO struct {
	ID           uuid.UUID       `json:"id"`
	OwnerName    string          `json:"ownerName"`
	CompanyName  string          `json:"companyName"`
	CompanyEmail string          `json:"companyEmail"`
	Status       identity.Status `json:"status"`
	HasPIN       bool            `json:"hasPin"`
	Phone        string          `json:"phone,omitempty"`
	Address      string          `json:"address,omitempty"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// SubUserDTO represents a sub-user in API responses
type SubUserDTO struct {
	ID        uuid.UUID       `json:"id"`
	CompanyID uuid.UUID       `json:"companyId"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Status    identity.Status `json:"status"`
	Access    identity.Access `json:"access"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// SiteUserDTO represents a site user in API responses
type SiteUserDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateCompanyInput contains the fields to create or register a company
type CreateCompanyInput struct {
	OwnerName   string
	CompanyName string
	Email       string
	Password    string
	Phone       string
	Address     string
}

// UpdateCompanyInput contains the mutable company fields. Nil fields are left unchanged.
type UpdateCompanyInput struct {
	OwnerName   *string
	CompanyName *string
	Email       *string
	Password    *string
	Phone       *string
	Address     *string
}

// CompanyFilter narrows company listings
type CompanyFilter struct {
	shared.Filter
	Status identity.Status
}

// UploadImageInput carries an uploaded company image
type UploadImageInput struct {
	Data        []byte
	ContentType string
}

// CreateSubUserInput contains the fields to create a sub-user. CompanyID is
// only read for admin callers; company callers always create under their own company.
type CreateSubUserInput struct {
	CompanyID uuid.UUID
	Name      string
	Email     string
	Password  string
	Access    identity.Access
}

// UpdateSubUserInput contains the mutable sub-user fields
type UpdateSubUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Status   *identity.Status
	Access   *identity.Access
}

// RegisterSiteUserInput contains the fields of a public registration
type RegisterSiteUserInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

func newListResult[T any](items []T, total int64, f shared.Filter) *shared.Paginated[T] {
	p := shared.NewPaginated(items, total, f.Page, f.PageSize)
	return &p
}

func toAdminDTO(a *identity.Admin) *AdminDTO {
	return &AdminDTO{ID: a.ID, Name: a.Name, Email: a.Email, CreatedAt: a.CreatedAt}
}

// ToCompanyDTO converts a company to its response form
func ToCompanyDTO(c *identity.Company) *CompanyDTO {
	return &CompanyDTO{
		ID:           c.ID,
		OwnerName:    c.OwnerName,
		CompanyName:  c.CompanyName,
		CompanyEmail: c.CompanyEmail,
		Status:       c.Status,
		HasPIN:       c.HasPIN(),
		Phone:        c.Phone,
		Address:      c.Address,
		ImageURL:     c.ImageURL,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToSubUserDTO converts a sub-user to its response form
func ToSubUserDTO(u *identity.SubUser) *SubUserDTO {
	return &SubUserDTO{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		Access:    u.Access,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toSiteUserDTO(u *identity.SiteUser) *SiteUserDTO {
	return &SiteUserDTO{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, CreatedAt: u.CreatedAt}
}

// SubUserFilter narrows sub-user listings. CompanyID is only honoured for admins.
type SubUserFilter struct {
	shared.Filter
	CompanyID *uuid.UUID
	Status    identity.Status
}
