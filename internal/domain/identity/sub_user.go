package identity

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SubUser is a staff account of a company, limited by capability flags
type SubUser struct {
	shared.TenantAggregateRoot
	Name         string
	Email        string
	PasswordHash string
	Status       Status
	Access       Access
}

// SubUserUpdate carries the mutable fields of a sub-user. Nil fields are left unchanged.
type SubUserUpdate struct {
	Name     *string
	Email    *string
	Password *string
	Status   *Status
	Access   *Access
}

// NewSubUser creates an active sub-user under the given company
func NewSubUser(companyID uuid.UUID, name, email, password string, access Access) (*SubUser, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	email = shared.NormalizeEmail(email)
	if err := validateName("Name", name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &SubUser{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(companyID),
		Name:                strings.TrimSpace(name),
		Email:               email,
		PasswordHash:        hash,
		Status:              StatusActive,
		Access:              access,
	}, nil
}

// IsActive returns true if the sub-user can sign in
func (u *SubUser) IsActive() bool {
	return u.Status == StatusActive
}

// VerifyPassword verifies if the provided password matches
func (u *SubUser) VerifyPassword(password string) bool {
	return compareSecret(u.PasswordHash, password)
}

// Apply applies an update. It reports whether credentials or privileges changed,
// in which case existing sessions of the sub-user should be revoked.
func (u *SubUser) Apply(upd SubUserUpdate) (bool, error) {
	revoke := false
	if upd.Name != nil {
		if err := validateName("Name", *upd.Name); err != nil {
			return false, err
		}
		u.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		email := shared.NormalizeEmail(*upd.Email)
		if err := validateEmail(email); err != nil {
			return false, err
		}
		u.Email = email
	}
	if upd.Password != nil {
		hash, err := HashPassword(*upd.Password)
		if err != nil {
			return false, err
		}
		u.PasswordHash = hash
		revoke = true
	}
	if upd.Status != nil {
		if !upd.Status.IsValid() {
			return false, shared.NewDomainError("INVALID_STATUS", "Status must be active or inactive")
		}
		if *upd.Status != u.Status && *upd.Status == StatusInactive {
			revoke = true
		}
		u.Status = *upd.Status
	}
	if upd.Access != nil {
		if *upd.Access != u.Access {
			revoke = true
		}
		u.Access = *upd.Access
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return revoke, nil
}
