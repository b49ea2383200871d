package identity

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
)

// Admin is a platform operator that manages tenant companies
type Admin struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	PasswordHash string
}

// NewAdmin creates a new admin with a hashed password
func NewAdmin(name, email, password string) (*Admin, error) {
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
	return &Admin{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             email,
		PasswordHash:      hash,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (a *Admin) VerifyPassword(password string) bool {
	return compareSecret(a.PasswordHash, password)
}

// ChangePassword replaces the password hash
func (a *Admin) ChangePassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
	return nil
}
