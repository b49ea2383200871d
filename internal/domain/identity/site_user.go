package identity

import (
	"strings"

	"github.com/dealerdesk/backend/internal/domain/shared"
)

// SiteUser is a public-site account. It has no access to the back-office API.
type SiteUser struct {
	shared.BaseAggregateRoot
	Name         string
	Email        string
	Phone        string
	PasswordHash string
}

// NewSiteUser creates a site user with a hashed password
func NewSiteUser(name, email, phone, password string) (*SiteUser, error) {
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
	return &SiteUser{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Email:             email,
		Phone:             strings.TrimSpace(phone),
		PasswordHash:      hash,
	}, nil
}
