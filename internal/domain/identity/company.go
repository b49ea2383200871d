package identity

import (
	"strings"
	"time"

	"github.com/dealerdesk/backend/internal/domain/shared"
)

// Company is a tenant: a dealership with its own inventory, customers and staff
type Company struct {
	shared.BaseAggregateRoot
	OwnerName    string
	CompanyName  string
	CompanyEmail string
	PasswordHash string
	Status       Status
	PinHash      string
	Phone        string
	Address      string
	ImageKey     string // object storage key of the logo
	ImageURL     string
}

// CompanyProfile carries the mutable profile fields of a company.
// Nil fields are left unchanged.
type CompanyProfile struct {
	OwnerName   *string
	CompanyName *string
	Phone       *string
	Address     *string
}

// NewCompany creates an active company with a hashed password
func NewCompany(ownerName, companyName, email, password string) (*Company, error) {
	email = shared.NormalizeEmail(email)
	if err := validateName("Owner name", ownerName); err != nil {
		return nil, err
	}
	if err := validateName("Company name", companyName); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OwnerName:         strings.TrimSpace(ownerName),
		CompanyName:       strings.TrimSpace(companyName),
		CompanyEmail:      email,
		PasswordHash:      hash,
		Status:            StatusActive,
	}, nil
}

// IsActive returns true if the company can sign in
func (c *Company) IsActive() bool {
	return c.Status == StatusActive
}

// VerifyPassword verifies if the provided password matches
func (c *Company) VerifyPassword(password string) bool {
	return compareSecret(c.PasswordHash, password)
}

// ChangePassword replaces the password hash
func (c *Company) ChangePassword(password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	c.PasswordHash = hash
	c.touch()
	return nil
}

// UpdateProfile applies the non-nil profile fields
func (c *Company) UpdateProfile(p CompanyProfile) error {
	if p.OwnerName != nil {
		if err := validateName("Owner name", *p.OwnerName); err != nil {
			return err
		}
		c.OwnerName = strings.TrimSpace(*p.OwnerName)
	}
	if p.CompanyName != nil {
		if err := validateName("Company name", *p.CompanyName); err != nil {
			return err
		}
		c.CompanyName = strings.TrimSpace(*p.CompanyName)
	}
	if p.Phone != nil {
		if len(*p.Phone) > 50 {
			return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
		}
		c.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Address != nil {
		c.Address = strings.TrimSpace(*p.Address)
	}
	c.touch()
	return nil
}

// ChangeEmail sets a new login email. Uniqueness is checked by the caller.
func (c *Company) ChangeEmail(email string) error {
	email = shared.NormalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return err
	}
	c.CompanyEmail = email
	c.touch()
	return nil
}

// SetStatus activates or deactivates the company
func (c *Company) SetStatus(status Status) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Status must be active or inactive")
	}
	c.Status = status
	c.touch()
	return nil
}

// SetPIN hashes and stores a 4 to 6 digit PIN
func (c *Company) SetPIN(pin string) error {
	if !pinRegex.MatchString(pin) {
		return shared.NewDomainError("INVALID_PIN", "PIN must be 4 to 6 digits")
	}
	hash, err := hashSecret(pin)
	if err != nil {
		return err
	}
	c.PinHash = hash
	c.touch()
	return nil
}

// HasPIN reports whether a PIN has been configured
func (c *Company) HasPIN() bool {
	return c.PinHash != ""
}

// VerifyPIN compares a PIN against the stored hash. A company without a PIN
// never validates.
func (c *Company) VerifyPIN(pin string) bool {
	return compareSecret(c.PinHash, pin)
}

// SetImage records the stored logo location
func (c *Company) SetImage(key, url string) {
	c.ImageKey = key
	c.ImageURL = url
	c.touch()
}

func (c *Company) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
