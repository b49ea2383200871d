package identity

import (
	"context"
	"errors"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrEmailTaken is returned when a login email is already used by any
// admin, company or sub-user. Login resolves emails across all three tiers,
// so they share one namespace.
var ErrEmailTaken = shared.NewDomainError("EMAIL_ALREADY_EXISTS", "Email is already registered")

type emailRegistry struct {
	admins    identity.AdminRepository
	companies identity.CompanyRepository
	subUsers  identity.SubUserRepository
}

// ensureAvailable fails with ErrEmailTaken when email belongs to an account
// other than self
func (r emailRegistry) ensureAvailable(ctx context.Context, email string, self uuid.UUID) error {
	email = shared.NormalizeEmail(email)

	admin, err := r.admins.FindByEmail(ctx, email)
	if err := taken(admin != nil && admin.ID != self, err); err != nil {
		return err
	}
	company, err := r.companies.FindByEmail(ctx, email)
	if err := taken(company != nil && company.ID != self, err); err != nil {
		return err
	}
	user, err := r.subUsers.FindByEmail(ctx, email)
	return taken(user != nil && user.ID != self, err)
}

func taken(other bool, lookupErr error) error {
	if lookupErr != nil {
		if errors.Is(lookupErr, shared.ErrNotFound) {
			return nil
		}
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to check email", lookupErr)
	}
	if other {
		return ErrEmailTaken
	}
	return nil
}
