package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SiteUserService manages public-site accounts. Site users never sign in to
// the back office, so their emails live apart from the login namespace.
type SiteUserService struct {
	users  identity.SiteUserRepository
	logger *zap.Logger
}

// NewSiteUserService creates a site user service
func NewSiteUserService(users identity.SiteUserRepository, logger *zap.Logger) *SiteUserService {
	return &SiteUserService{users: users, logger: logger}
}

// Register creates a site user
func (s *SiteUserService) Register(ctx context.Context, input RegisterSiteUserInput) (*SiteUserDTO, error) {
	exists, err := s.users.ExistsByEmail(ctx, shared.NormalizeEmail(input.Email))
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to check email", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	user, err := identity.NewSiteUser(input.Name, input.Email, input.Phone, input.Password)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create site user: %w", err)
	}
	s.logger.Info("Site user registered", zap.String("user_id", user.ID.String()))
	return toSiteUserDTO(user), nil
}

// List lists site users
func (s *SiteUserService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[SiteUserDTO], error) {
	f := filter.Normalize()
	users, err := s.users.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("Failed to list site users", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list users", err)
	}
	total, err := s.users.Count(ctx, f)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count users", err)
	}
	items := make([]SiteUserDTO, len(users))
	for i, u := range users {
		items[i] = *toSiteUserDTO(u)
	}
	return newListResult(items, total, f), nil
}

// Delete removes a site user
func (s *SiteUserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Site user deleted", zap.String("user_id", id.String()))
	return nil
}
