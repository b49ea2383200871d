package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubUserService manages staff accounts of companies
type SubUserService struct {
	subUsers   identity.SubUserRepository
	companies  identity.CompanyRepository
	emails     emailRegistry
	blacklist  auth.TokenBlacklist
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewSubUserService creates a sub-user service
func NewSubUserService(
	admins identity.AdminRepository,
	companies identity.CompanyRepository,
	subUsers identity.SubUserRepository,
	blacklist auth.TokenBlacklist,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *SubUserService {
	return &SubUserService{
		subUsers:   subUsers,
		companies:  companies,
		emails:     emailRegistry{admins: admins, companies: companies, subUsers: subUsers},
		blacklist:  blacklist,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Create creates a sub-user. Company callers always create under their own
// company; admins name the company in the input.
func (s *SubUserService) Create(ctx context.Context, p identity.Principal, input CreateSubUserInput) (*SubUserDTO, error) {
	companyID, err := s.targetCompany(ctx, p, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := s.emails.ensureAvailable(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	}

	user, err := identity.NewSubUser(companyID, input.Name, input.Email, input.Password, input.Access)
	if err != nil {
		return nil, err
	}
	if err := s.subUsers.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create sub-user: %w", err)
	}

	s.logger.Info("Sub-user created",
		zap.String("subuser_id", user.ID.String()),
		zap.String("company_id", companyID.String()),
	)
	return ToSubUserDTO(user), nil
}

func (s *SubUserService) targetCompany(ctx context.Context, p identity.Principal, requested uuid.UUID) (uuid.UUID, error) {
	switch p.Role {
	case identity.RoleCompany:
		return p.CompanyID, nil
	case identity.RoleAdmin:
		if requested == uuid.Nil {
			return uuid.Nil, shared.NewDomainError("INVALID_COMPANY", "Company ID is required")
		}
		if _, err := s.companies.FindByID(ctx, requested); err != nil {
			return uuid.Nil, err
		}
		return requested, nil
	}
	return uuid.Nil, shared.ErrForbidden
}

// load returns a sub-user visible to the principal. Sub-users of other
// companies are reported as missing.
func (s *SubUserService) load(ctx context.Context, p identity.Principal, id uuid.UUID) (*identity.SubUser, error) {
	user, err := s.subUsers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	switch p.Role {
	case identity.RoleAdmin:
		return user, nil
	case identity.RoleCompany:
		if user.CompanyID == p.CompanyID {
			return user, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Get returns a sub-user
func (s *SubUserService) Get(ctx context.Context, p identity.Principal, id uuid.UUID) (*SubUserDTO, error) {
	user, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return ToSubUserDTO(user), nil
}

// List lists the sub-users of the caller's company, or of any company for admins
func (s *SubUserService) List(ctx context.Context, p identity.Principal, filter SubUserFilter) (*shared.Paginated[SubUserDTO], error) {
	var companyID *uuid.UUID
	switch p.Role {
	case identity.RoleAdmin:
		companyID = filter.CompanyID
	case identity.RoleCompany:
		own := p.CompanyID
		companyID = &own
	default:
		return nil, shared.ErrForbidden
	}

	f := filter.Filter.Normalize()
	if filter.Status != "" {
		f.Filters["status"] = string(filter.Status)
	}

	users, err := s.subUsers.FindAll(ctx, companyID, f)
	if err != nil {
		s.logger.Error("Failed to list sub-users", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list sub-users", err)
	}
	total, err := s.subUsers.Count(ctx, companyID, f)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count sub-users", err)
	}

	items := make([]SubUserDTO, len(users))
	for i, u := range users {
		items[i] = *ToSubUserDTO(u)
	}
	return newListResult(items, total, f), nil
}

// Update applies changes to a sub-user. A new password, a deactivation or a
// change of access flags ends the sub-user's existing sessions.
func (s *SubUserService) Update(ctx context.Context, p identity.Principal, id uuid.UUID, input UpdateSubUserInput) (*SubUserDTO, error) {
	user, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if input.Email != nil && shared.NormalizeEmail(*input.Email) != user.Email {
		if err := s.emails.ensureAvailable(ctx, *input.Email, user.ID); err != nil {
			return nil, err
		}
	}

	revoke, err := user.Apply(identity.SubUserUpdate{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Status:   input.Status,
		Access:   input.Access,
	})
	if err != nil {
		return nil, err
	}
	if err := s.subUsers.Update(ctx, user); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update sub-user: %w", err)
	}

	if revoke {
		if err := revokeSubject(ctx, s.blacklist, s.sessionTTL, user.ID.String()); err != nil {
			return nil, err
		}
		s.logger.Info("Sub-user sessions revoked", zap.String("subuser_id", user.ID.String()))
	}
	return ToSubUserDTO(user), nil
}

// Delete removes a sub-user and ends its sessions
func (s *SubUserService) Delete(ctx context.Context, p identity.Principal, id uuid.UUID) error {
	user, err := s.load(ctx, p, id)
	if err != nil {
		return err
	}
	if err := s.subUsers.Delete(ctx, user.ID); err != nil {
		return err
	}
	if err := revokeSubject(ctx, s.blacklist, s.sessionTTL, user.ID.String()); err != nil {
		s.logger.Error("Failed to revoke sessions of deleted sub-user", zap.Error(err))
	}
	s.logger.Info("Sub-user deleted", zap.String("subuser_id", id.String()))
	return nil
}

// Me returns the profile of the signed-in sub-user
func (s *SubUserService) Me(ctx context.Context, p identity.Principal) (*SubUserDTO, error) {
	if p.Role != identity.RoleSubUser {
		return nil, shared.ErrForbidden
	}
	user, err := s.subUsers.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return ToSubUserDTO(user), nil
}
