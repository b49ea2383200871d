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

// ErrStorageDisabled is returned by image operations when no object store is configured
var ErrStorageDisabled = shared.NewDomainError("STORAGE_DISABLED", "Image storage is not configured")

// ErrCredentialsForbidden is returned when a sub-user tries to change the
// company's email, password or PIN
var ErrCredentialsForbidden = shared.NewDomainError("FORBIDDEN", "Only the company owner or an admin can change company credentials")

// CompanyService manages tenant companies
type CompanyService struct {
	companies  identity.CompanyRepository
	emails     emailRegistry
	images     ImageStore
	processor  ImageProcessor
	blacklist  auth.TokenBlacklist
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewCompanyService creates a company service. images may be nil, in which
// case image uploads fail with ErrStorageDisabled.
func NewCompanyService(
	admins identity.AdminRepository,
	companies identity.CompanyRepository,
	subUsers identity.SubUserRepository,
	images ImageStore,
	processor ImageProcessor,
	blacklist auth.TokenBlacklist,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companies:  companies,
		emails:     emailRegistry{admins: admins, companies: companies, subUsers: subUsers},
		images:     images,
		processor:  processor,
		blacklist:  blacklist,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Create creates an active company on behalf of an admin
func (s *CompanyService) Create(ctx context.Context, input CreateCompanyInput) (*CompanyDTO, error) {
	company, err := s.create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Company created", zap.String("company_id", company.ID.String()))
	return ToCompanyDTO(company), nil
}

// Register is the public self-registration of a company
func (s *CompanyService) Register(ctx context.Context, input CreateCompanyInput) (*CompanyDTO, error) {
	company, err := s.create(ctx, input)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Company registered", zap.String("company_id", company.ID.String()))
	return ToCompanyDTO(company), nil
}

func (s *CompanyService) create(ctx context.Context, input CreateCompanyInput) (*identity.Company, error) {
	if err := s.emails.ensureAvailable(ctx, input.Email, uuid.Nil); err != nil {
		return nil, err
	}
	company, err := identity.NewCompany(input.OwnerName, input.CompanyName, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if input.Phone != "" || input.Address != "" {
		if err := company.UpdateProfile(identity.CompanyProfile{Phone: &input.Phone, Address: &input.Address}); err != nil {
			return nil, err
		}
	}
	if err := s.companies.Create(ctx, company); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// authorize loads a company the principal may manage. Other tenants' companies
// are reported as missing; a sub-user without the setting flag is forbidden.
func (s *CompanyService) authorize(ctx context.Context, p identity.Principal, id uuid.UUID) (*identity.Company, error) {
	if !p.CanManageCompany(id) {
		if p.Role == identity.RoleSubUser && p.CompanyID == id {
			return nil, shared.ErrForbidden
		}
		return nil, shared.ErrNotFound
	}
	return s.companies.FindByID(ctx, id)
}

// Get returns a company the principal may manage
func (s *CompanyService) Get(ctx context.Context, p identity.Principal, id uuid.UUID) (*CompanyDTO, error) {
	company, err := s.authorize(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return s.withFreshImageURL(ctx, company), nil
}

// List lists companies for admins
func (s *CompanyService) List(ctx context.Context, filter CompanyFilter) (*shared.Paginated[CompanyDTO], error) {
	f := filter.Filter.Normalize()
	if filter.Status != "" {
		f.Filters["status"] = string(filter.Status)
	}

	companies, err := s.companies.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("Failed to list companies", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to list companies", err)
	}
	total, err := s.companies.Count(ctx, f)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to count companies", err)
	}

	items := make([]CompanyDTO, len(companies))
	for i, c := range companies {
		items[i] = *ToCompanyDTO(c)
	}
	return newListResult(items, total, f), nil
}

// Update changes the profile, email or password of a company. Email and
// password are reserved for the company itself and admins. A password change
// ends the company's other sessions.
func (s *CompanyService) Update(ctx context.Context, p identity.Principal, id uuid.UUID, input UpdateCompanyInput) (*CompanyDTO, error) {
	company, err := s.authorize(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if (input.Email != nil || input.Password != nil) && !p.CanChangeCompanyCredentials(id) {
		return nil, ErrCredentialsForbidden
	}

	if err := company.UpdateProfile(identity.CompanyProfile{
		OwnerName:   input.OwnerName,
		CompanyName: input.CompanyName,
		Phone:       input.Phone,
		Address:     input.Address,
	}); err != nil {
		return nil, err
	}
	if input.Email != nil && shared.NormalizeEmail(*input.Email) != company.CompanyEmail {
		if err := s.emails.ensureAvailable(ctx, *input.Email, company.ID); err != nil {
			return nil, err
		}
		if err := company.ChangeEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.Password != nil {
		if err := company.ChangePassword(*input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.companies.Update(ctx, company); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	if input.Password != nil {
		if err := revokeSubject(ctx, s.blacklist, s.sessionTTL, company.ID.String()); err != nil {
			s.logger.Error("Failed to revoke company sessions after password change", zap.Error(err))
		}
	}
	return s.withFreshImageURL(ctx, company), nil
}

// Delete removes a company with everything it owns and ends its sessions
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		return err
	}
	if err := revokeSubject(ctx, s.blacklist, s.sessionTTL, companySubject(id)); err != nil {
		s.logger.Error("Failed to revoke sessions of deleted company", zap.Error(err))
	}
	if company.ImageKey != "" && s.images != nil {
		if err := s.images.DeleteObject(ctx, company.ImageKey); err != nil {
			s.logger.Warn("Failed to delete company image", zap.String("key", company.ImageKey), zap.Error(err))
		}
	}
	s.logger.Info("Company deleted", zap.String("company_id", id.String()))
	return nil
}

// SetStatus activates or deactivates a company. Deactivation ends the sessions
// of the company and all of its sub-users.
func (s *CompanyService) SetStatus(ctx context.Context, id uuid.UUID, status identity.Status) (*CompanyDTO, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := company.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("update company status: %w", err)
	}
	if status == identity.StatusInactive {
		if err := revokeSubject(ctx, s.blacklist, s.sessionTTL, companySubject(id)); err != nil {
			return nil, err
		}
	}
	s.logger.Info("Company status changed",
		zap.String("company_id", id.String()),
		zap.String("status", string(status)),
	)
	return ToCompanyDTO(company), nil
}

// ChangePIN sets the company PIN. Sub-users cannot change it.
func (s *CompanyService) ChangePIN(ctx context.Context, p identity.Principal, id uuid.UUID, pin string) error {
	company, err := s.authorize(ctx, p, id)
	if err != nil {
		return err
	}
	if !p.CanChangeCompanyCredentials(id) {
		return ErrCredentialsForbidden
	}
	if err := company.SetPIN(pin); err != nil {
		return err
	}
	if err := s.companies.Update(ctx, company); err != nil {
		return fmt.Errorf("update company pin: %w", err)
	}
	return nil
}

// UploadImage normalizes an uploaded logo, stores it and records its location.
// The previous image is removed after the new one is saved.
func (s *CompanyService) UploadImage(ctx context.Context, p identity.Principal, id uuid.UUID, input UploadImageInput) (*CompanyDTO, error) {
	if s.images == nil || s.processor == nil {
		return nil, ErrStorageDisabled
	}
	company, err := s.authorize(ctx, p, id)
	if err != nil {
		return nil, err
	}

	data, contentType, err := s.processor.Process(input.Data)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("companies/%s/logo-%s.webp", company.ID, uuid.NewString())
	if err := s.images.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("Failed to upload company image", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to store image", err)
	}
	url, err := s.images.ObjectURL(ctx, key)
	if err != nil {
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to resolve image URL", err)
	}

	previous := company.ImageKey
	company.SetImage(key, url)
	if err := s.companies.Update(ctx, company); err != nil {
		_ = s.images.DeleteObject(ctx, key)
		return nil, fmt.Errorf("update company image: %w", err)
	}
	if previous != "" && previous != key {
		if err := s.images.DeleteObject(ctx, previous); err != nil {
			s.logger.Warn("Failed to delete previous company image", zap.String("key", previous), zap.Error(err))
		}
	}
	s.logger.Info("Company image updated", zap.String("company_id", id.String()), zap.Int("bytes", len(data)))
	return ToCompanyDTO(company), nil
}

// withFreshImageURL re-resolves the image URL, which may be a presigned link
// that has expired since it was stored
func (s *CompanyService) withFreshImageURL(ctx context.Context, c *identity.Company) *CompanyDTO {
	out := ToCompanyDTO(c)
	if c.ImageKey == "" || s.images == nil {
		return out
	}
	if url, err := s.images.ObjectURL(ctx, c.ImageKey); err == nil {
		out.ImageURL = url
	}
	return out
}
