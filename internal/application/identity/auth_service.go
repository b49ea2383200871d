package identity

import (
	"context"
	"errors"
	"time"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/dealerdesk/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrCompanyInactive    = shared.NewDomainError("COMPANY_INACTIVE", "Company account is inactive")
	ErrAccountInactive    = shared.NewDomainError("ACCOUNT_INACTIVE", "Account is inactive")
)

// AuthService handles authentication operations
type AuthService struct {
	admins     identity.AdminRepository
	companies  identity.CompanyRepository
	subUsers   identity.SubUserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	metrics    *telemetry.DealerMetrics
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	admins identity.AdminRepository,
	companies identity.CompanyRepository,
	subUsers identity.SubUserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	metrics *telemetry.DealerMetrics,
	logger *zap.Logger,
) *AuthService {
	if metrics == nil {
		metrics = telemetry.NewNopDealerMetrics()
	}
	return &AuthService{
		admins:     admins,
		companies:  companies,
		subUsers:   subUsers,
		jwtService: jwtService,
		blacklist:  blacklist,
		metrics:    metrics,
		logger:     logger,
	}
}

// Login authenticates an email/password pair. Accounts are looked up as
// admin, then company, then sub-user, and the first tier holding the email
// decides the outcome: a wrong password there fails without trying later tiers.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := shared.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	principal, profile, err := s.authenticate(ctx, email, input.Password)
	if err != nil {
		role := string(principal.Role)
		if role == "" {
			role = "unknown"
		}
		s.metrics.RecordLogin(ctx, role, "failure")
		return nil, err
	}

	token, err := s.jwtService.Issue(principal)
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, shared.WrapDomainError("INTERNAL_ERROR", "Failed to create session", err)
	}

	s.metrics.RecordLogin(ctx, string(principal.Role), "success")
	s.logger.Info("Login succeeded",
		zap.String("role", string(principal.Role)),
		zap.String("principal_id", principal.ID.String()),
	)

	return &LoginResult{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		Principal: principal,
		Profile:   profile,
	}, nil
}

// authenticate resolves the tier owning email. The returned principal carries
// the role of that tier even on failure, for metrics.
func (s *AuthService) authenticate(ctx context.Context, email, password string) (identity.Principal, *ProfileDTO, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err == nil {
		p := identity.Principal{ID: admin.ID, Role: identity.RoleAdmin}
		if !admin.VerifyPassword(password) {
			s.logger.Warn("Invalid password", zap.String("role", "admin"))
			return p, nil, ErrInvalidCredentials
		}
		return p, &ProfileDTO{Role: identity.RoleAdmin, Admin: toAdminDTO(admin)}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return identity.Principal{}, nil, s.lookupFailed(err)
	}

	company, err := s.companies.FindByEmail(ctx, email)
	if err == nil {
		p := identity.Principal{ID: company.ID, Role: identity.RoleCompany, CompanyID: company.ID, Access: identity.FullAccess()}
		if !company.VerifyPassword(password) {
			s.logger.Warn("Invalid password", zap.String("role", "company"))
			return p, nil, ErrInvalidCredentials
		}
		if !company.IsActive() {
			s.logger.Warn("Login attempt for inactive company", zap.String("company_id", company.ID.String()))
			return p, nil, ErrCompanyInactive
		}
		return p, &ProfileDTO{Role: identity.RoleCompany, Company: ToCompanyDTO(company)}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return identity.Principal{}, nil, s.lookupFailed(err)
	}

	user, err := s.subUsers.FindByEmail(ctx, email)
	if err == nil {
		p := identity.Principal{ID: user.ID, Role: identity.RoleSubUser, CompanyID: user.CompanyID, Access: user.Access}
		if !user.VerifyPassword(password) {
			s.logger.Warn("Invalid password", zap.String("role", "subuser"))
			return p, nil, ErrInvalidCredentials
		}
		if !user.IsActive() {
			return p, nil, ErrAccountInactive
		}
		owner, err := s.companies.FindByID(ctx, user.CompanyID)
		if err != nil {
			return p, nil, s.lookupFailed(err)
		}
		if !owner.IsActive() {
			s.logger.Warn("Sub-user login for inactive company", zap.String("company_id", owner.ID.String()))
			return p, nil, ErrCompanyInactive
		}
		return p, &ProfileDTO{Role: identity.RoleSubUser, SubUser: ToSubUserDTO(user)}, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return identity.Principal{}, nil, s.lookupFailed(err)
	}

	return identity.Principal{}, nil, ErrInvalidCredentials
}

func (s *AuthService) lookupFailed(err error) error {
	s.logger.Error("Account lookup failed during login", zap.Error(err))
	return shared.WrapDomainError("INTERNAL_ERROR", "Failed to sign in", err)
}

// Logout revokes the session token until it would have expired
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	ttl := time.Until(input.ExpiresAt)
	if input.JTI == "" || ttl <= 0 {
		return nil
	}
	if err := s.blacklist.AddToBlacklist(ctx, input.JTI, ttl); err != nil {
		s.logger.Error("Failed to revoke session", zap.Error(err))
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to sign out", err)
	}
	return nil
}

// Me returns the profile of the signed-in principal
func (s *AuthService) Me(ctx context.Context, p identity.Principal) (*ProfileDTO, error) {
	switch p.Role {
	case identity.RoleAdmin:
		admin, err := s.admins.FindByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return &ProfileDTO{Role: p.Role, Admin: toAdminDTO(admin)}, nil
	case identity.RoleCompany:
		company, err := s.companies.FindByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return &ProfileDTO{Role: p.Role, Company: ToCompanyDTO(company)}, nil
	case identity.RoleSubUser:
		user, err := s.subUsers.FindByID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return &ProfileDTO{Role: p.Role, SubUser: ToSubUserDTO(user)}, nil
	}
	return nil, shared.ErrUnauthorized
}

// ValidatePIN checks pin against the company PIN of a company or sub-user session
func (s *AuthService) ValidatePIN(ctx context.Context, p identity.Principal, pin string) (bool, error) {
	if !p.HasTenant() {
		return false, shared.ErrForbidden
	}
	company, err := s.companies.FindByID(ctx, p.CompanyID)
	if err != nil {
		return false, err
	}
	valid := company.VerifyPIN(pin)
	if !valid {
		s.logger.Warn("Invalid PIN", zap.String("company_id", p.CompanyID.String()))
	}
	return valid, nil
}

func revokeSubject(ctx context.Context, blacklist auth.TokenBlacklist, ttl time.Duration, subject string) error {
	if err := blacklist.InvalidateSubject(ctx, subject, ttl); err != nil {
		return shared.WrapDomainError("INTERNAL_ERROR", "Failed to revoke sessions", err)
	}
	return nil
}

func companySubject(id uuid.UUID) string {
	return auth.CompanySubject(id.String())
}
