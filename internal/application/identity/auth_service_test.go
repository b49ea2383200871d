package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	admins    *MockAdminRepository
	companies *MockCompanyRepository
	subUsers  *MockSubUserRepository
	blacklist *auth.InMemoryTokenBlacklist
	jwt       *auth.JWTService
	service   *AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		admins:    new(MockAdminRepository),
		companies: new(MockCompanyRepository),
		subUsers:  new(MockSubUserRepository),
		blacklist: auth.NewInMemoryTokenBlacklist(),
		jwt:       newTestJWTService(),
	}
	f.service = NewAuthService(f.admins, f.companies, f.subUsers, f.jwt, f.blacklist, nil, zap.NewNop())
	return f
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong password on an admin email does not fall through", func(t *testing.T) {
		f := newAuthFixture()
		admin, err := identity.NewAdmin("Root", "root@dealer.test", "Password123")
		require.NoError(t, err)
		f.admins.On("FindByEmail", ctx, "root@dealer.test").Return(admin, nil)

		_, err = f.service.Login(ctx, LoginInput{Email: "root@dealer.test", Password: "wrong-password"})

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		f.companies.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		f.subUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("admin login issues an admin session", func(t *testing.T) {
		f := newAuthFixture()
		admin, err := identity.NewAdmin("Root", "root@dealer.test", "Password123")
		require.NoError(t, err)
		f.admins.On("FindByEmail", ctx, "root@dealer.test").Return(admin, nil)

		result, err := f.service.Login(ctx, LoginInput{Email: " Root@Dealer.test ", Password: "Password123"})

		require.NoError(t, err)
		assert.Equal(t, identity.RoleAdmin, result.Principal.Role)
		require.NotNil(t, result.Profile.Admin)
		assert.Equal(t, admin.ID, result.Profile.Admin.ID)

		claims, err := f.jwt.Validate(result.Token)
		require.NoError(t, err)
		assert.Equal(t, identity.RoleAdmin, claims.Role)
		assert.Empty(t, claims.CompanyID)
	})

	t.Run("company login carries the company id", func(t *testing.T) {
		f := newAuthFixture()
		company, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
		require.NoError(t, err)
		f.admins.On("FindByEmail", ctx, "khan@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "khan@dealer.test").Return(company, nil)

		result, err := f.service.Login(ctx, LoginInput{Email: "khan@dealer.test", Password: "Password123"})

		require.NoError(t, err)
		assert.Equal(t, identity.RoleCompany, result.Principal.Role)
		assert.Equal(t, company.ID, result.Principal.CompanyID)
		assert.True(t, result.Principal.Can(identity.AccessInvestors))
		f.subUsers.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("inactive company is rejected after the password check", func(t *testing.T) {
		f := newAuthFixture()
		company, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
		require.NoError(t, err)
		require.NoError(t, company.SetStatus(identity.StatusInactive))
		f.admins.On("FindByEmail", ctx, "khan@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "khan@dealer.test").Return(company, nil)

		_, err = f.service.Login(ctx, LoginInput{Email: "khan@dealer.test", Password: "Password123"})
		assert.ErrorIs(t, err, ErrCompanyInactive)

		_, err = f.service.Login(ctx, LoginInput{Email: "khan@dealer.test", Password: "wrong-password"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("sub-user of an inactive company is rejected", func(t *testing.T) {
		f := newAuthFixture()
		company, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
		require.NoError(t, err)
		require.NoError(t, company.SetStatus(identity.StatusInactive))
		user, err := identity.NewSubUser(company.ID, "Sara", "sara@dealer.test", "Password123", identity.Access{CarManagement: true})
		require.NoError(t, err)

		f.admins.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.subUsers.On("FindByEmail", ctx, "sara@dealer.test").Return(user, nil)
		f.companies.On("FindByID", ctx, company.ID).Return(company, nil)

		_, err = f.service.Login(ctx, LoginInput{Email: "sara@dealer.test", Password: "Password123"})
		assert.ErrorIs(t, err, ErrCompanyInactive)
	})

	t.Run("sub-user session carries access flags", func(t *testing.T) {
		f := newAuthFixture()
		company, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
		require.NoError(t, err)
		access := identity.Access{CarManagement: true, Analytics: true}
		user, err := identity.NewSubUser(company.ID, "Sara", "sara@dealer.test", "Password123", access)
		require.NoError(t, err)

		f.admins.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.subUsers.On("FindByEmail", ctx, "sara@dealer.test").Return(user, nil)
		f.companies.On("FindByID", ctx, company.ID).Return(company, nil)

		result, err := f.service.Login(ctx, LoginInput{Email: "sara@dealer.test", Password: "Password123"})
		require.NoError(t, err)

		claims, err := f.jwt.Validate(result.Token)
		require.NoError(t, err)
		p, err := claims.Principal()
		require.NoError(t, err)
		assert.Equal(t, identity.RoleSubUser, p.Role)
		assert.Equal(t, company.ID, p.CompanyID)
		assert.Equal(t, access, p.Access)
	})

	t.Run("inactive sub-user is rejected", func(t *testing.T) {
		f := newAuthFixture()
		user, err := identity.NewSubUser(uuid.New(), "Sara", "sara@dealer.test", "Password123", identity.Access{})
		require.NoError(t, err)
		inactive := identity.StatusInactive
		_, err = user.Apply(identity.SubUserUpdate{Status: &inactive})
		require.NoError(t, err)

		f.admins.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.subUsers.On("FindByEmail", ctx, "sara@dealer.test").Return(user, nil)

		_, err = f.service.Login(ctx, LoginInput{Email: "sara@dealer.test", Password: "Password123"})
		assert.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture()
		f.admins.On("FindByEmail", ctx, "ghost@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "ghost@dealer.test").Return(nil, shared.ErrNotFound)
		f.subUsers.On("FindByEmail", ctx, "ghost@dealer.test").Return(nil, shared.ErrNotFound)

		_, err := f.service.Login(ctx, LoginInput{Email: "ghost@dealer.test", Password: "Password123"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("lookup failure is an internal error", func(t *testing.T) {
		f := newAuthFixture()
		f.admins.On("FindByEmail", ctx, "root@dealer.test").Return(nil, errors.New("connection reset"))

		_, err := f.service.Login(ctx, LoginInput{Email: "root@dealer.test", Password: "Password123"})

		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INTERNAL_ERROR", de.Code)
	})

	t.Run("empty credentials", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.service.Login(ctx, LoginInput{Email: "", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		f.admins.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	require.NoError(t, f.service.Logout(ctx, LogoutInput{JTI: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}))
	revoked, err := f.blacklist.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, f.service.Logout(ctx, LogoutInput{JTI: "jti-2", ExpiresAt: time.Now().Add(-time.Minute)}))
	revoked, err = f.blacklist.IsBlacklisted(ctx, "jti-2")
	require.NoError(t, err)
	assert.False(t, revoked, "expired tokens need no revocation")
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	company, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
	require.NoError(t, err)
	f.companies.On("FindByID", ctx, company.ID).Return(company, nil)

	profile, err := f.service.Me(ctx, identity.Principal{ID: company.ID, Role: identity.RoleCompany, CompanyID: company.ID})

	require.NoError(t, err)
	require.NotNil(t, profile.Company)
	assert.Equal(t, "Khan Motors", profile.Company.CompanyName)
	assert.Nil(t, profile.Admin)
}

func TestAuthService_ValidatePIN(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	company, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
	require.NoError(t, err)
	require.NoError(t, company.SetPIN("4321"))
	f.companies.On("FindByID", ctx, company.ID).Return(company, nil)

	sub := identity.Principal{ID: uuid.New(), Role: identity.RoleSubUser, CompanyID: company.ID}

	valid, err := f.service.ValidatePIN(ctx, sub, "4321")
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = f.service.ValidatePIN(ctx, sub, "0000")
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = f.service.ValidatePIN(ctx, identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin}, "4321")
	assert.ErrorIs(t, err, shared.ErrForbidden)
}
