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

type subUserFixture struct {
	admins    *MockAdminRepository
	companies *MockCompanyRepository
	subUsers  *MockSubUserRepository
	blacklist *auth.InMemoryTokenBlacklist
	service   *SubUserService
}

func newSubUserFixture() *subUserFixture {
	f := &subUserFixture{
		admins:    new(MockAdminRepository),
		companies: new(MockCompanyRepository),
		subUsers:  new(MockSubUserRepository),
		blacklist: auth.NewInMemoryTokenBlacklist(),
	}
	f.service = NewSubUserService(f.admins, f.companies, f.subUsers, f.blacklist, time.Hour, zap.NewNop())
	return f
}

func companyPrincipal(id uuid.UUID) identity.Principal {
	return identity.Principal{ID: id, Role: identity.RoleCompany, CompanyID: id, Access: identity.FullAccess()}
}

func TestSubUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("company creates under its own company", func(t *testing.T) {
		f := newSubUserFixture()
		companyID := uuid.New()
		f.admins.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.subUsers.On("FindByEmail", ctx, "sara@dealer.test").Return(nil, shared.ErrNotFound)
		f.subUsers.On("Create", ctx, mock.AnythingOfType("*identity.SubUser")).Return(nil)

		out, err := f.service.Create(ctx, companyPrincipal(companyID), CreateSubUserInput{
			CompanyID: uuid.New(), // ignored for company callers
			Name:      "Sara",
			Email:     "sara@dealer.test",
			Password:  "Password123",
			Access:    identity.Access{CarManagement: true},
		})

		require.NoError(t, err)
		assert.Equal(t, companyID, out.CompanyID)
		assert.True(t, out.Access.CarManagement)
		assert.False(t, out.Access.Investors)
	})

	t.Run("admin must name an existing company", func(t *testing.T) {
		f := newSubUserFixture()
		admin := identity.Principal{ID: uuid.New(), Role: identity.RoleAdmin}

		_, err := f.service.Create(ctx, admin, CreateSubUserInput{Name: "Sara", Email: "sara@dealer.test", Password: "Password123"})
		assert.Error(t, err)

		missing := uuid.New()
		f.companies.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)
		_, err = f.service.Create(ctx, admin, CreateSubUserInput{CompanyID: missing, Name: "Sara", Email: "sara@dealer.test", Password: "Password123"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("sub-users cannot create sub-users", func(t *testing.T) {
		f := newSubUserFixture()
		p := identity.Principal{ID: uuid.New(), Role: identity.RoleSubUser, CompanyID: uuid.New(), Access: identity.FullAccess()}
		_, err := f.service.Create(ctx, p, CreateSubUserInput{Name: "X", Email: "x@dealer.test", Password: "Password123"})
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestSubUserService_Visibility(t *testing.T) {
	ctx := context.Background()
	f := newSubUserFixture()
	companyID := uuid.New()
	user, err := identity.NewSubUser(companyID, "Sara", "sara@dealer.test", "Password123", identity.Access{})
	require.NoError(t, err)
	f.subUsers.On("FindByID", ctx, user.ID).Return(user, nil)

	_, err = f.service.Get(ctx, companyPrincipal(companyID), user.ID)
	assert.NoError(t, err)

	_, err = f.service.Get(ctx, companyPrincipal(uuid.New()), user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	err = f.service.Delete(ctx, companyPrincipal(uuid.New()), user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	f.subUsers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubUserService_List(t *testing.T) {
	ctx := context.Background()
	f := newSubUserFixture()
	companyID := uuid.New()

	ownCompany := mock.MatchedBy(func(id *uuid.UUID) bool { return id != nil && *id == companyID })
	f.subUsers.On("FindAll", ctx, ownCompany, mock.Anything).Return([]*identity.SubUser{}, nil)
	f.subUsers.On("Count", ctx, ownCompany, mock.Anything).Return(int64(0), nil)

	other := uuid.New()
	out, err := f.service.List(ctx, companyPrincipal(companyID), SubUserFilter{CompanyID: &other})

	require.NoError(t, err)
	assert.Empty(t, out.Items)
	f.subUsers.AssertExpectations(t)
}

func TestSubUserService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("access change revokes sessions", func(t *testing.T) {
		f := newSubUserFixture()
		companyID := uuid.New()
		user, err := identity.NewSubUser(companyID, "Sara", "sara@dealer.test", "Password123", identity.Access{})
		require.NoError(t, err)
		f.subUsers.On("FindByID", ctx, user.ID).Return(user, nil)
		f.subUsers.On("Update", ctx, user).Return(nil)

		access := identity.Access{Investors: true}
		out, err := f.service.Update(ctx, companyPrincipal(companyID), user.ID, UpdateSubUserInput{Access: &access})

		require.NoError(t, err)
		assert.True(t, out.Access.Investors)
		revoked, err := f.blacklist.IsSubjectInvalidated(ctx, user.ID.String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("rename keeps sessions", func(t *testing.T) {
		f := newSubUserFixture()
		companyID := uuid.New()
		user, err := identity.NewSubUser(companyID, "Sara", "sara@dealer.test", "Password123", identity.Access{})
		require.NoError(t, err)
		f.subUsers.On("FindByID", ctx, user.ID).Return(user, nil)
		f.subUsers.On("Update", ctx, user).Return(nil)

		name := "Sara Ahmed"
		_, err = f.service.Update(ctx, companyPrincipal(companyID), user.ID, UpdateSubUserInput{Name: &name})

		require.NoError(t, err)
		revoked, err := f.blacklist.IsSubjectInvalidated(ctx, user.ID.String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("email owned by a company is taken", func(t *testing.T) {
		f := newSubUserFixture()
		companyID := uuid.New()
		user, err := identity.NewSubUser(companyID, "Sara", "sara@dealer.test", "Password123", identity.Access{})
		require.NoError(t, err)
		owner, err := identity.NewCompany("Ali", "Khan Motors", "khan@dealer.test", "Password123")
		require.NoError(t, err)
		f.subUsers.On("FindByID", ctx, user.ID).Return(user, nil)
		f.admins.On("FindByEmail", ctx, "khan@dealer.test").Return(nil, shared.ErrNotFound)
		f.companies.On("FindByEmail", ctx, "khan@dealer.test").Return(owner, nil)

		email := "khan@dealer.test"
		_, err = f.service.Update(ctx, companyPrincipal(companyID), user.ID, UpdateSubUserInput{Email: &email})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestSubUserService_Me(t *testing.T) {
	ctx := context.Background()
	f := newSubUserFixture()
	user, err := identity.NewSubUser(uuid.New(), "Sara", "sara@dealer.test", "Password123", identity.Access{Analytics: true})
	require.NoError(t, err)
	f.subUsers.On("FindByID", ctx, user.ID).Return(user, nil)

	out, err := f.service.Me(ctx, identity.Principal{ID: user.ID, Role: identity.RoleSubUser, CompanyID: user.CompanyID})
	require.NoError(t, err)
	assert.Equal(t, "Sara", out.Name)

	_, err = f.service.Me(ctx, companyPrincipal(uuid.New()))
	assert.ErrorIs(t, err, shared.ErrForbidden)
}

func TestSiteUserService(t *testing.T) {
	ctx := context.Background()
	users := new(MockSiteUserRepository)
	service := NewSiteUserService(users, zap.NewNop())

	users.On("ExistsByEmail", ctx, "visitor@site.test").Return(false, nil).Once()
	users.On("Create", ctx, mock.AnythingOfType("*identity.SiteUser")).Return(nil)
	out, err := service.Register(ctx, RegisterSiteUserInput{Name: "Visitor", Email: "Visitor@Site.test", Password: "Password123"})
	require.NoError(t, err)
	assert.Equal(t, "visitor@site.test", out.Email)

	users.On("ExistsByEmail", ctx, "visitor@site.test").Return(true, nil)
	_, err = service.Register(ctx, RegisterSiteUserInput{Name: "Visitor", Email: "visitor@site.test", Password: "Password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	id := uuid.New()
	users.On("Delete", ctx, id).Return(shared.ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, id), shared.ErrNotFound)
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	input := BootstrapAdmin{Name: "Root", Email: "root@dealer.test", Password: "Password123"}

	t.Run("creates the first admin", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("Count", ctx).Return(int64(0), nil)
		admins.On("Create", ctx, mock.MatchedBy(func(a *identity.Admin) bool {
			return a.Email == "root@dealer.test" && a.VerifyPassword("Password123")
		})).Return(nil)

		created, err := EnsureAdmin(ctx, admins, input, zap.NewNop())
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("skips when an admin exists", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("Count", ctx).Return(int64(1), nil)

		created, err := EnsureAdmin(ctx, admins, input, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, created)
		admins.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("skips without configured credentials", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("Count", ctx).Return(int64(0), nil)

		created, err := EnsureAdmin(ctx, admins, BootstrapAdmin{}, zap.NewNop())
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("count failure", func(t *testing.T) {
		admins := new(MockAdminRepository)
		admins.On("Count", ctx).Return(int64(0), errors.New("db down"))

		_, err := EnsureAdmin(ctx, admins, input, zap.NewNop())
		assert.Error(t, err)
	})
}
