package identity

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"github.com/dealerdesk/backend/internal/domain/shared"
	"github.com/dealerdesk/backend/internal/infrastructure/auth"
	"github.com/dealerdesk/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	identity.SetPasswordCost(bcrypt.MinCost)
	os.Exit(m.Run())
}

// MockAdminRepository is a mock implementation of identity.AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *identity.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Admin), args.Error(1)
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Admin), args.Error(1)
}

func (m *MockAdminRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCompanyRepository is a mock implementation of identity.CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Update(ctx context.Context, company *identity.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByEmail(ctx context.Context, email string) (*identity.Company, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.Company), args.Error(1)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubUserRepository is a mock implementation of identity.SubUserRepository
type MockSubUserRepository struct {
	mock.Mock
}

func (m *MockSubUserRepository) Create(ctx context.Context, user *identity.SubUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSubUserRepository) Update(ctx context.Context, user *identity.SubUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSubUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.SubUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.SubUser), args.Error(1)
}

func (m *MockSubUserRepository) FindByEmail(ctx context.Context, email string) (*identity.SubUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.SubUser), args.Error(1)
}

func (m *MockSubUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubUserRepository) FindAll(ctx context.Context, companyID *uuid.UUID, filter shared.Filter) ([]*identity.SubUser, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).([]*identity.SubUser), args.Error(1)
}

func (m *MockSubUserRepository) Count(ctx context.Context, companyID *uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, companyID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockSiteUserRepository is a mock implementation of identity.SiteUserRepository
type MockSiteUserRepository struct {
	mock.Mock
}

func (m *MockSiteUserRepository) Create(ctx context.Context, user *identity.SiteUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockSiteUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSiteUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.SiteUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.SiteUser), args.Error(1)
}

func (m *MockSiteUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockSiteUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*identity.SiteUser, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.SiteUser), args.Error(1)
}

func (m *MockSiteUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// fakeImageStore records uploads in memory
type fakeImageStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{objects: make(map[string][]byte)}
}

func (s *fakeImageStore) Upload(_ context.Context, key string, data []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *fakeImageStore) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeImageStore) ObjectURL(_ context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

type passthroughProcessor struct{}

func (passthroughProcessor) Process(data []byte) ([]byte, string, error) {
	return data, "image/webp", nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-that-is-long-enough-32",
		Expiration: time.Hour,
		Issuer:     "dealerdesk-test",
	})
}
