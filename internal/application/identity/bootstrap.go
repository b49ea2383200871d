package identity

import (
	"context"
	"fmt"

	"github.com/dealerdesk/backend/internal/domain/identity"
	"go.uber.org/zap"
)

// BootstrapAdmin describes the platform admin created on first start
type BootstrapAdmin struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates the bootstrap admin when no admin exists yet. It reports
// whether an admin was created.
func EnsureAdmin(ctx context.Context, admins identity.AdminRepository, input BootstrapAdmin, logger *zap.Logger) (bool, error) {
	count, err := admins.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if input.Email == "" || input.Password == "" {
		logger.Warn("No admin account exists and no bootstrap admin is configured")
		return false, nil
	}

	admin, err := identity.NewAdmin(input.Name, input.Email, input.Password)
	if err != nil {
		return false, fmt.Errorf("bootstrap admin: %w", err)
	}
	if err := admins.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("create bootstrap admin: %w", err)
	}
	logger.Info("Bootstrap admin created", zap.String("email", admin.Email))
	return true, nil
}
