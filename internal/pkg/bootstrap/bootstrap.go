package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edupay/edupay-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// EnsureAdminUser creates the default admin account when no users exist yet.
// The password hash is generated here rather than seeded in SQL.
func EnsureAdminUser(ctx context.Context, userRepo user.UserRepository) error {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	email := "admin@edupay.com"
	_, err = userRepo.Create(ctx, user.User{
		Username:           defaultAdminUsername,
		PasswordHash:       string(hash),
		Role:               user.RoleAdmin,
		FullName:           "System Administrator",
		Email:              &email,
		IsActive:           true,
		MustChangePassword: false,
	})
	if err != nil {
		return fmt.Errorf("failed to create default admin user: %w", err)
	}

	slog.Warn("Created default admin account; change its password after the first login",
		"username", defaultAdminUsername)
	return nil
}
