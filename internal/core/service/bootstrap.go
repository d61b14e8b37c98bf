package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/ports"
)

// BootstrapAdmin holds the credentials for the account created on first boot.
type BootstrapAdmin struct {
	Username string
	Password string
	Email    string
}

// EnsureDefaultAdmin creates the initial admin account on an empty store.
// It inserts unconditionally and relies on the repository's unique username
// constraint: under concurrent first boots of multiple instances exactly one
// insert wins and the rest observe domain.ErrUserExists, which is success.
func EnsureDefaultAdmin(ctx context.Context, repo ports.UserRepository, admin BootstrapAdmin, log zerolog.Logger) error {
	hash, err := hashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: hash,
		Department:   "Administration",
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			log.Debug().Str("username", admin.Username).Msg("default admin already present")
			return nil
		}
		return fmt.Errorf("create default admin: %w", err)
	}

	log.Info().Str("username", admin.Username).Msg("default admin created")
	return nil
}
