package ports

import (
	"context"

	"github.com/healthdesk/staff-directory/internal/core/domain"
)

// AccountInput carries the fields accepted at registration and full update.
type AccountInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Department      string
	Role            domain.Role
}

// UserService encapsulates the admin-gated directory operations.
type UserService interface {
	Register(ctx context.Context, in AccountInput) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, id string, in AccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
