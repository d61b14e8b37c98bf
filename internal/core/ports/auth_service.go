package ports

import (
	"context"

	"github.com/healthdesk/staff-directory/internal/core/domain"
)

// AuthService is the authentication and authorization core consumed by the
// HTTP layer.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token. Unknown
	// username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, error)
	// Resolve maps a presented token to the caller's current account,
	// returning domain.ErrInvalidToken or domain.ErrUnknownSubject when the
	// token or its subject no longer holds.
	Resolve(ctx context.Context, token string) (*domain.Account, error)
	// Authorize decides whether the resolved account may perform an operation
	// requiring the given role.
	Authorize(account *domain.Account, required domain.Role) error
}
