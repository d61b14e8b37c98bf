package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/ports"
)

// AuthService implements login, token resolution, and the authorization guard.
type AuthService struct {
	repo     ports.UserRepository
	presence ports.PresenceTracker
	codec    *TokenCodec
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, presence ports.PresenceTracker, codec *TokenCodec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, presence: presence, codec: codec, log: log}
}

// Login verifies the credential pair and issues a bearer token. An unknown
// username and a wrong password produce the same error so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !verifyPassword(password, account.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(account.Username)
	if err != nil {
		return "", err
	}

	s.recordLogin(ctx, account)
	return token, nil
}

// recordLogin updates last-login bookkeeping. The login has already
// succeeded, so failures here are logged and swallowed.
func (s *AuthService) recordLogin(ctx context.Context, account *domain.Account) {
	account.LastLogin = time.Now().UTC()
	account.IsOnline = true
	if _, err := s.repo.Update(ctx, account); err != nil {
		s.log.Warn().Err(err).Str("username", account.Username).Msg("last-login update failed")
	}
	if s.presence != nil {
		if err := s.presence.MarkOnline(ctx, account.Username); err != nil {
			s.log.Warn().Err(err).Str("username", account.Username).Msg("presence mark failed")
		}
	}
}

// Resolve maps a presented token to the caller's current account. A token for
// an account deleted after issuance is cryptographically valid but resolves
// to domain.ErrUnknownSubject.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Account, error) {
	subject, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownSubject
		}
		return nil, err
	}
	return account, nil
}

// Authorize decides whether account may perform an operation requiring the
// given role. The check runs against the freshly resolved account, so a role
// downgrade takes effect on the next request rather than at token expiry.
func (s *AuthService) Authorize(account *domain.Account, required domain.Role) error {
	if account == nil || account.Role != required {
		return domain.ErrForbidden
	}
	return nil
}
