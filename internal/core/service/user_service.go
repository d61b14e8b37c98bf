package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/ports"
)

// UserService implements the admin-gated directory operations.
type UserService struct {
	repo     ports.UserRepository
	presence ports.PresenceTracker
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, presence ports.PresenceTracker, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, presence: presence, log: log}
}

// Register creates a new account after checking the password confirmation and
// the strength policy. Username and email uniqueness is enforced by the
// repository.
func (s *UserService) Register(ctx context.Context, in ports.AccountInput) (*domain.Account, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Department:   in.Department,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.repo.Create(ctx, account)
}

func (s *UserService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		s.overlayPresence(ctx, &accounts[i])
	}
	return accounts, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	s.overlayPresence(ctx, account)
	return account, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	s.overlayPresence(ctx, account)
	return account, nil
}

// Update replaces the mutable fields of an account. The new password goes
// through the same confirmation and policy checks as registration and is
// re-hashed before storage.
func (s *UserService) Update(ctx context.Context, id string, in ports.AccountInput) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	account.Username = in.Username
	account.Email = in.Email
	account.PasswordHash = hash
	account.Department = in.Department
	account.Role = in.Role
	account.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, account)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// overlayPresence replaces the stored online flag with the live presence
// marker when the tracker is reachable; otherwise the stored flag stands.
func (s *UserService) overlayPresence(ctx context.Context, account *domain.Account) {
	if s.presence == nil {
		return
	}
	online, err := s.presence.IsOnline(ctx, account.Username)
	if err != nil {
		s.log.Debug().Err(err).Str("username", account.Username).Msg("presence lookup failed")
		return
	}
	account.IsOnline = online
}
