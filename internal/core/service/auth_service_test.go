package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/ports"
)

type stubUserRepo struct {
	accounts   map[string]*domain.Account // keyed by username
	nextID     int
	failUpdate bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, exists := r.accounts[account.Username]; exists {
		return nil, domain.ErrUserExists
	}
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneAccount(account)
	if created.ID == "" {
		r.nextID++
		created.ID = strconv.Itoa(r.nextID)
	}
	r.accounts[created.Username] = cloneAccount(created)
	return cloneAccount(created), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	if a, ok := r.accounts[username]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if r.failUpdate {
		return nil, errors.New("store unavailable")
	}
	for username, a := range r.accounts {
		if a.ID == account.ID {
			delete(r.accounts, username)
			r.accounts[account.Username] = cloneAccount(account)
			return cloneAccount(account), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	for username, a := range r.accounts {
		if a.ID == id {
			delete(r.accounts, username)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *cloneAccount(a))
	}
	return out, nil
}

type stubPresence struct {
	online map[string]bool
	err    error
}

func newStubPresence() *stubPresence {
	return &stubPresence{online: make(map[string]bool)}
}

func (p *stubPresence) MarkOnline(_ context.Context, username string) error {
	if p.err != nil {
		return p.err
	}
	p.online[username] = true
	return nil
}

func (p *stubPresence) IsOnline(_ context.Context, username string) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	return p.online[username], nil
}

func seedAccount(t *testing.T, repo ports.UserRepository, username, password string, role domain.Role) *domain.Account {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	created, err := repo.Create(context.Background(), &domain.Account{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Department:   "General",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed %s: %v", username, err)
	}
	return created
}

func newAuthService(repo ports.UserRepository, presence ports.PresenceTracker) *AuthService {
	codec := NewTokenCodec("secret", time.Hour)
	return NewAuthService(repo, presence, codec, zerolog.Nop())
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	presence := newStubPresence()
	seedAccount(t, repo, "admin", "Admin@123", domain.RoleAdmin)
	svc := newAuthService(repo, presence)

	token, err := svc.Login(context.Background(), "admin", "Admin@123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	account, err := svc.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if account.Username != "admin" || account.Role != domain.RoleAdmin {
		t.Fatalf("unexpected account: %+v", account)
	}
	if account.LastLogin.IsZero() || !account.IsOnline {
		t.Fatalf("expected last-login and online flag to be recorded")
	}
	if !presence.online["admin"] {
		t.Fatalf("expected presence marker")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedAccount(t, repo, "dave", "Good1@pass", domain.RoleEmployee)
	svc := newAuthService(repo, newStubPresence())

	if _, err := svc.Login(context.Background(), "dave", "Bad1@pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserSameError(t *testing.T) {
	repo := newStubUserRepo()
	seedAccount(t, repo, "dave", "Good1@pass", domain.RoleEmployee)
	svc := newAuthService(repo, newStubPresence())

	_, unknownErr := svc.Login(context.Background(), "ghost", "Good1@pass")
	_, wrongErr := svc.Login(context.Background(), "dave", "Bad1@pass")

	if unknownErr != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}
	if unknownErr != wrongErr {
		t.Fatalf("unknown-user and wrong-password must be indistinguishable: %v vs %v", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_SideEffectFailureDoesNotFailLogin(t *testing.T) {
	repo := newStubUserRepo()
	seedAccount(t, repo, "erin", "Good1@pass", domain.RoleDoctor)
	repo.failUpdate = true
	presence := newStubPresence()
	presence.err = errors.New("redis down")
	svc := newAuthService(repo, presence)

	token, err := svc.Login(context.Background(), "erin", "Good1@pass")
	if err != nil {
		t.Fatalf("login must succeed despite side-effect failures: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
}

func TestAuthService_Resolve_InvalidToken(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubPresence())

	if _, err := svc.Resolve(context.Background(), "garbage"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_Resolve_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	created := seedAccount(t, repo, "frank", "Good1@pass", domain.RoleEmployee)
	svc := newAuthService(repo, newStubPresence())

	token, err := svc.Login(context.Background(), "frank", "Good1@pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := repo.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.Resolve(context.Background(), token); err != domain.ErrUnknownSubject {
		t.Fatalf("expected ErrUnknownSubject for deleted account, got %v", err)
	}
}

func TestAuthService_Authorize(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), newStubPresence())

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleDoctor, domain.RoleEmployee} {
		account := &domain.Account{Username: "x", Role: role}
		err := svc.Authorize(account, domain.RoleAdmin)
		if role == domain.RoleAdmin && err != nil {
			t.Fatalf("expected admin to be allowed, got %v", err)
		}
		if role != domain.RoleAdmin && err != domain.ErrForbidden {
			t.Fatalf("expected ErrForbidden for role %s, got %v", role, err)
		}
	}

	if err := svc.Authorize(nil, domain.RoleAdmin); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for nil account, got %v", err)
	}
}
