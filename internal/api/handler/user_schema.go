package handler

import (
	"time"

	"github.com/healthdesk/staff-directory/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type accountRequest struct {
	Username        string `json:"username"         validate:"required,min=3,max=50"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Department      string `json:"department"       validate:"required"`
	Role            string `json:"role"             validate:"required,oneof=Admin Doctor Employee"`
}

// tokenResponse is the OAuth-style envelope returned by a successful login.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// accountResponse is the transport shape of a directory entry. It is
// intentionally separate from the domain type so the JSON contract is not
// coupled to internal changes; the password hash never appears here.
type accountResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	LastLogin  time.Time `json:"last_login,omitempty"`
	IsOnline   bool      `json:"is_online"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:         a.ID,
		Username:   a.Username,
		Email:      a.Email,
		Department: a.Department,
		Role:       string(a.Role),
		LastLogin:  a.LastLogin,
		IsOnline:   a.IsOnline,
	}
}

func toAccountList(accounts []domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for i := range accounts {
		out = append(out, toAccountResponse(&accounts[i]))
	}
	return out
}
