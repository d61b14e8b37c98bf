package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Exactly one role per account;
// authorization always reads the role from the store, never from a token.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleDoctor   Role = "Doctor"
	RoleEmployee Role = "Employee"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleEmployee:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrInvalidToken = errors.New("invalid token")
var ErrUnknownSubject = errors.New("user not found")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("admin-only operation")

// Account models a staff member in the directory.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Department   string    `json:"department"`
	Role         Role      `json:"role"`
	LastLogin    time.Time `json:"last_login"`
	IsOnline     bool      `json:"is_online"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
