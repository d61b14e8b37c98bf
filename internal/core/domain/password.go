package domain

import "strings"

const (
	passwordMinLength = 8
	passwordMaxLength = 128
	passwordSpecials  = "@$!%*?&"
)

// PolicyError reports the first password-strength rule a candidate broke.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string { return e.Reason }

// ErrPasswordMismatch rejects a registration or update whose confirmation
// does not match the password.
var ErrPasswordMismatch = &PolicyError{Reason: "passwords do not match"}

// ValidatePassword checks a plaintext password against the strength policy.
// Rules are checked in order and the first violation wins. Applied at account
// creation and password-changing updates, never at login.
func ValidatePassword(password string) error {
	switch {
	case len(password) < passwordMinLength:
		return &PolicyError{Reason: "password must be at least 8 characters long"}
	case len(password) > passwordMaxLength:
		return &PolicyError{Reason: "password must be at most 128 characters long"}
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }):
		return &PolicyError{Reason: "password must contain at least one lowercase letter"}
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }):
		return &PolicyError{Reason: "password must contain at least one uppercase letter"}
	case !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }):
		return &PolicyError{Reason: "password must contain at least one digit"}
	case !strings.ContainsAny(password, passwordSpecials):
		return &PolicyError{Reason: "password must contain at least one special character (@$!%*?&)"}
	}
	return nil
}
