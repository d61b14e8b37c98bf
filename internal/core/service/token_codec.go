package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/healthdesk/staff-directory/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenCodec signs and verifies the bearer tokens issued at login. Tokens
// carry only the subject username plus issued-at and expiry; the role is
// deliberately absent and re-resolved from the store on every request.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec signing with secret. If ttl <= 0 the default
// expiry window is used.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed HS256 token binding subject until the expiry window
// elapses.
func (tc *TokenCodec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tc.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tc.secret)
}

// Decode returns the subject bound into token. Malformed encoding, a wrong or
// forged signature, an unexpected algorithm, and a past expiry all yield
// domain.ErrInvalidToken.
func (tc *TokenCodec) Decode(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
