package service

import "golang.org/x/crypto/bcrypt"

// hashPassword produces a self-contained bcrypt digest embedding its own salt
// and cost, so verification needs no side channel.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plaintext matches digest. Comparison is
// constant time with respect to the secret; a malformed digest counts as a
// mismatch, never a panic.
func verifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
