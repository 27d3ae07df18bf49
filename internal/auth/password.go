// Package auth provides password hashing and session token generation.
package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is fixed; changing it only affects newly created hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
// A mismatch or a malformed hash both yield false, never an error.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
