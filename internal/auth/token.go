package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// sessionTokenBytes gives 256 bits of entropy per token.
const sessionTokenBytes = 32

// NewSessionToken returns an unguessable opaque session token.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
