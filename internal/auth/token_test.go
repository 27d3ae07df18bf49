package auth

import (
	"encoding/hex"
	"testing"
)

func TestNewSessionToken(t *testing.T) {
	token, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken() error = %v", err)
	}

	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not hex encoded: %v", err)
	}
	if len(raw) != sessionTokenBytes {
		t.Fatalf("token carries %d bytes of entropy, want %d", len(raw), sessionTokenBytes)
	}
}

func TestNewSessionTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := NewSessionToken()
		if err != nil {
			t.Fatalf("NewSessionToken() error = %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = true
	}
}
