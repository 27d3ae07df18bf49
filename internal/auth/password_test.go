package auth

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		hashOf    string
		verify    string
		wantMatch bool
	}{
		{
			name:      "correct password matches",
			hashOf:    "pw123",
			verify:    "pw123",
			wantMatch: true,
		},
		{
			name:      "wrong password does not match",
			hashOf:    "pw123",
			verify:    "pw124",
			wantMatch: false,
		},
		{
			name:      "empty guess does not match",
			hashOf:    "pw123",
			verify:    "",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.hashOf)
			if err != nil {
				t.Fatalf("HashPassword() error = %v", err)
			}
			if got := VerifyPassword(tt.verify, hash); got != tt.wantMatch {
				t.Fatalf("VerifyPassword() = %v, want %v", got, tt.wantMatch)
			}
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Fatal("equal plaintexts must produce different hashes")
	}
	if first == "pw123" || second == "pw123" {
		t.Fatal("hash must not be the plaintext")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if VerifyPassword("pw123", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must not verify")
	}
}
