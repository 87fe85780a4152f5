package auth

import (
	"strings"
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	if hash == "secret" {
		t.Error("hash must not equal the plaintext password")
	}

	if !CheckPasswordHash("secret", hash) {
		t.Error("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestTokens(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		token, err := GenerateToken("user-1", "ana")
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}

		claims, err := ParseToken(token)
		if err != nil {
			t.Fatalf("token parsing failed: %v", err)
		}
		if claims.UserID != "user-1" || claims.Username != "ana" {
			t.Errorf("unexpected claims: %+v", claims)
		}
		if claims.ID == "" {
			t.Error("expected a token id for revocation")
		}
	})

	t.Run("UniqueTokenIDs", func(t *testing.T) {
		a, err := GenerateToken("u", "n")
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}
		b, err := GenerateToken("u", "n")
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}

		ca, _ := ParseToken(a)
		cb, _ := ParseToken(b)
		if ca.ID == cb.ID {
			t.Error("expected distinct token ids")
		}
	})

	t.Run("TamperedTokenRejected", func(t *testing.T) {
		token, err := GenerateToken("user-1", "ana")
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}

		parts := strings.Split(token, ".")
		tampered := parts[0] + "." + parts[1] + ".AAAA"
		if _, err := ParseToken(tampered); err == nil {
			t.Error("expected tampered token to be rejected")
		}
	})
}
