package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stayvista/stayvista-api/internal/platform/auth"
)

const testSecret = "unit-test-secret"

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := auth.NewAccessToken("alice@example.com", "Alice", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	claims, err := auth.Parse(token, testSecret)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("Expected email alice@example.com, got %s", claims.Email)
	}
	if claims.Name != "Alice" {
		t.Fatalf("Expected name Alice, got %s", claims.Name)
	}
}

func TestAccessToken_Expired(t *testing.T) {
	token, err := auth.NewAccessToken("bob@example.com", "Bob", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := auth.Parse(token, testSecret); err == nil {
		t.Fatal("Expected error for expired token")
	}
}

func TestAccessToken_Tampered(t *testing.T) {
	token, err := auth.NewAccessToken("carol@example.com", "Carol", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := auth.Parse(tampered, testSecret); err == nil {
		t.Fatal("Expected error for tampered token")
	}
}

func TestAccessToken_WrongSecret(t *testing.T) {
	token, err := auth.NewAccessToken("dave@example.com", "Dave", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := auth.Parse(token, "a-different-secret"); err == nil {
		t.Fatal("Expected error for token signed with a different secret")
	}
}

func TestAccessToken_Garbage(t *testing.T) {
	if _, err := auth.Parse("not-a-token", testSecret); err == nil {
		t.Fatal("Expected error for malformed token")
	}
}
