package utils_test

import (
	"testing"

	"github.com/stayvista/stayvista-api/internal/utils"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Alice@Example.COM", "alice@example.com"},
		{"  bob@example.com  ", "bob@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := utils.NormalizeEmail(tt.in); got != tt.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"Alice@Example.Com", true},
		{"", false},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"alice@", false},
		{"alice@nodot", false},
	}

	for _, tt := range tests {
		if got := utils.IsValidEmail(tt.email); got != tt.want {
			t.Fatalf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
