package services

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "normalizes case and spaces", raw: " USER@EXAMPLE.COM ", want: "user@example.com"},
		{name: "invalid email returns empty", raw: "not-email", want: ""},
		{name: "empty returns empty", raw: "   ", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" USER@EXAMPLE.COM ", "  StrongPass1  ")
	if err != nil {
		t.Fatalf("expected valid credentials input, got %v", err)
	}
	if email != "user@example.com" || password != "StrongPass1" {
		t.Fatalf("expected normalized credentials, got %q and %q", email, password)
	}

	if _, _, err := NormalizeCredentialsInput("not-email", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for invalid email, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("user@example.com", " "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty password, got %v", err)
	}
}

func TestNormalizeUserName(t *testing.T) {
	name, err := NormalizeUserName("  Ada   Lovelace ")
	if err != nil || name != "Ada Lovelace" {
		t.Fatalf("expected collapsed name, got %q (%v)", name, err)
	}
	if _, err := NormalizeUserName("   "); !errors.Is(err, ErrAuthNameInvalid) {
		t.Fatalf("expected ErrAuthNameInvalid for blank name, got %v", err)
	}
	if _, err := NormalizeUserName(strings.Repeat("a", MaxUserNameLength+1)); !errors.Is(err, ErrAuthNameInvalid) {
		t.Fatalf("expected ErrAuthNameInvalid for long name, got %v", err)
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	for _, password := range []string{"Short1", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		if err := ValidatePasswordStrength(password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}
	if err := ValidatePasswordStrength("StrongPass1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
