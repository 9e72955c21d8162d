package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	testCases := []struct {
		raw  string
		want string
	}{
		{"  User@Example.COM  ", "user@example.com"},
		{"user@example.com", "user@example.com"},
		{"not-an-email", ""},
		{"@example.com", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, testCase := range testCases {
		if got := NormalizeAuthEmail(testCase.raw); got != testCase.want {
			t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput("  User@Example.com ", " secretPW1 ")
	if err != nil {
		t.Fatalf("NormalizeCredentialsInput() unexpected error: %v", err)
	}
	if email != "user@example.com" {
		t.Fatalf("unexpected email %q", email)
	}
	if password != "secretPW1" {
		t.Fatalf("unexpected password %q", password)
	}
}

func TestNormalizeCredentialsInputRejectsMissingParts(t *testing.T) {
	if _, _, err := NormalizeCredentialsInput("", "secret"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for empty email, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("user@example.com", "   "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for blank password, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("garbage", "secret"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for malformed email, got %v", err)
	}
}

func TestValidateRecoveryCodeFormat(t *testing.T) {
	valid := []string{
		"STRAND-AB2D-EF3H-JK4M",
		"  STRAND-AB2D-EF3H-JK4M  ",
	}
	for _, code := range valid {
		if err := ValidateRecoveryCodeFormat(code); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", code, err)
		}
	}

	invalid := []string{
		"",
		"STRAND-AB2D-EF3H",
		"strand-ab2d-ef3h-jk4m",
		"OTHER-AB2D-EF3H-JK4M",
		"STRAND-AB2D-EF3H-JK4M-EXTRA",
	}
	for _, code := range invalid {
		if err := ValidateRecoveryCodeFormat(code); !errors.Is(err, ErrAuthRecoveryCodeInvalid) {
			t.Fatalf("expected %q to be rejected, got %v", code, err)
		}
	}
}
