package token

import (
	"errors"
	"testing"
	"time"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	payload := map[string]any{
		"email": "a@x.com",
		"name":  "Alice",
	}

	signed, err := svc.Issue(payload)
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("unexpected error verifying token: %v", err)
	}

	if len(claims) != len(payload) {
		t.Errorf("expected %d claims, got %d: %v", len(payload), len(claims), claims)
	}
	if claims["email"] != "a@x.com" {
		t.Errorf("expected email claim a@x.com, got %v", claims["email"])
	}
	if claims["name"] != "Alice" {
		t.Errorf("expected name claim Alice, got %v", claims["name"])
	}
}

func TestVerify_ValidUntilExpiry(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	signed, err := svc.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	// Still valid just inside the window.
	svc.now = func() time.Time { return issuedAt.Add(59 * time.Minute) }
	if _, err := svc.Verify(signed); err != nil {
		t.Errorf("token should be valid before expiry, got: %v", err)
	}

	// Expired just outside it.
	svc.now = func() time.Time { return issuedAt.Add(61 * time.Minute) }
	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidCredential) {
		t.Errorf("expected ErrInvalidCredential after expiry, got: %v", err)
	}
}

func TestVerify_Failures(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	other := NewService("other-secret", time.Hour)

	signedByOther, err := other.Issue(map[string]any{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("unexpected error issuing token: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"malformed token", "not.a.jwt"},
		{"garbage token", "xxxxxxxx"},
		{"mismatched secret", signedByOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			if !errors.Is(err, ErrInvalidCredential) {
				t.Errorf("expected ErrInvalidCredential, got: %v", err)
			}
		})
	}
}
