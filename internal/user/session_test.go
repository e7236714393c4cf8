package user

import (
	"testing"
	"time"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	token, err := MintSessionToken(99, "secret", time.Hour, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := VerifySessionToken(token, "secret", now.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected user 99, got %d", id)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	token, err := MintSessionToken(99, "secret", time.Hour, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := VerifySessionToken(token, "secret", now.Add(2*time.Hour)); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	now := time.Now()
	token, err := MintSessionToken(99, "secret", time.Hour, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := VerifySessionToken(token, "other-secret", now); err == nil {
		t.Fatalf("expected wrong secret to fail")
	}
}

func TestSessionTokenMissingInputs(t *testing.T) {
	if _, err := MintSessionToken(99, "", time.Hour, time.Now()); err == nil {
		t.Fatalf("expected mint without secret to fail")
	}
	if _, err := VerifySessionToken("", "secret", time.Now()); err == nil {
		t.Fatalf("expected empty token to fail")
	}
}
