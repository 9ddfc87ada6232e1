package app

import (
	"strings"
	"testing"
)

func TestInviteTokenRoundTrip(t *testing.T) {
	svc := NewInviteTokenService("unit-secret", "jolly-test")

	token, err := svc.GenerateToken("user-1", "match-42")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("token is not a JWT: %s", token)
	}

	matchID, err := svc.ParseMatchID(token)
	if err != nil {
		t.Fatalf("ParseMatchID: %v", err)
	}
	if matchID != "match-42" {
		t.Fatalf("match id = %s, want match-42", matchID)
	}
}

func TestInviteTokenValidation(t *testing.T) {
	svc := NewInviteTokenService("unit-secret", "jolly-test")

	tests := []struct {
		name    string
		userID  string
		matchID string
	}{
		{name: "missing user", matchID: "match-1"},
		{name: "missing match", userID: "user-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.GenerateToken(tt.userID, tt.matchID); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}

	incomplete := NewInviteTokenService("", "jolly-test")
	if _, err := incomplete.GenerateToken("user-1", "match-1"); err == nil {
		t.Fatalf("expected an error with no secret")
	}
}

func TestInviteTokenWrongSecret(t *testing.T) {
	signer := NewInviteTokenService("secret-a", "jolly-test")
	verifier := NewInviteTokenService("secret-b", "jolly-test")

	token, err := signer.GenerateToken("user-1", "match-1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := verifier.ParseMatchID(token); err == nil {
		t.Fatalf("token verified with the wrong secret")
	}
}
