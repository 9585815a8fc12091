package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("secret", "", time.Hour)

	token, err := m.Generate("64a1f0c2e1d3b4a5c6d7e8f9", "root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "64a1f0c2e1d3b4a5c6d7e8f9" || claims.Username != "root" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestParseRejectsForeignTokens(t *testing.T) {
	m := NewManager("secret", "bloglist", time.Hour)
	token, err := m.Generate("u1", "root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := NewManager("other-secret", "bloglist", time.Hour).Parse(token); err == nil {
		t.Fatalf("expected signature mismatch")
	}
	if _, err := NewManager("secret", "someone-else", time.Hour).Parse(token); err == nil {
		t.Fatalf("expected issuer mismatch")
	}
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Fatalf("expected malformed token error")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	m := &Manager{secret: []byte("secret"), issuer: "bloglist", ttl: -time.Minute}
	token, err := m.Generate("u1", "root")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Fatalf("expected expired token error")
	}
}
