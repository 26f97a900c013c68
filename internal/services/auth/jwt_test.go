package auth

import (
	"errors"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", "roomshare", time.Minute)
	seekerID := uuid.New()

	raw, expiresAt, err := m.GenerateAccessToken(seekerID, "")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := m.ParseAccessToken(raw)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SeekerID != seekerID {
		t.Fatalf("unexpected seeker id: got %s want %s", claims.SeekerID, seekerID)
	}
	if claims.Role != RoleSeeker {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
	if !claims.ExpiresAt.Equal(expiresAt.Truncate(time.Second)) {
		t.Fatalf("unexpected expiry: got %s want %s", claims.ExpiresAt, expiresAt)
	}
}

func TestParseAccessTokenRejectsInvalid(t *testing.T) {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	m := NewJWTManager("secret", "roomshare", time.Minute)
	m.now = func() time.Time { return now }

	valid, _, err := m.GenerateAccessToken(uuid.New(), RoleAdmin)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	otherSecret := NewJWTManager("other", "roomshare", time.Minute)
	otherSecret.now = m.now
	forged, _, err := otherSecret.GenerateAccessToken(uuid.New(), RoleSeeker)
	if err != nil {
		t.Fatalf("generate forged token: %v", err)
	}

	otherIssuer := NewJWTManager("secret", "elsewhere", time.Minute)
	otherIssuer.now = m.now
	foreign, _, err := otherIssuer.GenerateAccessToken(uuid.New(), RoleSeeker)
	if err != nil {
		t.Fatalf("generate foreign token: %v", err)
	}

	numeric := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "roomshare",
		Subject:   "1001",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
	})
	numericRaw, err := numeric.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign numeric token: %v", err)
	}

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-token",
		"wrong secret": forged,
		"wrong issuer": foreign,
		"numeric sub":  numericRaw,
	}
	for name, raw := range cases {
		if _, err := m.ParseAccessToken(raw); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}

	m.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, err := m.ParseAccessToken(valid); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expired token: expected ErrUnauthorized, got %v", err)
	}
}

func TestGenerateAccessTokenRequiresSeeker(t *testing.T) {
	m := NewJWTManager("secret", "", time.Minute)
	if _, _, err := m.GenerateAccessToken(uuid.Nil, RoleSeeker); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
