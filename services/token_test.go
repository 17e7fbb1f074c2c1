package services

import (
	"strings"
	"testing"
	"time"

	"unistay/errors"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("secret", 0)
	if tokens.TTL() != DefaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", tokens.TTL())
	}
	signed, err := tokens.GenerateToken(UserInfo{UserId: 42, Role: 1})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	info, err := tokens.ParseToken(signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if info.UserId != 42 || info.Role != 1 {
		t.Fatalf("unexpected claims %+v", info)
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	signed, _ := NewTokenService("other", time.Hour).GenerateToken(UserInfo{UserId: 1})
	_, err := NewTokenService("secret", time.Hour).ParseToken(signed)
	if appErr := errors.GetAppError(err); appErr == nil || appErr.Code != errors.ErrCodeInvalidToken {
		t.Fatalf("expected INVALID_TOKEN, got %v", err)
	}
}

func TestParseTokenRejectsExpiredAndGarbage(t *testing.T) {
	tokens := NewTokenService("secret", -time.Hour)
	// negative ttl falls back to the default
	if tokens.TTL() != DefaultTokenTTL {
		t.Fatalf("expected default ttl")
	}

	expired := &TokenService{secret: []byte("secret"), ttl: -time.Minute}
	signed, _ := expired.GenerateToken(UserInfo{UserId: 1})
	if _, err := expired.ParseToken(signed); err == nil {
		t.Fatalf("expected expired token to fail")
	}
	if _, err := tokens.ParseToken(strings.Repeat("x", 20)); err == nil {
		t.Fatalf("expected garbage token to fail")
	}
}
