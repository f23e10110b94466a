package utils

import (
	"errors"
	"testing"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 42, "alice", "regular_user", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseAccessToken(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" || claims.Role != "regular_user" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestParseAccessToken_Rejections(t *testing.T) {
	tok, err := NewAccessToken(testSecret, 1, "bob", "admin", 15)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseAccessToken("wrong-secret", tok.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
	if _, err := ParseAccessToken(testSecret, tok.Token+"x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token: err = %v, want ErrInvalidToken", err)
	}
	if _, err := ParseAccessToken(testSecret, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage: err = %v, want ErrInvalidToken", err)
	}

	expired, err := NewAccessToken(testSecret, 1, "bob", "admin", -1)
	if err != nil {
		t.Fatalf("sign expired: %v", err)
	}
	if _, err := ParseAccessToken(testSecret, expired.Token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expired token: err = %v, want ErrInvalidToken", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("password stored in the clear")
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Fatalf("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}
