package auth_test

import (
	"testing"

	"github.com/terry1921/stickerstore/pkg/auth"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("uid-42", "Terry", "admin", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UID != "uid-42" {
		t.Errorf("expected uid-42, got %q", claims.UID)
	}
	if claims.Role != "admin" {
		t.Errorf("expected admin role, got %q", claims.Role)
	}
	if !claims.EmailVerified {
		t.Error("expected email_verified to survive the round trip")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.jwt"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
	if _, err := auth.ValidateToken(""); err == nil {
		t.Error("expected empty token to be rejected")
	}
}

func TestVerificationTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateVerificationToken("uid-42")
	if err != nil {
		t.Fatalf("GenerateVerificationToken: %v", err)
	}

	uid, err := auth.ValidateVerificationToken(token)
	if err != nil {
		t.Fatalf("ValidateVerificationToken: %v", err)
	}
	if uid != "uid-42" {
		t.Errorf("expected uid-42, got %q", uid)
	}
}

func TestVerificationTokenIsPurposeScoped(t *testing.T) {
	// A session token must not pass as a verification token.
	session, err := auth.GenerateToken("uid-42", "Terry", "user", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.ValidateVerificationToken(session); err == nil {
		t.Error("expected session token to fail verification-token validation")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter2-but-longer")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter2-but-longer" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !auth.CheckPassword(hash, "hunter2-but-longer") {
		t.Error("expected correct password to verify")
	}
	if auth.CheckPassword(hash, "wrong-password") {
		t.Error("expected wrong password to fail")
	}
}
