package service

import (
	"errors"
	"testing"
	"time"

	"pathwise_backend/internal/config"
	"pathwise_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret-unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, testAuthConfig())

	account, err := svc.Register("Ada", "ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if account.Password == "s3cret-pass" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("s3cret-pass")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if account.Profile.Data().Achievements == nil {
		t.Error("fresh profile should have empty achievements, not nil")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, testAuthConfig())

	if _, err := svc.Register("Ada", "ada@example.com", "pw-one"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register("Imposter", "ada@example.com", "pw-two")
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("got %v, want ErrEmailRegistered", err)
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	store := newMemStore()
	cfg := testAuthConfig()
	svc := NewAuthService(store, cfg)

	if _, err := svc.Register("Ada", "ada@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, account, err := svc.Login("ada@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if account.Email != "ada@example.com" {
		t.Errorf("account email = %q", account.Email)
	}

	claims, err := util.ParseJWT(token, cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Email != "ada@example.com" || claims.Name != "Ada" {
		t.Errorf("claims = %q/%q", claims.Email, claims.Name)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, testAuthConfig())

	if _, err := svc.Register("Ada", "ada@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login("ada@example.com", "wrong"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("ghost@example.com", "s3cret-pass"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}
