package services

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func stubSigner(email, role string) (string, error) {
	return "token:" + email + ":" + role, nil
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService("admin@empresa.com", "admin123", stubSigner)
	res, err := svc.Login("admin@empresa.com", "admin123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.Token != "token:admin@empresa.com:admin" {
		t.Fatalf("unexpected token %q", res.Token)
	}
	if res.Role != AdminRole {
		t.Fatalf("unexpected role %q", res.Role)
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := NewAuthService("admin@empresa.com", "admin123", stubSigner)

	for _, tc := range [][2]string{
		{"admin@empresa.com", "wrong"},
		{"other@empresa.com", "admin123"},
	} {
		_, err := svc.Login(tc[0], tc[1])
		se, ok := AsServiceError(err)
		if !ok || se.Code != ErrorUnauthorized {
			t.Fatalf("login %q/%q: expected unauthorized, got %v", tc[0], tc[1], err)
		}
		// Same message for wrong email and wrong password.
		if se.Message != "invalid credentials" {
			t.Fatalf("unexpected message %q", se.Message)
		}
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	svc := NewAuthService("admin@empresa.com", "admin123", stubSigner)
	for _, tc := range [][2]string{{"", ""}, {"admin@empresa.com", ""}, {"", "admin123"}} {
		_, err := svc.Login(tc[0], tc[1])
		if se, ok := AsServiceError(err); !ok || se.Code != ErrorInvalid {
			t.Fatalf("login %q/%q: expected invalid error, got %v", tc[0], tc[1], err)
		}
	}
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	svc := NewAuthService("admin@empresa.com", string(hash), stubSigner)

	if _, err := svc.Login("admin@empresa.com", "admin123"); err != nil {
		t.Fatalf("Login with hashed credential returned error: %v", err)
	}
	if _, err := svc.Login("admin@empresa.com", "wrong"); err == nil {
		t.Fatalf("expected error for wrong password against hash")
	}
}
