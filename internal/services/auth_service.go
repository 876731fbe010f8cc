package services

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AdminRole is the only role issued; there is exactly one admin identity.
const AdminRole = "admin"

// TokenSigner turns an authenticated identity into a bearer token. Kept as
// a func so the service stays decoupled from the codec.
type TokenSigner func(email, role string) (string, error)

// AuthService validates a submitted credential pair against the single
// configured admin credential and issues a token on success.
type AuthService struct {
	adminEmail    string
	adminPassword string
	signToken     TokenSigner
}

type AuthResult struct {
	Token string
	Email string
	Role  string
}

func NewAuthService(adminEmail, adminPassword string, signer TokenSigner) *AuthService {
	return &AuthService{adminEmail: adminEmail, adminPassword: adminPassword, signToken: signer}
}

// Login checks the pair and returns a signed token with the admin claims.
// A wrong email and a wrong password produce the same error so the
// response never reveals which field failed.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, NewInvalidError("email and password are required")
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.adminEmail)) == 1
	if !emailOK || !s.passwordMatches(password) {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	tok, err := s.signToken(email, AdminRole)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: tok, Email: email, Role: AdminRole}, nil
}

func (s *AuthService) passwordMatches(password string) bool {
	if isBcryptHash(s.adminPassword) {
		return bcrypt.CompareHashAndPassword([]byte(s.adminPassword), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
}

func isBcryptHash(v string) bool {
	return strings.HasPrefix(v, "$2a$") || strings.HasPrefix(v, "$2b$") || strings.HasPrefix(v, "$2y$")
}
