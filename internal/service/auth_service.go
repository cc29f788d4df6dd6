package service

import (
	"context"
	"errors"
	"strings"

	"bookmarks/internal/repo"
	"bookmarks/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// The same error covers "no such account" and "wrong password" so the
// response never reveals which check failed.
var ErrInvalidCredentials = errors.New("credentials incorrect")
var ErrEmailTaken = errors.New("email already taken")

// TokenIssuer signs an access token for an account. Satisfied by
// auth.TokenManager.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// AuthService handles signup and signin.
type AuthService struct {
	users  repo.UserRepo
	tokens TokenIssuer
}

// NewAuthService returns a new AuthService.
func NewAuthService(users repo.UserRepo, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup creates an account with a hashed password and returns a signed token.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	u, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return "", ErrEmailTaken
		}
		return "", err
	}
	return s.tokens.Issue(u.ID, u.Email)
}

// Signin verifies credentials and returns a signed token.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID, u.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
