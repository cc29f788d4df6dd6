package service

import (
	"context"
	"errors"
	"strings"

	dom "bookmarks/internal/domain"
	"bookmarks/internal/repo"
	"bookmarks/internal/utils"

	"github.com/jackc/pgx/v5"
)

// UserService handles the authenticated account's own profile.
type UserService struct {
	users repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// Get returns the account by id.
func (s *UserService) Get(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// Update applies the given profile fields to the account. Only the owning
// account reaches this path (id comes from the verified identity).
func (s *UserService) Update(ctx context.Context, id int64, email, firstName, lastName *string) (dom.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrNotFound
		}
		return dom.User{}, err
	}
	patch := existing
	if email != nil {
		patch.Email = normalizeEmail(*email)
	}
	if firstName != nil {
		patch.FirstName = strings.TrimSpace(*firstName)
	}
	if lastName != nil {
		patch.LastName = strings.TrimSpace(*lastName)
	}
	u, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, ErrEmailTaken
		}
		return dom.User{}, err
	}
	return u, nil
}
