package service

import (
	"context"
	"time"

	dom "bookmarks/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repo fakes. They mimic the pgx behaviors the services depend on:
// pgx.ErrNoRows for misses and PgError 23505 for unique violations.

type fakeUserRepo struct {
	nextID int64
	users  map[int64]dom.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]dom.User)}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, email, passwordHash string) (dom.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.nextID++
	now := time.Now()
	u := dom.User{ID: r.nextID, Email: email, PasswordHash: passwordHash, CreatedAt: now, UpdatedAt: now}
	r.users[u.ID] = u
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id int64, patch dom.User) (dom.User, error) {
	existing, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	for _, u := range r.users {
		if u.ID != id && u.Email == patch.Email {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	existing.Email = patch.Email
	existing.FirstName = patch.FirstName
	existing.LastName = patch.LastName
	existing.UpdatedAt = time.Now()
	r.users[id] = existing
	return existing, nil
}

type fakeBookmarkRepo struct {
	nextID    int64
	bookmarks map[int64]dom.Bookmark
}

func newFakeBookmarkRepo() *fakeBookmarkRepo {
	return &fakeBookmarkRepo{bookmarks: make(map[int64]dom.Bookmark)}
}

func (r *fakeBookmarkRepo) Create(_ context.Context, b dom.Bookmark) (dom.Bookmark, error) {
	r.nextID++
	now := time.Now()
	b.ID = r.nextID
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookmarks[b.ID] = b
	return b, nil
}

func (r *fakeBookmarkRepo) GetByID(_ context.Context, id int64) (dom.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r *fakeBookmarkRepo) GetForUser(_ context.Context, userID, id int64) (dom.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok || b.UserID != userID {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	return b, nil
}

func (r *fakeBookmarkRepo) List(_ context.Context, userID int64) ([]dom.Bookmark, error) {
	var list []dom.Bookmark
	for _, b := range r.bookmarks {
		if b.UserID == userID {
			list = append(list, b)
		}
	}
	return list, nil
}

func (r *fakeBookmarkRepo) Update(_ context.Context, id int64, patch dom.Bookmark) (dom.Bookmark, error) {
	b, ok := r.bookmarks[id]
	if !ok {
		return dom.Bookmark{}, pgx.ErrNoRows
	}
	b.Title = patch.Title
	b.Link = patch.Link
	b.Description = patch.Description
	b.UpdatedAt = time.Now()
	r.bookmarks[id] = b
	return b, nil
}

func (r *fakeBookmarkRepo) Delete(_ context.Context, id int64) error {
	delete(r.bookmarks, id)
	return nil
}
