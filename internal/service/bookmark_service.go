package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"bookmarks/internal/cache"
	dom "bookmarks/internal/domain"
	"bookmarks/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrForbidden covers both "no such bookmark" and "not yours" so the
	// response never reveals whether a foreign id exists.
	ErrForbidden = errors.New("access to resource denied")
)

// BookmarkService handles bookmark CRUD scoped to the requesting account.
type BookmarkService struct {
	repo  repo.BookmarkRepo
	cache *cache.BookmarkCache
	sf    singleflight.Group
}

// NewBookmarkService creates a BookmarkService. If c is nil, caching is disabled.
func NewBookmarkService(r repo.BookmarkRepo, c *cache.BookmarkCache) *BookmarkService {
	return &BookmarkService{repo: r, cache: c}
}

func (s *BookmarkService) Create(ctx context.Context, userID int64, title, link, desc string) (dom.Bookmark, error) {
	b, err := s.repo.Create(ctx, dom.Bookmark{
		UserID:      userID,
		Title:       strings.TrimSpace(title),
		Link:        strings.TrimSpace(link),
		Description: strings.TrimSpace(desc),
	})
	if err != nil {
		return dom.Bookmark{}, err
	}
	s.invalidateCache(ctx, userID)
	return b, nil
}

// List returns the requester's bookmarks, newest first. The query is
// owner-scoped, so foreign bookmarks never appear here.
func (s *BookmarkService) List(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Bookmark), nil
	}
	return s.repo.List(ctx, userID)
}

// GetByID returns the bookmark only if the requester owns it. A foreign or
// absent id looks the same: not found.
func (s *BookmarkService) GetByID(ctx context.Context, userID, id int64) (dom.Bookmark, error) {
	b, err := s.repo.GetForUser(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Bookmark{}, ErrNotFound
		}
		return dom.Bookmark{}, err
	}
	return b, nil
}

func (s *BookmarkService) Update(ctx context.Context, userID, id int64, title, link, desc *string) (dom.Bookmark, error) {
	existing, err := s.ownedForMutation(ctx, userID, id)
	if err != nil {
		return dom.Bookmark{}, err
	}
	patch := existing
	if title != nil {
		patch.Title = strings.TrimSpace(*title)
	}
	if link != nil {
		patch.Link = strings.TrimSpace(*link)
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	b, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Bookmark{}, ErrForbidden
		}
		return dom.Bookmark{}, err
	}
	s.invalidateCache(ctx, userID)
	return b, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id int64) error {
	if _, err := s.ownedForMutation(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// ownedForMutation fetches the bookmark unscoped and enforces the ownership
// check that gates every mutation. Absent and foreign ids fail identically.
func (s *BookmarkService) ownedForMutation(ctx context.Context, userID, id int64) (dom.Bookmark, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Bookmark{}, ErrForbidden
		}
		return dom.Bookmark{}, err
	}
	if b.UserID != userID {
		return dom.Bookmark{}, ErrForbidden
	}
	return b, nil
}

func (s *BookmarkService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
