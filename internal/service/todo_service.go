package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"Tasker/internal/cache"
	dom "Tasker/internal/domain"
	"Tasker/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrTitleRequired = errors.New("title is required")
)

// TodoService implements owner-scoped todo operations. Every call takes
// the authenticated owner's ID; records of other users are
// indistinguishable from missing ones (ErrNotFound either way).
type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.TodoCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.TodoCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, ownerID int64, title, desc string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Todo{}, ErrTitleRequired
	}
	t, err := s.repo.Create(ctx, ownerID, dom.Todo{
		Title:       title,
		Description: strings.TrimSpace(desc),
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

func (s *TodoService) List(ctx context.Context, ownerID int64) ([]dom.Todo, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(ownerID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, ownerID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx, ownerID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, ownerID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx, ownerID)
}

func (s *TodoService) GetByID(ctx context.Context, ownerID, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update applies partial-field semantics: only non-nil fields overwrite
// the stored values, the rest carry over unchanged.
func (s *TodoService) Update(ctx context.Context, ownerID, id int64, title, desc *string) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	if title != nil {
		v := strings.TrimSpace(*title)
		if v == "" {
			return dom.Todo{}, ErrTitleRequired
		}
		patch.Title = v
	}
	if desc != nil {
		patch.Description = strings.TrimSpace(*desc)
	}
	t, err := s.repo.Update(ctx, ownerID, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx, ownerID)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, ownerID, id int64) error {
	deleted, err := s.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx, ownerID)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context, ownerID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, ownerID)
	}
}
