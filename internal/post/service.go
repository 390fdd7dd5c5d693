// AngelaMos | 2026
// service.go

package post

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type Service struct {
	store storage.PostStore
	loc   *time.Location
	now   func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now as the source of the current month.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(
	store storage.PostStore,
	loc *time.Location,
	opts ...Option,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{store: store, loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CurrentMonth returns the year and zero-based month of now in the
// calendar location.
func (s *Service) CurrentMonth() (int, int) {
	now := s.now().In(s.loc)
	return now.Year(), int(now.Month()) - 1
}

func (s *Service) List(ctx context.Context, userID int64) ([]storage.Post, error) {
	return s.store.ListPosts(ctx, userID)
}

func (s *Service) Calendar(
	ctx context.Context,
	userID int64,
	year, month int,
) ([]storage.Post, error) {
	return s.store.ListPostsByMonth(ctx, userID, year, month)
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*storage.Post, error) {
	p, err := s.store.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, fmt.Errorf("get post: %w", core.ErrNotFound)
	}
	return p, nil
}

func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreatePostRequest,
) (*storage.Post, error) {
	return s.store.CreatePost(ctx, req.toInput(userID))
}

func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	req UpdatePostRequest,
) (*storage.Post, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.store.UpdatePost(ctx, id, req.toPatch())
}

func (s *Service) Delete(ctx context.Context, userID, id int64) (bool, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.store.DeletePost(ctx, id)
}
