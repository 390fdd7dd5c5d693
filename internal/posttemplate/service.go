// AngelaMos | 2026
// service.go

package posttemplate

import (
	"context"
	"errors"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type Service struct {
	store storage.TemplateStore
}

func NewService(store storage.TemplateStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(
	ctx context.Context,
	userID int64,
) ([]storage.PostTemplate, error) {
	return s.store.ListPostTemplates(ctx, userID)
}

func (s *Service) Get(
	ctx context.Context,
	userID, id int64,
) (*storage.PostTemplate, error) {
	tmpl, err := s.store.GetPostTemplate(ctx, id)
	if err != nil {
		return nil, err
	}
	if tmpl.UserID != userID {
		return nil, fmt.Errorf("get post template: %w", core.ErrNotFound)
	}
	return tmpl, nil
}

func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateTemplateRequest,
) (*storage.PostTemplate, error) {
	return s.store.CreatePostTemplate(ctx, req.toInput(userID))
}

func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	req UpdateTemplateRequest,
) (*storage.PostTemplate, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.store.UpdatePostTemplate(ctx, id, req.toPatch())
}

// Delete reports false when the template is missing or owned by someone
// else.
func (s *Service) Delete(ctx context.Context, userID, id int64) (bool, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return s.store.DeletePostTemplate(ctx, id)
}
