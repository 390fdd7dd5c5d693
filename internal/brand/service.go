// AngelaMos | 2026
// service.go

package brand

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type Service struct {
	store storage.BrandStore
}

func NewService(store storage.BrandStore) *Service {
	return &Service{store: store}
}

func (s *Service) Get(
	ctx context.Context,
	userID int64,
) (*storage.BrandSetting, error) {
	return s.store.GetBrandSettings(ctx, userID)
}

func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateBrandSettingsRequest,
) (*storage.BrandSetting, error) {
	return s.store.CreateBrandSettings(ctx, req.toInput(userID))
}

// Update only touches the acting user's own settings record.
func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	req UpdateBrandSettingsRequest,
) (*storage.BrandSetting, error) {
	current, err := s.store.GetBrandSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current.ID != id {
		return nil, fmt.Errorf("update brand settings: %w", core.ErrNotFound)
	}

	return s.store.UpdateBrandSettings(ctx, id, req.toPatch())
}
