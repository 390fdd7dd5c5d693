// AngelaMos | 2026
// service.go

package user

import (
	"context"

	"github.com/carterperez-dev/socialdash/internal/storage"
)

type Service struct {
	store storage.UserStore
}

func NewService(store storage.UserStore) *Service {
	return &Service{store: store}
}

func (s *Service) GetCurrent(
	ctx context.Context,
	userID int64,
) (*storage.User, error) {
	return s.store.GetUser(ctx, userID)
}
