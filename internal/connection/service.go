// AngelaMos | 2026
// service.go

package connection

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type Service struct {
	store storage.ConnectionStore
}

func NewService(store storage.ConnectionStore) *Service {
	return &Service{store: store}
}

func (s *Service) List(
	ctx context.Context,
	userID int64,
) ([]storage.PlatformConnection, error) {
	return s.store.ListPlatformConnections(ctx, userID)
}

// Get hides connections owned by other users behind core.ErrNotFound.
func (s *Service) Get(
	ctx context.Context,
	userID, id int64,
) (*storage.PlatformConnection, error) {
	conn, err := s.store.GetPlatformConnection(ctx, id)
	if err != nil {
		return nil, err
	}
	if conn.UserID != userID {
		return nil, fmt.Errorf("get platform connection: %w", core.ErrNotFound)
	}
	return conn, nil
}

func (s *Service) Create(
	ctx context.Context,
	userID int64,
	req CreateConnectionRequest,
) (*storage.PlatformConnection, error) {
	return s.store.CreatePlatformConnection(ctx, req.toInput(userID))
}

func (s *Service) Update(
	ctx context.Context,
	userID, id int64,
	req UpdateConnectionRequest,
) (*storage.PlatformConnection, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return nil, err
	}
	return s.store.UpdatePlatformConnection(ctx, id, req.toPatch())
}
