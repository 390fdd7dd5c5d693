// AngelaMos | 2026
// dto.go

package connection

import (
	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type CreateConnectionRequest struct {
	Platform    string         `json:"platform"    validate:"required,oneof=facebook instagram twitter linkedin youtube"`
	Connected   bool           `json:"connected"`
	AccountName *string        `json:"accountName" validate:"omitempty,max=255"`
	Stats       map[string]any `json:"stats"`
}

func (req CreateConnectionRequest) toInput(userID int64) storage.NewPlatformConnection {
	return storage.NewPlatformConnection{
		UserID:      userID,
		Platform:    storage.Platform(req.Platform),
		Connected:   req.Connected,
		AccountName: req.AccountName,
		Stats:       storage.Stats(req.Stats),
	}
}

type UpdateConnectionRequest struct {
	Platform    *string                       `json:"platform"    validate:"omitempty,oneof=facebook instagram twitter linkedin youtube"`
	Connected   *bool                         `json:"connected"`
	AccountName core.Nullable[string]         `json:"accountName" validate:"omitempty,max=255"`
	Stats       core.Nullable[map[string]any] `json:"stats"`
}

func (req UpdateConnectionRequest) toPatch() storage.PlatformConnectionPatch {
	patch := storage.PlatformConnectionPatch{
		Connected:   req.Connected,
		AccountName: req.AccountName,
		Stats:       req.Stats,
	}
	if req.Platform != nil {
		p := storage.Platform(*req.Platform)
		patch.Platform = &p
	}
	return patch
}
