// AngelaMos | 2026
// dto.go

package post

import (
	"time"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

// CreatePostRequest carries only the insertable fields. Status, published
// date and engagement are owned by the store.
type CreatePostRequest struct {
	Content       string    `json:"content"       validate:"required,min=1,max=5000"`
	ImageURL      *string   `json:"imageUrl"      validate:"omitempty,max=2048"`
	ScheduledDate time.Time `json:"scheduledDate" validate:"required"`
	Platforms     []string  `json:"platforms"     validate:"required,dive,oneof=facebook instagram twitter linkedin youtube"`
	TemplateID    *int64    `json:"templateId"    validate:"omitempty,gt=0"`
}

func (req CreatePostRequest) toInput(userID int64) storage.NewPost {
	return storage.NewPost{
		UserID:        userID,
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		ScheduledDate: req.ScheduledDate,
		Platforms:     toPlatformList(req.Platforms),
		TemplateID:    req.TemplateID,
	}
}

type UpdatePostRequest struct {
	Content       *string               `json:"content"       validate:"omitempty,min=1,max=5000"`
	ImageURL      core.Nullable[string] `json:"imageUrl"      validate:"omitempty,max=2048"`
	ScheduledDate *time.Time            `json:"scheduledDate"`
	Platforms     *[]string             `json:"platforms"     validate:"omitempty,dive,oneof=facebook instagram twitter linkedin youtube"`
	TemplateID    core.Nullable[int64]  `json:"templateId"    validate:"omitempty,gt=0"`
}

func (req UpdatePostRequest) toPatch() storage.PostPatch {
	patch := storage.PostPatch{
		Content:       req.Content,
		ImageURL:      req.ImageURL,
		ScheduledDate: req.ScheduledDate,
		TemplateID:    req.TemplateID,
	}
	if req.Platforms != nil {
		list := toPlatformList(*req.Platforms)
		patch.Platforms = &list
	}
	return patch
}

func toPlatformList(names []string) storage.PlatformList {
	list := make(storage.PlatformList, 0, len(names))
	for _, name := range names {
		list = append(list, storage.Platform(name))
	}
	return list
}
