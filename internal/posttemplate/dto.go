// AngelaMos | 2026
// dto.go

package posttemplate

import (
	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type CreateTemplateRequest struct {
	Name        string   `json:"name"        validate:"required,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    *string  `json:"imageUrl"    validate:"omitempty,max=2048"`
	Content     string   `json:"content"     validate:"required,min=1,max=5000"`
	Platforms   []string `json:"platforms"   validate:"required,dive,oneof=facebook instagram twitter linkedin youtube"`
	IsDefault   bool     `json:"isDefault"`
}

func (req CreateTemplateRequest) toInput(userID int64) storage.NewPostTemplate {
	return storage.NewPostTemplate{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Content:     req.Content,
		Platforms:   toPlatformList(req.Platforms),
		IsDefault:   req.IsDefault,
	}
}

type UpdateTemplateRequest struct {
	Name        *string               `json:"name"        validate:"omitempty,min=1,max=100"`
	Description core.Nullable[string] `json:"description" validate:"omitempty,max=500"`
	ImageURL    core.Nullable[string] `json:"imageUrl"    validate:"omitempty,max=2048"`
	Content     *string               `json:"content"     validate:"omitempty,min=1,max=5000"`
	Platforms   *[]string             `json:"platforms"   validate:"omitempty,dive,oneof=facebook instagram twitter linkedin youtube"`
	IsDefault   *bool                 `json:"isDefault"`
}

func (req UpdateTemplateRequest) toPatch() storage.PostTemplatePatch {
	patch := storage.PostTemplatePatch{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Content:     req.Content,
		IsDefault:   req.IsDefault,
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
