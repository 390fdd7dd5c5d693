// AngelaMos | 2026
// dto.go

package brand

import (
	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type FontsRequest struct {
	Heading string `json:"heading" validate:"required,max=100"`
	Body    string `json:"body"    validate:"required,max=100"`
}

func (f FontsRequest) toFonts() storage.Fonts {
	return storage.Fonts{Heading: f.Heading, Body: f.Body}
}

type CreateBrandSettingsRequest struct {
	Name    string        `json:"name"    validate:"required,min=1,max=100"`
	Colors  []string      `json:"colors"  validate:"required,max=20,dive,required,max=32"`
	Fonts   *FontsRequest `json:"fonts"   validate:"required"`
	LogoURL *string       `json:"logoUrl" validate:"omitempty,max=2048"`
}

func (req CreateBrandSettingsRequest) toInput(userID int64) storage.NewBrandSetting {
	return storage.NewBrandSetting{
		UserID:  userID,
		Name:    req.Name,
		Colors:  storage.Colors(req.Colors),
		Fonts:   req.Fonts.toFonts(),
		LogoURL: req.LogoURL,
	}
}

type UpdateBrandSettingsRequest struct {
	Name    *string               `json:"name"    validate:"omitempty,min=1,max=100"`
	Colors  *[]string             `json:"colors"  validate:"omitempty,max=20,dive,required,max=32"`
	Fonts   *FontsRequest         `json:"fonts"   validate:"omitempty"`
	LogoURL core.Nullable[string] `json:"logoUrl" validate:"omitempty,max=2048"`
}

func (req UpdateBrandSettingsRequest) toPatch() storage.BrandSettingPatch {
	patch := storage.BrandSettingPatch{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	}
	if req.Colors != nil {
		colors := storage.Colors(*req.Colors)
		patch.Colors = &colors
	}
	if req.Fonts != nil {
		fonts := req.Fonts.toFonts()
		patch.Fonts = &fonts
	}
	return patch
}
