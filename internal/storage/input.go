// AngelaMos | 2026
// input.go

package storage

import (
	"fmt"
	"time"

	"github.com/carterperez-dev/socialdash/internal/core"
)

type NewUser struct {
	Username     string
	Password     string
	Name         string
	BusinessName *string
	Email        string
}

type NewBrandSetting struct {
	UserID  int64
	Name    string
	Colors  Colors
	Fonts   Fonts
	LogoURL *string
}

type BrandSettingPatch struct {
	Name    *string
	Colors  *Colors
	Fonts   *Fonts
	LogoURL core.Nullable[string]
}

func (p BrandSettingPatch) IsEmpty() bool {
	return p.Name == nil && p.Colors == nil && p.Fonts == nil && !p.LogoURL.Set
}

type NewPlatformConnection struct {
	UserID      int64
	Platform    Platform
	Connected   bool
	AccountName *string
	Stats       Stats
}

type PlatformConnectionPatch struct {
	Platform    *Platform
	Connected   *bool
	AccountName core.Nullable[string]
	Stats       core.Nullable[map[string]any]
}

func (p PlatformConnectionPatch) IsEmpty() bool {
	return p.Platform == nil &&
		p.Connected == nil &&
		!p.AccountName.Set &&
		!p.Stats.Set
}

type NewPostTemplate struct {
	UserID      int64
	Name        string
	Description *string
	ImageURL    *string
	Content     string
	Platforms   PlatformList
	IsDefault   bool
}

type PostTemplatePatch struct {
	Name        *string
	Description core.Nullable[string]
	ImageURL    core.Nullable[string]
	Content     *string
	Platforms   *PlatformList
	IsDefault   *bool
}

func (p PostTemplatePatch) IsEmpty() bool {
	return p.Name == nil &&
		!p.Description.Set &&
		!p.ImageURL.Set &&
		p.Content == nil &&
		p.Platforms == nil &&
		p.IsDefault == nil
}

// NewPost always produces a scheduled post with zeroed engagement.
type NewPost struct {
	UserID        int64
	Content       string
	ImageURL      *string
	ScheduledDate time.Time
	Platforms     PlatformList
	TemplateID    *int64
}

type PostPatch struct {
	Content       *string
	ImageURL      core.Nullable[string]
	ScheduledDate *time.Time
	Platforms     *PlatformList
	TemplateID    core.Nullable[int64]
}

func (p PostPatch) IsEmpty() bool {
	return p.Content == nil &&
		!p.ImageURL.Set &&
		p.ScheduledDate == nil &&
		p.Platforms == nil &&
		!p.TemplateID.Set
}

func checkPlatform(p Platform) error {
	if !p.Valid() {
		return fmt.Errorf("platform %q: %w", p, core.ErrInvalidInput)
	}
	return nil
}

func checkPlatforms(list PlatformList) error {
	for _, p := range list {
		if err := checkPlatform(p); err != nil {
			return err
		}
	}
	return nil
}

func nonNilPlatforms(list PlatformList) PlatformList {
	if list == nil {
		return PlatformList{}
	}
	return list
}

func nonNilColors(c Colors) Colors {
	if c == nil {
		return Colors{}
	}
	return c
}
