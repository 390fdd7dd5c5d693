// AngelaMos | 2026
// storage.go

package storage

import (
	"context"
	"time"
)

type UserStore interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, in NewUser) (*User, error)
}

type BrandStore interface {
	GetBrandSettings(ctx context.Context, userID int64) (*BrandSetting, error)
	CreateBrandSettings(
		ctx context.Context,
		in NewBrandSetting,
	) (*BrandSetting, error)
	UpdateBrandSettings(
		ctx context.Context,
		id int64,
		patch BrandSettingPatch,
	) (*BrandSetting, error)
}

type ConnectionStore interface {
	ListPlatformConnections(
		ctx context.Context,
		userID int64,
	) ([]PlatformConnection, error)
	GetPlatformConnection(
		ctx context.Context,
		id int64,
	) (*PlatformConnection, error)
	CreatePlatformConnection(
		ctx context.Context,
		in NewPlatformConnection,
	) (*PlatformConnection, error)
	UpdatePlatformConnection(
		ctx context.Context,
		id int64,
		patch PlatformConnectionPatch,
	) (*PlatformConnection, error)
}

type TemplateStore interface {
	ListPostTemplates(ctx context.Context, userID int64) ([]PostTemplate, error)
	GetPostTemplate(ctx context.Context, id int64) (*PostTemplate, error)
	CreatePostTemplate(
		ctx context.Context,
		in NewPostTemplate,
	) (*PostTemplate, error)
	UpdatePostTemplate(
		ctx context.Context,
		id int64,
		patch PostTemplatePatch,
	) (*PostTemplate, error)
	DeletePostTemplate(ctx context.Context, id int64) (bool, error)
}

type PostStore interface {
	ListPosts(ctx context.Context, userID int64) ([]Post, error)
	// ListPostsByMonth takes a zero-based month (0 is January).
	ListPostsByMonth(
		ctx context.Context,
		userID int64,
		year int,
		month int,
	) ([]Post, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	CreatePost(ctx context.Context, in NewPost) (*Post, error)
	UpdatePost(ctx context.Context, id int64, patch PostPatch) (*Post, error)
	DeletePost(ctx context.Context, id int64) (bool, error)
}

// Storage is the full persistence contract. Get and Update report a missing
// record with core.ErrNotFound; Delete reports it with false.
type Storage interface {
	UserStore
	BrandStore
	ConnectionStore
	TemplateStore
	PostStore

	LoadFixtures(ctx context.Context, fx *Fixtures) error
	Ping(ctx context.Context) error
	Close() error
}

// MonthRange returns the first and last instant (millisecond precision) of
// the zero-based month in loc. Out of range months roll into adjacent years.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
