// AngelaMos | 2026
// entity.go

package storage

import (
	"time"
)

type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformFacebook,
		PlatformInstagram,
		PlatformTwitter,
		PlatformLinkedIn,
		PlatformYouTube:
		return true
	}
	return false
}

type PostStatus string

const (
	StatusScheduled PostStatus = "scheduled"
	StatusPublished PostStatus = "published"
	StatusFailed    PostStatus = "failed"
)

type User struct {
	ID           int64   `db:"id"            json:"id"`
	Username     string  `db:"username"      json:"username"`
	Password     string  `db:"password"      json:"-"`
	Name         string  `db:"name"          json:"name"`
	BusinessName *string `db:"business_name" json:"businessName"`
	Email        string  `db:"email"         json:"email"`
}

type BrandSetting struct {
	ID      int64   `db:"id"       json:"id"`
	UserID  int64   `db:"user_id"  json:"userId"`
	Name    string  `db:"name"     json:"name"`
	Colors  Colors  `db:"colors"   json:"colors"`
	Fonts   Fonts   `db:"fonts"    json:"fonts"`
	LogoURL *string `db:"logo_url" json:"logoUrl"`
}

type PlatformConnection struct {
	ID          int64    `db:"id"           json:"id"`
	UserID      int64    `db:"user_id"      json:"userId"`
	Platform    Platform `db:"platform"     json:"platform"`
	Connected   bool     `db:"connected"    json:"connected"`
	AccountName *string  `db:"account_name" json:"accountName"`
	Stats       Stats    `db:"stats"        json:"stats"`
}

type PostTemplate struct {
	ID          int64        `db:"id"          json:"id"`
	UserID      int64        `db:"user_id"     json:"userId"`
	Name        string       `db:"name"        json:"name"`
	Description *string      `db:"description" json:"description"`
	ImageURL    *string      `db:"image_url"   json:"imageUrl"`
	Content     string       `db:"content"     json:"content"`
	Platforms   PlatformList `db:"platforms"   json:"platforms"`
	IsDefault   bool         `db:"is_default"  json:"isDefault"`
}

type Post struct {
	ID              int64        `db:"id"               json:"id"`
	UserID          int64        `db:"user_id"          json:"userId"`
	Content         string       `db:"content"          json:"content"`
	ImageURL        *string      `db:"image_url"        json:"imageUrl"`
	ScheduledDate   time.Time    `db:"scheduled_date"   json:"scheduledDate"`
	PublishedDate   *time.Time   `db:"published_date"   json:"publishedDate"`
	Status          PostStatus   `db:"status"           json:"status"`
	Platforms       PlatformList `db:"platforms"        json:"platforms"`
	TemplateID      *int64       `db:"template_id"      json:"templateId"`
	EngagementStats *Engagement  `db:"engagement_stats" json:"engagementStats"`
}

func (p *Post) normalizeTimes() {
	p.ScheduledDate = p.ScheduledDate.UTC()
	if p.PublishedDate != nil {
		t := p.PublishedDate.UTC()
		p.PublishedDate = &t
	}
}

func (u User) clone() *User {
	u.BusinessName = clonePtr(u.BusinessName)
	return &u
}

func (b BrandSetting) clone() *BrandSetting {
	b.Colors = cloneSlice(b.Colors)
	b.LogoURL = clonePtr(b.LogoURL)
	return &b
}

func (c PlatformConnection) clone() *PlatformConnection {
	c.AccountName = clonePtr(c.AccountName)
	c.Stats = c.Stats.clone()
	return &c
}

func (t PostTemplate) clone() *PostTemplate {
	t.Description = clonePtr(t.Description)
	t.ImageURL = clonePtr(t.ImageURL)
	t.Platforms = cloneSlice(t.Platforms)
	return &t
}

func (p Post) clone() *Post {
	p.ImageURL = clonePtr(p.ImageURL)
	p.PublishedDate = clonePtr(p.PublishedDate)
	p.Platforms = cloneSlice(p.Platforms)
	p.TemplateID = clonePtr(p.TemplateID)
	p.EngagementStats = clonePtr(p.EngagementStats)
	return &p
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneSlice[S ~[]E, E any](s S) S {
	if s == nil {
		return nil
	}
	out := make(S, len(s))
	copy(out, s)
	return out
}
