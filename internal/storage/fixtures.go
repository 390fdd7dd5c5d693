// AngelaMos | 2026
// fixtures.go

package storage

import (
	"fmt"
	"time"

	"github.com/carterperez-dev/socialdash/internal/core"
)

const (
	DemoUsername = "demo"
	DemoPassword = "password"
)

// Fixtures is a dataset owned by a single user. Loaders create the user
// first and rewrite every UserID to the new user's id. Posts keep their
// status, published date and engagement verbatim.
type Fixtures struct {
	User          NewUser
	BrandSettings []NewBrandSetting
	Connections   []NewPlatformConnection
	Templates     []NewPostTemplate
	Posts         []Post
}

const unsplash = "https://images.unsplash.com/"

func templateImage(photo string) *string {
	return ptr(unsplash + photo +
		"?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600")
}

func thumbnail(photo string) *string {
	return ptr(unsplash + photo +
		"?ixlib=rb-4.0.3&auto=format&fit=crop&w=200&h=200")
}

// DemoFixtures builds the demo dataset with dates relative to now in loc.
func DemoFixtures(now time.Time, loc *time.Location) (*Fixtures, error) {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	hash, err := core.HashPassword(DemoPassword)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	year, month, day := now.Date()
	at := func(m time.Month, d, hour, minute int) time.Time {
		return time.Date(year, m, d, hour, minute, 0, 0, loc).UTC()
	}

	fb, ig, tw := PlatformFacebook, PlatformInstagram, PlatformTwitter
	li, yt := PlatformLinkedIn, PlatformYouTube

	fx := &Fixtures{
		User: NewUser{
			Username:     DemoUsername,
			Password:     hash,
			Name:         "Jane Doe",
			BusinessName: ptr("Small Business"),
			Email:        "jane@example.com",
		},
		BrandSettings: []NewBrandSetting{{
			Name:   "My Brand",
			Colors: Colors{"#3b82f6", "#10b981", "#f59e0b", "#111827"},
			Fonts:  Fonts{Heading: "Inter", Body: "Roboto"},
		}},
		Connections: []NewPlatformConnection{
			{Platform: fb, Connected: true, AccountName: ptr("Small Business")},
			{Platform: ig, Connected: true, AccountName: ptr("@smallbusiness")},
			{Platform: tw},
			{Platform: li},
			{
				Platform:    yt,
				Connected:   true,
				AccountName: ptr("@smallbusinesschannel"),
				Stats: Stats{
					"subscribers":  float64(5200),
					"averageViews": float64(1200),
					"cpm":          4.50,
					"totalVideos":  float64(45),
					"watchHours":   float64(4500),
				},
			},
		},
		Templates: []NewPostTemplate{
			{
				Name:        "Product Promotion",
				Description: ptr("Perfect for showcasing products with clean layout"),
				ImageURL:    templateImage("photo-1563986768609-322da13575f3"),
				Content: "Check out our amazing [PRODUCT]! Now available for " +
					"just $[PRICE]. Limited time offer.",
				Platforms: PlatformList{fb, ig, tw},
			},
			{
				Name:        "Testimonial Post",
				Description: ptr("Showcase customer reviews with quote styling"),
				ImageURL:    templateImage("photo-1517245386807-bb43f82c33c4"),
				Content:     `"[QUOTE]" - [CUSTOMER_NAME], [LOCATION]`,
				Platforms:   PlatformList{fb, ig},
			},
			{
				Name:        "Special Offer",
				Description: ptr("Eye-catching promo template with CTA"),
				ImageURL:    templateImage("photo-1563013544-824ae1b704d3"),
				Content: "SPECIAL OFFER: [DEAL_DESCRIPTION]. Use code [CODE] " +
					"at checkout. Offer valid until [DATE].",
				Platforms: PlatformList{fb, ig, tw},
			},
			{
				Name:        "Team Highlight",
				Description: ptr("Showcase your team members professionally"),
				ImageURL:    templateImage("photo-1493421419110-74f4e85ba126"),
				Content:     "Meet [NAME], our [POSITION]. [BRIEF_BIO]",
				Platforms:   PlatformList{fb, li},
			},
			{
				Name:        "YouTube Video Title & Description",
				Description: ptr("Optimized for YouTube engagement and SEO"),
				ImageURL:    templateImage("photo-1611162616475-46b635cb6868"),
				Content: "[ATTENTION-GRABBING TITLE] | [KEYWORD]\n\n" +
					"In this video, I'll show you [MAIN_BENEFIT]. Learn how to " +
					"[TOPIC] and [VALUE_PROPOSITION].\n\n" +
					"🔔 Subscribe for more: [CHANNEL_LINK]\n" +
					"👍 Like and share if this was helpful!\n\n" +
					"#[HASHTAG1] #[HASHTAG2] #[HASHTAG3]",
				Platforms: PlatformList{yt},
			},
		},
	}

	upcoming := []struct {
		content      string
		photo        string
		offset       int
		hour, minute int
		platforms    PlatformList
	}{
		{
			"Introducing our new summer collection with special discount for early birds.",
			"photo-1551288049-bebda4e38f71", 5, 10, 0, PlatformList{fb, ig},
		},
		{
			"Learn how Green Cafe increased their sales by 30% using our products.",
			"photo-1522202176988-66273c2fd55f", 8, 14, 30, PlatformList{fb, li},
		},
		{
			"5 productivity hacks for small business owners to save time and boost efficiency.",
			"photo-1556155092-490a1ba16284", 11, 9, 0, PlatformList{ig, tw},
		},
	}
	for _, u := range upcoming {
		fx.Posts = append(fx.Posts, Post{
			Content:         u.content,
			ImageURL:        thumbnail(u.photo),
			ScheduledDate:   at(month, day+u.offset, u.hour, u.minute),
			Status:          StatusScheduled,
			Platforms:       u.platforms,
			EngagementStats: &Engagement{},
		})
	}

	past := []struct {
		content    string
		photo      string
		day, hour  int
		platforms  PlatformList
		engagement Engagement
	}{
		{
			"Check out our new office space! We've upgraded to better serve you.",
			"photo-1497366216548-37526070297c", 15, 9,
			PlatformList{fb, ig}, Engagement{Likes: 423, Comments: 32, Shares: 15},
		},
		{
			"Our Spring collection is now available! Limited stock, grab yours today.",
			"photo-1441986300917-64674bd600d8", 5, 10,
			PlatformList{fb, ig, tw}, Engagement{Likes: 786, Comments: 124, Shares: 89},
		},
	}
	for _, p := range past {
		published := at(month-1, p.day, p.hour, 0)
		engagement := p.engagement
		fx.Posts = append(fx.Posts, Post{
			Content:         p.content,
			ImageURL:        thumbnail(p.photo),
			ScheduledDate:   published,
			PublishedDate:   &published,
			Status:          StatusPublished,
			Platforms:       p.platforms,
			EngagementStats: &engagement,
		})
	}

	calendar := []struct {
		content   string
		day, hour int
		platforms PlatformList
	}{
		{"Product Launch announcement for our new line.", 2, 10, PlatformList{fb}},
		{"Series of Instagram stories showcasing behind the scenes.", 5, 14, PlatformList{ig}},
		{"Spotlight on a customer success story.", 8, 9, PlatformList{fb}},
		{"Featuring the key benefits of our product.", 13, 11, PlatformList{ig}},
		{"Special promotional offer for our followers.", 14, 10, PlatformList{fb, ig}},
		{"Hosting a Twitter chat on industry trends.", 21, 16, PlatformList{tw}},
	}
	for _, c := range calendar {
		fx.Posts = append(fx.Posts, Post{
			Content:         c.content,
			ScheduledDate:   at(month, c.day, c.hour, 0),
			Status:          StatusScheduled,
			Platforms:       c.platforms,
			EngagementStats: &Engagement{},
		})
	}

	return fx, nil
}

func (fx *Fixtures) withOwner(userID int64) *Fixtures {
	out := &Fixtures{User: fx.User}
	for _, b := range fx.BrandSettings {
		b.UserID = userID
		out.BrandSettings = append(out.BrandSettings, b)
	}
	for _, c := range fx.Connections {
		c.UserID = userID
		out.Connections = append(out.Connections, c)
	}
	for _, t := range fx.Templates {
		t.UserID = userID
		out.Templates = append(out.Templates, t)
	}
	for _, p := range fx.Posts {
		p.UserID = userID
		out.Posts = append(out.Posts, p)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
