// AngelaMos | 2026
// summary.go

package analytics

import (
	"time"

	"github.com/carterperez-dev/socialdash/internal/storage"
)

type EngagementBreakdown struct {
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

type Summary struct {
	PublishedThisMonth  int                 `json:"publishedThisMonth"`
	ScheduledThisMonth  int                 `json:"scheduledThisMonth"`
	TotalPlannedPosts   int                 `json:"totalPlannedPosts"`
	TotalEngagement     int64               `json:"totalEngagement"`
	EngagementBreakdown EngagementBreakdown `json:"engagementBreakdown"`
}

// Summarize aggregates posts in a single pass. "This month" is the calendar
// month containing now in loc. Engagement is summed over every post.
func Summarize(posts []storage.Post, now time.Time, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}
	now = now.In(loc)

	var s Summary
	for _, p := range posts {
		if p.PublishedDate != nil && sameMonth(*p.PublishedDate, now, loc) {
			s.PublishedThisMonth++
		}
		if p.Status == storage.StatusScheduled && sameMonth(p.ScheduledDate, now, loc) {
			s.ScheduledThisMonth++
		}
		if e := p.EngagementStats; e != nil {
			s.EngagementBreakdown.Likes += e.Likes
			s.EngagementBreakdown.Comments += e.Comments
			s.EngagementBreakdown.Shares += e.Shares
			s.TotalEngagement += e.Total()
		}
	}
	s.TotalPlannedPosts = s.PublishedThisMonth + s.ScheduledThisMonth

	return s
}

func sameMonth(t, now time.Time, loc *time.Location) bool {
	t = t.In(loc)
	return t.Year() == now.Year() && t.Month() == now.Month()
}
