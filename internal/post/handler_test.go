// AngelaMos | 2026
// handler_test.go

package post_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
	"github.com/carterperez-dev/socialdash/internal/post"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

var fixedNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store  *storage.MemoryStore
	router http.Handler
}

func newFixture() *fixture {
	store := storage.NewMemoryStore()
	svc := post.NewService(store, time.UTC, post.WithClock(func() time.Time {
		return fixedNow
	}))

	r := chi.NewRouter()
	r.Use(middleware.DemoUser(1))
	post.NewHandler(svc).RegisterRoutes(r)

	return &fixture{store: store, router: r}
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func (f *fixture) calendar(c *qt.C, query string) []storage.Post {
	rec := f.do(http.MethodGet, "/posts/calendar"+query, "")
	c.Assert(rec.Code, qt.Equals, http.StatusOK)

	var posts []storage.Post
	c.Assert(json.NewDecoder(rec.Body).Decode(&posts), qt.IsNil)
	return posts
}

func (f *fixture) seedPost(c *qt.C, userID int64, at time.Time) storage.Post {
	p, err := f.store.CreatePost(context.Background(), storage.NewPost{
		UserID:        userID,
		Content:       "seeded",
		ScheduledDate: at,
		Platforms:     storage.PlatformList{storage.PlatformFacebook},
	})
	c.Assert(err, qt.IsNil)
	return *p
}

func TestCreatePostAppearsInCalendar(t *testing.T) {
	c := qt.New(t)
	f := newFixture()

	rec := f.do(http.MethodPost, "/posts", `{
		"content": "Hi",
		"scheduledDate": "2025-01-15T10:00:00Z",
		"platforms": ["twitter"],
		"status": "published",
		"publishedDate": "2025-01-16T10:00:00Z"
	}`)
	c.Assert(rec.Code, qt.Equals, http.StatusCreated)

	var created storage.Post
	c.Assert(json.NewDecoder(rec.Body).Decode(&created), qt.IsNil)
	c.Assert(created.Status, qt.Equals, storage.StatusScheduled)
	c.Assert(created.PublishedDate, qt.IsNil)
	c.Assert(created.EngagementStats, qt.DeepEquals, &storage.Engagement{})
	c.Assert(created.UserID, qt.Equals, int64(1))

	january := f.calendar(c, "?year=2025&month=0")
	c.Assert(january, qt.HasLen, 1)
	c.Assert(january[0].ID, qt.Equals, created.ID)

	february := f.calendar(c, "?year=2025&month=1")
	c.Assert(february, qt.HasLen, 0)
}

func TestCalendarDefaultsToCurrentMonth(t *testing.T) {
	c := qt.New(t)
	f := newFixture()

	march := f.seedPost(c, 1, time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC))
	f.seedPost(c, 1, time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC))
	f.seedPost(c, 2, time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC))

	posts := f.calendar(c, "")
	c.Assert(posts, qt.HasLen, 1)
	c.Assert(posts[0].ID, qt.Equals, march.ID)

	c.Assert(f.calendar(c, "?month=3"), qt.HasLen, 1)
	c.Assert(f.calendar(c, "?year=2024"), qt.HasLen, 0)
}

func TestCalendarRejectsBadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non-integer year", query: "?year=abc&month=0"},
		{name: "non-integer month", query: "?year=2025&month=jan"},
		{name: "month too large", query: "?year=2025&month=12"},
		{name: "negative month", query: "?year=2025&month=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			f := newFixture()

			rec := f.do(http.MethodGet, "/posts/calendar"+tt.query, "")
			c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)

			var body core.ErrorResponse
			c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
			c.Assert(body.Error.Code, qt.Equals, core.CodeBadRequest)
		})
	}
}

func TestCreatePostValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing content",
			body:      `{"scheduledDate": "2025-01-15T10:00:00Z", "platforms": []}`,
			wantField: "content",
		},
		{
			name:      "missing scheduled date",
			body:      `{"content": "Hi", "platforms": ["twitter"]}`,
			wantField: "scheduledDate",
		},
		{
			name:      "missing platforms",
			body:      `{"content": "Hi", "scheduledDate": "2025-01-15T10:00:00Z"}`,
			wantField: "platforms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			f := newFixture()

			rec := f.do(http.MethodPost, "/posts", tt.body)
			c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)

			var body core.ErrorResponse
			c.Assert(json.NewDecoder(rec.Body).Decode(&body), qt.IsNil)
			c.Assert(body.Error.Code, qt.Equals, core.CodeValidationFailed)
			c.Assert(body.Error.Details[tt.wantField], qt.Equals, "required")
		})
	}

	c := qt.New(t)
	rec := newFixture().do(http.MethodPost, "/posts", `{"scheduledDate": "tomorrow"}`)
	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
}

func TestUpdateAndDeletePost(t *testing.T) {
	c := qt.New(t)
	f := newFixture()

	mine := f.seedPost(c, 1, fixedNow)
	theirs := f.seedPost(c, 2, fixedNow)

	rec := f.do(http.MethodPatch, "/posts/1", `{
		"content": "Edited",
		"scheduledDate": "2025-03-20T09:30:00+02:00",
		"templateId": 4
	}`)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)

	var updated storage.Post
	c.Assert(json.NewDecoder(rec.Body).Decode(&updated), qt.IsNil)
	c.Assert(updated.Content, qt.Equals, "Edited")
	c.Assert(updated.ScheduledDate.Equal(time.Date(2025, 3, 20, 7, 30, 0, 0, time.UTC)), qt.IsTrue)
	c.Assert(*updated.TemplateID, qt.Equals, int64(4))
	c.Assert(updated.Status, qt.Equals, storage.StatusScheduled)

	rec = f.do(http.MethodPatch, "/posts/1", `{"templateId": null}`)
	c.Assert(rec.Code, qt.Equals, http.StatusOK)
	c.Assert(json.NewDecoder(rec.Body).Decode(&updated), qt.IsNil)
	c.Assert(updated.TemplateID, qt.IsNil)

	rec = f.do(http.MethodPatch, "/posts/2", `{"content": "Hijacked"}`)
	c.Assert(rec.Code, qt.Equals, http.StatusNotFound)

	rec = f.do(http.MethodDelete, "/posts/2", "")
	c.Assert(rec.Code, qt.Equals, http.StatusNotFound)

	got, err := f.store.GetPost(context.Background(), theirs.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Content, qt.Equals, "seeded")

	rec = f.do(http.MethodDelete, "/posts/1", "")
	c.Assert(rec.Code, qt.Equals, http.StatusNoContent)

	rec = f.do(http.MethodGet, "/posts/1", "")
	c.Assert(rec.Code, qt.Equals, http.StatusNotFound)

	rec = f.do(http.MethodGet, "/posts", "")
	var list []storage.Post
	c.Assert(json.NewDecoder(rec.Body).Decode(&list), qt.IsNil)
	c.Assert(list, qt.HasLen, 0)
	c.Assert(mine.ID, qt.Equals, int64(1))
}
