// AngelaMos | 2026
// handler.go

package analytics

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
	"github.com/carterperez-dev/socialdash/internal/storage"
)

type Handler struct {
	store storage.PostStore
	loc   *time.Location
	now   func() time.Time
}

func NewHandler(store storage.PostStore, loc *time.Location) *Handler {
	return &Handler{store: store, loc: loc, now: time.Now}
}

// WithClock returns a copy of h that reads the current time from now.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	cp := *h
	cp.now = now
	return &cp
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/analytics/summary", h.Summary)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	posts, err := h.store.ListPosts(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, Summarize(posts, h.now(), h.loc))
}
