// AngelaMos | 2026
// handler.go

package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
)

const resource = "post"

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/calendar", h.Calendar)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	posts, err := h.service.List(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, posts)
}

// Calendar lists posts scheduled within ?year=&month=, where month is
// zero-based. Missing values default to the current month.
func (h *Handler) Calendar(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	year, month := h.service.CurrentMonth()

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			core.BadRequest(w, "year must be an integer")
			return
		}
		year = parsed
	}
	if v := q.Get("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 0 || parsed > 11 {
			core.BadRequest(w, "month must be an integer between 0 and 11")
			return
		}
		month = parsed
	}

	posts, err := h.service.Calendar(r.Context(), userID, year, month)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, posts)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w, resource)
		return
	}

	p, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.OK(w, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	p, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.Created(w, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w, resource)
		return
	}

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	p, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.OK(w, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w, resource)
		return
	}

	deleted, err := h.service.Delete(r.Context(), userID, id)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}
	if !deleted {
		core.NotFound(w, resource)
		return
	}

	core.NoContent(w)
}
