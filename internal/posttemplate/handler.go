// AngelaMos | 2026
// handler.go

package posttemplate

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
)

const resource = "template"

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
	r.Route("/templates", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	templates, err := h.service.List(r.Context(), userID)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, templates)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w, resource)
		return
	}

	tmpl, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.OK(w, tmpl)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	tmpl, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.Created(w, tmpl)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w, resource)
		return
	}

	var req UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	tmpl, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.OK(w, tmpl)
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
