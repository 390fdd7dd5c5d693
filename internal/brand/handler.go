// AngelaMos | 2026
// handler.go

package brand

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/socialdash/internal/core"
	"github.com/carterperez-dev/socialdash/internal/middleware"
)

const resource = "brand settings"

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
	r.Route("/brand-settings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	settings, err := h.service.Get(r.Context(), userID)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.OK(w, settings)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req CreateBrandSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	settings, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.Created(w, settings)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	id, ok := core.IDParam(r, "id")
	if !ok {
		core.NotFound(w, resource)
		return
	}

	var req UpdateBrandSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.ValidationFailed(w, err)
		return
	}

	settings, err := h.service.Update(r.Context(), userID, id, req)
	if err != nil {
		core.StorageError(w, err, resource)
		return
	}

	core.OK(w, settings)
}
