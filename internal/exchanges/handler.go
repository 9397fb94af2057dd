package exchanges

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages exchange endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers exchange routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/exchanges", h.list)
	r.Post("/exchanges", h.save)
	r.Put("/exchanges/{id}", h.save)
	r.Patch("/exchanges/{id}/status", h.updateStatus)
	r.Delete("/exchanges/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	exchanges, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list exchanges failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if exchanges == nil {
		exchanges = []Exchange{}
	}
	httpx.JSON(w, http.StatusOK, exchanges)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var exchange Exchange
	if err := httpx.DecodeJSON(r, &exchange); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		exchange.ID = id
	}
	saved, err := h.service.Save(r.Context(), exchange)
	if err != nil {
		h.logger.Error("save exchange failed", "error", err, "id", exchange.ID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status Status `json:"status"`
	}
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	updated, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), payload.Status)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
