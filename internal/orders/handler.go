package orders

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages specific order endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers specific order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/orders", h.list)
	r.Post("/orders", h.save)
	r.Put("/orders/{id}", h.save)
	r.Patch("/orders/{id}/status", h.updateStatus)
	r.Delete("/orders/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list orders failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if orders == nil {
		orders = []SpecificOrder{}
	}
	httpx.JSON(w, http.StatusOK, orders)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var order SpecificOrder
	if err := httpx.DecodeJSON(r, &order); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		order.ID = id
	}
	saved, err := h.service.Save(r.Context(), order)
	if err != nil {
		h.logger.Error("save order failed", "error", err, "id", order.ID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status OrderStatus `json:"status"`
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
