package sales

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages sale endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers sale routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales", h.list)
	r.Get("/sales/{id}", h.show)
	r.Post("/sales", h.save)
	r.Put("/sales/{id}", h.save)
	r.Delete("/sales/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list sales failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if sales == nil {
		sales = []Sale{}
	}
	httpx.JSON(w, http.StatusOK, sales)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	sale, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var sale Sale
	if err := httpx.DecodeJSON(r, &sale); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		sale.ID = id
	}
	saved, err := h.service.Save(r.Context(), sale)
	if err != nil {
		h.logger.Error("save sale failed", "error", err, "id", sale.ID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
