package payroll

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages salary payment endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers salary payment routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/salaries", h.list)
	r.Post("/salaries", h.save)
	r.Put("/salaries/{id}", h.save)
	r.Delete("/salaries/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list salaries failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if payments == nil {
		payments = []SalaryPayment{}
	}
	httpx.JSON(w, http.StatusOK, payments)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var payment SalaryPayment
	if err := httpx.DecodeJSON(r, &payment); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		payment.ID = id
	}
	saved, err := h.service.Save(r.Context(), payment)
	if err != nil {
		h.logger.Error("save salary failed", "error", err, "id", payment.ID)
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
