package cashbook

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages cash register endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers cash register routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/cashbook/{month}", h.report)
	r.Post("/cashbook/{month}/close", h.closeMonth)
	r.Get("/cashbook/carried", h.carried)
	r.Put("/cashbook/carried/{month}", h.setCarried)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.MonthlyCashFlow(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		h.logger.Error("cash flow report failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) closeMonth(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	report, err := h.service.CloseMonth(r.Context(), month)
	if err != nil {
		h.logger.Error("close month failed", "error", err, "month", month)
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("month closed", "month", month, "saldoFinal", report.SaldoFinal)
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) carried(w http.ResponseWriter, r *http.Request) {
	carried, err := h.service.CarriedBalances(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, carried)
}

func (h *Handler) setCarried(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Value string `json:"value"`
	}
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.service.SetCarriedBalance(r.Context(), chi.URLParam(r, "month"), payload.Value); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
