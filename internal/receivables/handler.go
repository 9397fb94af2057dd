package receivables

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
)

// Handler manages installment ledger endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers installment ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/receivables", h.grouped)
	r.Get("/receivables/overdue", h.overdue)
	r.Post("/receivables/toggle", h.toggle)
}

func (h *Handler) grouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.Grouped(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Error("group receivables failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if groups == nil {
		groups = []CustomerGroup{}
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"groups":   groups,
		"totalDue": TotalReceivable(groups),
	})
}

func (h *Handler) overdue(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.service.OverdueReport(r.Context())
	if err != nil {
		h.logger.Error("overdue report failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, buckets)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SaleID    string                  `json:"saleId"`
		PaymentID string                  `json:"paymentId"`
		Index     int                     `json:"index"`
		Status    sales.InstallmentStatus `json:"status"`
	}
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	sale, err := h.service.Toggle(r.Context(), payload.SaleID, payload.PaymentID, payload.Index, payload.Status)
	if err != nil {
		h.logger.Error("toggle installment failed", "error", err, "sale", payload.SaleID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sale)
}
