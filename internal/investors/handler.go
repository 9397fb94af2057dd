package investors

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages investor ledger endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers investor ledger routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/investors", h.report)
	r.Post("/investors/repayments", h.registerRepayment)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	ledger, err := h.service.Report(r.Context())
	if err != nil {
		h.logger.Error("investor report failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ledger)
}

func (h *Handler) registerRepayment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OwnerID   string     `json:"ownerId"`
		PaymentID string     `json:"paymentId"`
		Amount    float64    `json:"amount"`
		Date      string     `json:"date"`
		Origin    OriginKind `json:"originKind"`
	}
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	err := h.service.RegisterRepayment(r.Context(), payload.OwnerID, payload.PaymentID, payload.Amount, payload.Date, payload.Origin)
	if err != nil {
		h.logger.Error("register repayment failed", "error", err, "owner", payload.OwnerID)
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
