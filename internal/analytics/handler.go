package analytics

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages dashboard endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers dashboard routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/analytics/kpis", h.kpis)
	r.Get("/analytics/revenue-trend", h.trend)
	r.Get("/analytics/top-products", h.topProducts)
}

func (h *Handler) kpis(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.KPIs(r.Context())
	if err != nil {
		h.logger.Error("kpi summary failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}

func (h *Handler) trend(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	trend, err := h.service.RevenueTrend(r.Context(), months)
	if err != nil {
		h.logger.Error("revenue trend failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, trend)
}

func (h *Handler) topProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	top, err := h.service.TopProducts(r.Context(), limit)
	if err != nil {
		h.logger.Error("top products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if top == nil {
		top = []TopProduct{}
	}
	httpx.JSON(w, http.StatusOK, top)
}
