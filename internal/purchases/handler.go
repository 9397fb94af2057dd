package purchases

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages purchase and aplicação endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers purchase and aplicação routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/purchases", h.listPurchases)
	r.Post("/purchases", h.savePurchase)
	r.Put("/purchases/{id}", h.savePurchase)
	r.Delete("/purchases/{id}", h.deletePurchase)

	r.Get("/aplicacoes", h.listAplicacoes)
	r.Post("/aplicacoes", h.saveAplicacao)
	r.Put("/aplicacoes/{id}", h.saveAplicacao)
	r.Delete("/aplicacoes/{id}", h.deleteAplicacao)
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.service.ListPurchases(r.Context())
	if err != nil {
		h.logger.Error("list purchases failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if purchases == nil {
		purchases = []Purchase{}
	}
	httpx.JSON(w, http.StatusOK, purchases)
}

func (h *Handler) savePurchase(w http.ResponseWriter, r *http.Request) {
	var purchase Purchase
	if err := httpx.DecodeJSON(r, &purchase); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		purchase.ID = id
	}
	saved, err := h.service.SavePurchase(r.Context(), purchase)
	if err != nil {
		h.logger.Error("save purchase failed", "error", err, "id", purchase.ID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePurchase(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAplicacoes(w http.ResponseWriter, r *http.Request) {
	aplicacoes, err := h.service.ListAplicacoes(r.Context())
	if err != nil {
		h.logger.Error("list aplicacoes failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if aplicacoes == nil {
		aplicacoes = []Aplicacao{}
	}
	httpx.JSON(w, http.StatusOK, aplicacoes)
}

func (h *Handler) saveAplicacao(w http.ResponseWriter, r *http.Request) {
	var aplicacao Aplicacao
	if err := httpx.DecodeJSON(r, &aplicacao); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		aplicacao.ID = id
	}
	saved, err := h.service.SaveAplicacao(r.Context(), aplicacao)
	if err != nil {
		h.logger.Error("save aplicacao failed", "error", err, "id", aplicacao.ID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) deleteAplicacao(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAplicacao(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
