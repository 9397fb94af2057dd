package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages product endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers product routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.list)
	r.Get("/products/{id}", h.show)
	r.Post("/products", h.save)
	r.Put("/products/{id}", h.save)
	r.Post("/products/bulk-delete", h.bulkDelete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if products == nil {
		products = []Product{}
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var product Product
	if err := httpx.DecodeJSON(r, &product); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		product.ID = id
	}
	saved, err := h.service.Save(r.Context(), product)
	if err != nil {
		h.logger.Error("save product failed", "error", err, "id", product.ID)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *Handler) bulkDelete(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs []string `json:"ids"`
	}
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.service.BulkDelete(r.Context(), payload.IDs); err != nil {
		h.logger.Error("bulk delete products failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"deleted": len(payload.IDs)})
}
