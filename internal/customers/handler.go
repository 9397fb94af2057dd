package customers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages customer endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers customer routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/customers", h.list)
	r.Get("/customers/{id}", h.show)
	r.Post("/customers", h.save)
	r.Put("/customers/{id}", h.save)
	r.Delete("/customers/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list customers failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	if customers == nil {
		customers = []Customer{}
	}
	httpx.JSON(w, http.StatusOK, customers)
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	customer, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, customer)
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var customer Customer
	if err := httpx.DecodeJSON(r, &customer); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if id := chi.URLParam(r, "id"); id != "" {
		customer.ID = id
	}
	saved, err := h.service.Save(r.Context(), customer)
	if err != nil {
		h.logger.Error("save customer failed", "error", err, "id", customer.ID)
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
