package backup

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
)

// Handler manages backup endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers backup routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/backup", h.export)
	r.Post("/backup", h.restore)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("backup export failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="backup.json"`)
	httpx.JSON(w, http.StatusOK, doc)
}

func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	var doc map[string]json.RawMessage
	if err := httpx.DecodeJSON(r, &doc); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid backup file", err.Error())
		return
	}
	if err := h.service.Import(r.Context(), doc); err != nil {
		h.logger.Error("backup import failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("backup imported", "collections", len(doc))
	w.WriteHeader(http.StatusNoContent)
}
