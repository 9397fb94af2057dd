package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/vitrine-erp/vitrine-erp/internal/platform/httpx"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
)

// Handler manages authentication endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	sessions *shared.SessionManager
	validate *validator.Validate
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager) *Handler {
	return &Handler{logger: logger, service: service, sessions: sessions, validate: validator.New()}
}

// MountRoutes registers authentication routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/auth/signup", h.signup)
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)
}

type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name,omitempty"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := httpx.DecodeJSON(r, &creds); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.validate.Struct(creds); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	user, err := h.service.Signup(r.Context(), creds.Email, creds.Name, creds.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		sess.SetUser(user.ID)
	}
	h.logger.Info("user signed up", "user", user.ID)
	httpx.JSON(w, http.StatusCreated, sessionResponse{Token: sess.Token(), User: user})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := httpx.DecodeJSON(r, &creds); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.validate.Struct(creds); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	user, err := h.service.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		sess.SetUser(user.ID)
	}
	httpx.JSON(w, http.StatusOK, sessionResponse{Token: sess.Token(), User: user})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		h.sessions.Destroy(sess)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess.User() == "" {
		httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "not signed in")
		return
	}
	user, err := h.service.Get(r.Context(), sess.User())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}

// RequireAuth rejects requests without a signed-in session.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		if sess.User() == "" {
			httpx.Problem(w, http.StatusUnauthorized, "Unauthorized", "sign in required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
