package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vitrine-erp/vitrine-erp/internal/analytics"
	"github.com/vitrine-erp/vitrine-erp/internal/auth"
	"github.com/vitrine-erp/vitrine-erp/internal/backup"
	"github.com/vitrine-erp/vitrine-erp/internal/cashbook"
	"github.com/vitrine-erp/vitrine-erp/internal/catalog"
	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/exchanges"
	"github.com/vitrine-erp/vitrine-erp/internal/investors"
	"github.com/vitrine-erp/vitrine-erp/internal/orders"
	"github.com/vitrine-erp/vitrine-erp/internal/payroll"
	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/receivables"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager

	AuthHandler        *auth.Handler
	CatalogHandler     *catalog.Handler
	CustomersHandler   *customers.Handler
	SalesHandler       *sales.Handler
	ReceivablesHandler *receivables.Handler
	PurchasesHandler   *purchases.Handler
	InvestorsHandler   *investors.Handler
	ExchangesHandler   *exchanges.Handler
	PayrollHandler     *payroll.Handler
	OrdersHandler      *orders.Handler
	CashbookHandler    *cashbook.Handler
	AnalyticsHandler   *analytics.Handler
	BackupHandler      *backup.Handler
	JobHandler         *jobs.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		params.AuthHandler.MountRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth)

			params.CatalogHandler.MountRoutes(r)
			params.CustomersHandler.MountRoutes(r)
			params.SalesHandler.MountRoutes(r)
			params.ReceivablesHandler.MountRoutes(r)
			params.PurchasesHandler.MountRoutes(r)
			params.InvestorsHandler.MountRoutes(r)
			params.ExchangesHandler.MountRoutes(r)
			params.PayrollHandler.MountRoutes(r)
			params.OrdersHandler.MountRoutes(r)
			params.CashbookHandler.MountRoutes(r)
			params.AnalyticsHandler.MountRoutes(r)
			params.BackupHandler.MountRoutes(r)
			if params.JobHandler != nil {
				r.Route("/jobs", params.JobHandler.MountRoutes)
			}
		})
	})

	return r
}
