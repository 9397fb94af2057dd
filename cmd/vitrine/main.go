package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/vitrine-erp/vitrine-erp/internal/analytics"
	"github.com/vitrine-erp/vitrine-erp/internal/app"
	"github.com/vitrine-erp/vitrine-erp/internal/auth"
	"github.com/vitrine-erp/vitrine-erp/internal/backup"
	"github.com/vitrine-erp/vitrine-erp/internal/cashbook"
	"github.com/vitrine-erp/vitrine-erp/internal/catalog"
	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/exchanges"
	"github.com/vitrine-erp/vitrine-erp/internal/investors"
	"github.com/vitrine-erp/vitrine-erp/internal/orders"
	"github.com/vitrine-erp/vitrine-erp/internal/payroll"
	"github.com/vitrine-erp/vitrine-erp/internal/platform/cache"
	"github.com/vitrine-erp/vitrine-erp/internal/platform/db"
	"github.com/vitrine-erp/vitrine-erp/internal/purchases"
	"github.com/vitrine-erp/vitrine-erp/internal/receivables"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
	"github.com/vitrine-erp/vitrine-erp/internal/shared"
	"github.com/vitrine-erp/vitrine-erp/internal/store"
	"github.com/vitrine-erp/vitrine-erp/jobs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	st := store.NewPG(pool)
	if err := st.EnsureSchema(ctx); err != nil {
		logger.Error("ensure schema", slog.Any("error", err))
		os.Exit(1)
	}

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	sessionManager := shared.NewSessionManager(redisClient, "vitrine_session", cfg.SessionTTL, cfg.IsProduction())

	catalogRepo := catalog.NewRepository(st)
	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	customersRepo := customers.NewRepository(st)
	customersService := customers.NewService(customersRepo)
	customersHandler := customers.NewHandler(logger, customersService)

	salesRepo := sales.NewRepository(st)
	salesService := sales.NewService(logger, salesRepo, catalogService)
	salesHandler := sales.NewHandler(logger, salesService)

	receivablesService := receivables.NewService(salesRepo, customersRepo)
	receivablesHandler := receivables.NewHandler(logger, receivablesService)

	purchasesRepo := purchases.NewRepository(st)
	purchasesService := purchases.NewService(purchasesRepo)
	purchasesHandler := purchases.NewHandler(logger, purchasesService)

	investorsService := investors.NewService(purchasesRepo)
	investorsHandler := investors.NewHandler(logger, investorsService)

	exchangesRepo := exchanges.NewRepository(st)
	exchangesService := exchanges.NewService(exchangesRepo)
	exchangesHandler := exchanges.NewHandler(logger, exchangesService)

	payrollRepo := payroll.NewRepository(st)
	payrollService := payroll.NewService(payrollRepo)
	payrollHandler := payroll.NewHandler(logger, payrollService)

	ordersService := orders.NewService(orders.NewRepository(st))
	ordersHandler := orders.NewHandler(logger, ordersService)

	cashbookService := cashbook.NewService(st, salesRepo, purchasesRepo, exchangesRepo, payrollRepo)
	cashbookHandler := cashbook.NewHandler(logger, cashbookService)

	analyticsCache := analytics.NewCache(redisClient, cfg.AnalyticsCacheTTL)
	analyticsService := analytics.NewService(salesRepo, catalogRepo, analyticsCache)
	analyticsHandler := analytics.NewHandler(logger, analyticsService)

	backupService := backup.NewService(st, analyticsService)
	backupHandler := backup.NewHandler(logger, backupService)

	authService := auth.NewService(st)
	authHandler := auth.NewHandler(logger, authService, sessionManager)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		SessionManager:     sessionManager,
		AuthHandler:        authHandler,
		CatalogHandler:     catalogHandler,
		CustomersHandler:   customersHandler,
		SalesHandler:       salesHandler,
		ReceivablesHandler: receivablesHandler,
		PurchasesHandler:   purchasesHandler,
		InvestorsHandler:   investorsHandler,
		ExchangesHandler:   exchangesHandler,
		PayrollHandler:     payrollHandler,
		OrdersHandler:      ordersHandler,
		CashbookHandler:    cashbookHandler,
		AnalyticsHandler:   analyticsHandler,
		BackupHandler:      backupHandler,
		JobHandler:         jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
