package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/vitrine-erp/vitrine-erp/internal/app"
	"github.com/vitrine-erp/vitrine-erp/internal/customers"
	"github.com/vitrine-erp/vitrine-erp/internal/exchanges"
	"github.com/vitrine-erp/vitrine-erp/internal/platform/db"
	"github.com/vitrine-erp/vitrine-erp/internal/receivables"
	"github.com/vitrine-erp/vitrine-erp/internal/sales"
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
		logger.Error("connect database", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	st := store.NewPG(pool)

	exchangesService := exchanges.NewService(exchanges.NewRepository(st))
	receivablesService := receivables.NewService(sales.NewRepository(st), customers.NewRepository(st))

	valeJob := jobs.NewValeExpiryJob(exchangesService, logger)
	overdueJob := jobs.NewOverdueScanJob(receivablesService, logger)

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskValeExpiryScan, Handler: valeJob.Handle},
			{Type: jobs.TaskOverdueScan, Handler: overdueJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: "0 3 * * *", Task: jobs.NewValeExpiryTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "30 3 * * *", Task: jobs.NewOverdueScanTask(), Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
