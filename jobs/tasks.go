package jobs

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/vitrine-erp/vitrine-erp/internal/exchanges"
	"github.com/vitrine-erp/vitrine-erp/internal/receivables"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskValeExpiryScan flags store-credit vouchers past their validity.
	TaskValeExpiryScan = "exchanges:vale_expiry"
	// TaskOverdueScan reports installments past their due date.
	TaskOverdueScan = "receivables:overdue_scan"
)

// NewValeExpiryTask constructs the nightly vale expiry scan task.
func NewValeExpiryTask() *asynq.Task {
	return asynq.NewTask(TaskValeExpiryScan, nil)
}

// NewOverdueScanTask constructs the nightly overdue installment scan task.
func NewOverdueScanTask() *asynq.Task {
	return asynq.NewTask(TaskOverdueScan, nil)
}

// ValeExpiryJob scans for expired vales and logs them so the operator can
// follow up with the customer.
type ValeExpiryJob struct {
	service *exchanges.Service
	logger  *slog.Logger
}

// NewValeExpiryJob constructs a ValeExpiryJob.
func NewValeExpiryJob(service *exchanges.Service, logger *slog.Logger) *ValeExpiryJob {
	return &ValeExpiryJob{service: service, logger: logger}
}

// Handle processes TaskValeExpiryScan tasks.
func (j *ValeExpiryJob) Handle(ctx context.Context, t *asynq.Task) error {
	expired, err := j.service.ExpiredVales(ctx)
	if err != nil {
		return err
	}
	for _, e := range expired {
		j.logger.Warn("vale past validity",
			slog.String("exchange", e.ID),
			slog.String("customer", e.CustomerID))
	}
	j.logger.Info("vale expiry scan done", slog.Int("expired", len(expired)))
	return nil
}

// OverdueScanJob summarizes overdue installments by severity bucket.
type OverdueScanJob struct {
	service *receivables.Service
	logger  *slog.Logger
}

// NewOverdueScanJob constructs an OverdueScanJob.
func NewOverdueScanJob(service *receivables.Service, logger *slog.Logger) *OverdueScanJob {
	return &OverdueScanJob{service: service, logger: logger}
}

// Handle processes TaskOverdueScan tasks.
func (j *OverdueScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	buckets, err := j.service.OverdueReport(ctx)
	if err != nil {
		return err
	}
	j.logger.Info("overdue scan done",
		slog.Int("days3to5", len(buckets.Days3to5)),
		slog.Int("days6to10", len(buckets.Days6to10)),
		slog.Int("days11to15", len(buckets.Days11to15)),
		slog.Int("over15", len(buckets.Over15)))
	return nil
}
