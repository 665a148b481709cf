package jobs

import (
	"context"
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DeliveryCleanupJob periodically removes delivery records whose shipment
// is gone or no longer in Delivered status. Inline deletion is deliberately
// avoided on status changes; this sweep is where inconsistent records die.
type DeliveryCleanupJob struct {
	handler commands.CleanupDeliveriesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCleanupJob creates the cleanup job. The sweep runs once a
// minute.
func NewDeliveryCleanupJob(handler commands.CleanupDeliveriesCommandHandler, logger *slog.Logger) *DeliveryCleanupJob {
	return &DeliveryCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_cleanup_job"),
	}
}

// Start schedules the sweep.
func (j *DeliveryCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		cmd := commands.NewCleanupDeliveriesCommand()

		deleted, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery cleanup sweep failed", "error", err)
			return
		}

		if deleted > 0 {
			metrics.DeliveriesCleanedTotal.Add(float64(deleted))
			j.logger.InfoContext(ctx, "Delivery cleanup sweep removed inconsistent records", "deleted", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *DeliveryCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery cleanup job stopped")
}
