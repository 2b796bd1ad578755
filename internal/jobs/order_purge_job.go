package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"barpos/internal/core/application/usecases/commands"
)

// OrderPurgeJob deletes closed orders past the retention window.
// Runs hourly; the exact moment of deletion is not load-bearing, the point
// is that the orders table stays bounded.
type OrderPurgeJob struct {
	handler   commands.PurgeClosedOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderPurgeJob creates the retention job.
func NewOrderPurgeJob(
	handler commands.PurgeClosedOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *OrderPurgeJob {
	return &OrderPurgeJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(),
		logger:    logger.With("component", "order_purge_job"),
	}
}

// Start schedules the purge to run at the top of every hour.
func (j *OrderPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeClosedOrdersCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Order purge job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order purge job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Purged closed orders", "removed", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order purge job started (running hourly)",
		"retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *OrderPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order purge job stopped")
}
