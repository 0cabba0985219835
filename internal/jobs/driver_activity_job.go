package jobs

import (
	"context"
	"log/slog"
	"time"

	"driverhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverActivityJob manages the scheduled reconciliation of driver
// on-delivery flags. The flag is derived from the order set (at least one
// claimed, undelivered order); this job periodically syncs the derived
// value onto stored driver records.
type DriverActivityJob struct {
	handler      commands.ReconcileDriverActivityCommandHandler
	storeTimeout time.Duration
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewDriverActivityJob creates a new job for reconciling driver activity.
// Uses ReconcileDriverActivityCommandHandler to sync on-delivery flags
// every ten seconds. Each run is bounded by storeTimeout so a stalled
// store connection cannot pile up overlapping runs.
func NewDriverActivityJob(
	handler commands.ReconcileDriverActivityCommandHandler,
	storeTimeout time.Duration,
	logger *slog.Logger,
) *DriverActivityJob {
	return &DriverActivityJob{
		handler:      handler,
		storeTimeout: storeTimeout,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "driver_activity_job"),
	}
}

// Start begins the driver activity job to run every ten seconds.
func (j *DriverActivityJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.storeTimeout)
		defer cancel()

		cmd := commands.NewReconcileDriverActivityCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Driver activity reconciliation failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver activity job started (running every ten seconds)")
	return nil
}

// Stop stops the driver activity job.
func (j *DriverActivityJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver activity job stopped")
}
