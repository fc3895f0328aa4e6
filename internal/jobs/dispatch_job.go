package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchJob manages the scheduled movement of cooked orders through
// dispatch and delivery. Runs every second.
type DispatchJob struct {
	handler commands.DispatchOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchJob creates a new job for dispatching and delivering orders.
// Uses DispatchOrdersCommandHandler to advance in-flight orders every second.
func NewDispatchJob(handler commands.DispatchOrdersCommandHandler, logger *slog.Logger) *DispatchJob {
	return &DispatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_job"),
	}
}

// Start begins the dispatch job to run every second.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewDispatchOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch job started (running every second)")
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch job stopped")
}
