package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// KitchenJob manages the scheduled start of cooking for paid orders.
// Runs every second to move paid orders into progress.
type KitchenJob struct {
	handler commands.StartCookingCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKitchenJob creates a new job for starting cooking.
// Uses StartCookingCommandHandler to pick up paid orders every second.
func NewKitchenJob(handler commands.StartCookingCommandHandler, logger *slog.Logger) *KitchenJob {
	return &KitchenJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kitchen_job"),
	}
}

// Start begins the kitchen job to run every second.
func (j *KitchenJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewStartCookingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Kitchen job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Kitchen job started (running every second)")
	return nil
}

// Stop stops the kitchen job.
func (j *KitchenJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Kitchen job stopped")
}
