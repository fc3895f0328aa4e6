package jobs

import (
	"fmt"
	"log/slog"

	"orders/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kitchenJob  *KitchenJob
	dispatchJob *DispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	startCookingHandler commands.StartCookingCommandHandler,
	dispatchOrdersHandler commands.DispatchOrdersCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kitchenJob:  NewKitchenJob(startCookingHandler, logger),
		dispatchJob: NewDispatchJob(dispatchOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kitchenJob.Start(); err != nil {
		return fmt.Errorf("failed to start kitchen job: %w", err)
	}

	if err := jm.dispatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.kitchenJob.Stop()
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dispatchJob.Stop()
	jm.kitchenJob.Stop()
}
