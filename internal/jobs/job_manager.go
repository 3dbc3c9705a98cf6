package jobs

import (
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	preparingOrderJob   *PreparingOrderJob
	deliveryCreationJob *DeliveryCreationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	createPreparingOrderHandler commands.CreatePreparingOrderCommandHandler,
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		preparingOrderJob:   NewPreparingOrderJob(createPreparingOrderHandler, logger),
		deliveryCreationJob: NewDeliveryCreationJob(createDeliveryHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.preparingOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start preparing order job: %w", err)
	}

	if err := jm.deliveryCreationJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.preparingOrderJob.Stop()
		return fmt.Errorf("failed to start delivery creation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.preparingOrderJob.Stop()
	jm.deliveryCreationJob.Stop()
}
