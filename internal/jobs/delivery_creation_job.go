package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DeliveryCreationJob manages the scheduled creation of deliveries.
// Runs every second to pick up completed preparing tasks without a delivery.
type DeliveryCreationJob struct {
	handler commands.CreateDeliveryCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryCreationJob creates a new job for opening deliveries.
// Uses CreateDeliveryCommandHandler to process one preparing task per tick.
func NewDeliveryCreationJob(handler commands.CreateDeliveryCommandHandler, logger *slog.Logger) *DeliveryCreationJob {
	return &DeliveryCreationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "delivery_creation_job"),
	}
}

// Start begins the delivery creation job to run every second.
func (j *DeliveryCreationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCreateDeliveryCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPreparingOrderFound) {
				j.logger.ErrorContext(ctx, "Delivery creation job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery creation job started (running every second)")
	return nil
}

// Stop stops the delivery creation job.
func (j *DeliveryCreationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery creation job stopped")
}
