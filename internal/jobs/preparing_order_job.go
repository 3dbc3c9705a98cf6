package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PreparingOrderJob manages the scheduled creation of preparing tasks.
// Runs every second to pick up checked-out orders that have no task yet.
type PreparingOrderJob struct {
	handler commands.CreatePreparingOrderCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPreparingOrderJob creates a new job for opening preparing tasks.
// Uses CreatePreparingOrderCommandHandler to process one order per tick.
func NewPreparingOrderJob(handler commands.CreatePreparingOrderCommandHandler, logger *slog.Logger) *PreparingOrderJob {
	return &PreparingOrderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "preparing_order_job"),
	}
}

// Start begins the preparing order job to run every second.
func (j *PreparingOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCreatePreparingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoOrderFound) {
				j.logger.ErrorContext(ctx, "Preparing order job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Preparing order job started (running every second)")
	return nil
}

// Stop stops the preparing order job.
func (j *PreparingOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Preparing order job stopped")
}
