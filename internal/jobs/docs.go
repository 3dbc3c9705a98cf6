// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. PreparingOrderJob - Runs every second to open preparing tasks for checked-out orders
// 2. DeliveryCreationJob - Runs every second to open deliveries for completed preparing tasks
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(createPreparingOrderHandler, createDeliveryHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "* * * * * *" which means they run every second.
// This frequency keeps the pipeline moving without callers having to trigger
// task or delivery creation themselves.
//
// # Error Handling
//
// - Both jobs ignore the expected no-work errors (no eligible order, no completed task)
// - All other errors are logged as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
