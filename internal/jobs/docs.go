// Package jobs provides scheduled background tasks for the orders system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. KitchenJob - Runs every second to start cooking paid orders
// 2. DispatchJob - Runs every second to dispatch cooked orders and complete deliveries
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(startCookingHandler, dispatchOrdersHandler, logger)
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
// This frequency keeps order progression responsive without a public endpoint.
//
// # Error Handling
//
// - Jobs log all handler errors; an empty backlog is not an error
// - Failed job starts will stop any already running jobs
package jobs
