// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. BatchProcessingJob - Polls the drop directory and runs the batch pipeline whenever an input file is present
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(processBatchHandler, "0 * * * * *", logger)
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
// The batch processing job takes its cron expression from configuration.
// Expressions carry a seconds field, so "0 * * * * *" runs once a minute.
//
// # Error Handling
//
// - An empty drop directory is the idle state, logged at debug level only
// - Pipeline failures are logged with a unique invocation id for correlation
// - Failed job starts will stop any already running jobs
package jobs
