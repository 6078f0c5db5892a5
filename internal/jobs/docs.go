// Package jobs provides scheduled background tasks for the back office.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the order lifecycle requires.
//
// # Available Jobs
//
// 1. QuoteExpiryJob - Runs every minute to move orders with lapsed quote
// deadlines to quote_expired through the normal transition command.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(orderUoWFactory, transitionHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The expiry sweep skips orders a concurrent staff action already moved
// - Validator outages are logged and retried on the next tick
// - Failed job starts are reported to the caller
package jobs
