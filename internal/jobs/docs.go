// Package jobs provides scheduled background tasks for the picking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic housekeeping the picking service requires.
//
// # Available Jobs
//
// 1. StaleListCancellationJob - Periodically cancels lists that stayed in
// Created status longer than the configured age, so the queue does not fill
// with lists nobody picked up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cancelStaleListsHandler, staleAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The stale-list job logs sweep failures and keeps running; a failed sweep is
// retried on the next tick. Lists grabbed by a worker mid-sweep are skipped by
// the handler, not treated as errors.
package jobs
