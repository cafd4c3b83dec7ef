// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. DispatchBoardJob - Periodically lists orders in the ready state and logs
// a dispatch summary so operators can see the pickup backlog.
// 2. StaleOrderSweepJob - Periodically cancels waiting orders older than a
// configured age, so abandoned carts do not pile up in the kitchen queue.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, cancelOrderHandler, maxAge, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Every job run carries a generated run id in its log lines, so the lines of
// one run can be correlated across interleaved executions. Expected business
// failures on individual orders are logged and skipped; a job run never stops
// the scheduler.
package jobs
