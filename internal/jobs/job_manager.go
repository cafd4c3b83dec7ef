package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ristorante/internal/core/application/usecases/commands"
	"ristorante/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchBoardJob *DispatchBoardJob
	staleOrderSweep  *StaleOrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the query and command handlers as dependencies to wire up the job
// execution; maxOrderAge is the cutoff after which a waiting order is
// considered abandoned.
func NewJobManager(
	listOrdersHandler queries.ListOrdersByStateQueryHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	maxOrderAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchBoardJob: NewDispatchBoardJob(listOrdersHandler, logger),
		staleOrderSweep:  NewStaleOrderSweepJob(listOrdersHandler, cancelOrderHandler, maxOrderAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchBoardJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch board job: %w", err)
	}

	if err := jm.staleOrderSweep.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchBoardJob.Stop()
		return fmt.Errorf("failed to start stale order sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderSweep.Stop()
	jm.dispatchBoardJob.Stop()
}
