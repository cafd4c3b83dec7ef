package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"ristorante/internal/core/application/usecases/commands"
	"ristorante/internal/core/application/usecases/queries"
	"ristorante/internal/core/domain/model/order"
)

// StaleOrderSweepJob cancels waiting orders older than a configured age.
// An order a restaurant never marked ready is considered abandoned after the
// cutoff; cancelling it keeps the kitchen queue honest.
type StaleOrderSweepJob struct {
	listHandler   queries.ListOrdersByStateQueryHandler
	cancelHandler commands.CancelOrderCommandHandler
	maxAge        time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderSweepJob creates a job that cancels waiting orders older
// than maxAge.
func NewStaleOrderSweepJob(
	listHandler queries.ListOrdersByStateQueryHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		listHandler:   listHandler,
		cancelHandler: cancelHandler,
		maxAge:        maxAge,
		cron:          cron.New(),
		logger:        logger.With("component", "stale_order_sweep_job"),
	}
}

// Start schedules the sweep to run every ten minutes.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale order sweep job started (running every ten minutes)", "max_age", j.maxAge)
	return nil
}

// Stop stops the stale order sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}

func (j *StaleOrderSweepJob) run() {
	ctx := context.Background()
	logger := j.logger.With("run_id", uuid.NewString())

	query, err := queries.NewListOrdersByStateQuery(order.Waiting)
	if err != nil {
		logger.ErrorContext(ctx, "Stale order query construction failed", "error", err)
		return
	}

	res := j.listHandler.Handle(ctx, query)
	if !res.IsSuccess() {
		logger.ErrorContext(ctx, "Stale order listing failed", "error", res.ErrorMessage())
		return
	}

	cutoff := time.Now().Add(-j.maxAge)
	for _, o := range res.Value() {
		if o.CreatedAt().After(cutoff) {
			continue
		}

		cmd, err := commands.NewCancelOrderCommand(o.ID())
		if err != nil {
			logger.ErrorContext(ctx, "Stale order cancel command construction failed",
				"order_id", o.ID(), "error", err)
			continue
		}

		// A failed cancel is fine: the restaurant may have marked the
		// order ready between the listing and the sweep.
		cancelRes := j.cancelHandler.Handle(ctx, cmd)
		if !cancelRes.IsSuccess() {
			logger.WarnContext(ctx, "Stale order cancel skipped",
				"order_id", o.ID(), "reason", cancelRes.ErrorMessage())
			continue
		}

		logger.InfoContext(ctx, "Stale order cancelled",
			"order_id", o.ID(), "created_at", o.CreatedAt())
	}
}
