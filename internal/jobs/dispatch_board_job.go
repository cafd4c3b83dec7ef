package jobs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"ristorante/internal/core/application/usecases/queries"
	"ristorante/internal/core/domain/model/order"
)

// DispatchBoardJob periodically lists the orders sitting in the ready state
// and logs a pickup summary. It is the operator's view of the backlog
// deliverymen are racing for.
type DispatchBoardJob struct {
	handler queries.ListOrdersByStateQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchBoardJob creates a job that reports the ready backlog.
func NewDispatchBoardJob(
	handler queries.ListOrdersByStateQueryHandler,
	logger *slog.Logger,
) *DispatchBoardJob {
	return &DispatchBoardJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "dispatch_board_job"),
	}
}

// Start schedules the dispatch summary to run every minute.
func (j *DispatchBoardJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch board job started (running every minute)")
	return nil
}

// Stop stops the dispatch board job.
func (j *DispatchBoardJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch board job stopped")
}

func (j *DispatchBoardJob) run() {
	ctx := context.Background()
	logger := j.logger.With("run_id", uuid.NewString())

	query, err := queries.NewListOrdersByStateQuery(order.Ready)
	if err != nil {
		logger.ErrorContext(ctx, "Dispatch board query construction failed", "error", err)
		return
	}

	res := j.handler.Handle(ctx, query)
	if !res.IsSuccess() {
		logger.ErrorContext(ctx, "Dispatch board listing failed", "error", res.ErrorMessage())
		return
	}

	if len(res.Value()) == 0 {
		return
	}

	ids := make([]int, 0, len(res.Value()))
	for _, o := range res.Value() {
		ids = append(ids, o.ID())
	}

	logger.InfoContext(ctx, "Orders awaiting pickup", "count", len(ids), "order_ids", ids)
}
