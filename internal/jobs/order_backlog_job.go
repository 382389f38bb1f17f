package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

const backlogSchedule = "0 */5 * * * *"

type uncompletedOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetUncompletedOrdersQuery) ([]queries.OrderResponse, error)
}

// OrderBacklogJob reports the open orders by status every five minutes.
// READY orders without a courier are the ones dispatchers must act on.
type OrderBacklogJob struct {
	handler uncompletedOrdersHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

func NewOrderBacklogJob(handler uncompletedOrdersHandler, logger *slog.Logger) *OrderBacklogJob {
	return &OrderBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_backlog_job"),
	}
}

func (j *OrderBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(backlogSchedule, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Order backlog job started", "schedule", backlogSchedule)
	return nil
}

// RunOnce logs one backlog snapshot and returns the open order count per status.
func (j *OrderBacklogJob) RunOnce(ctx context.Context) map[order.Status]int {
	open, err := j.handler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order backlog snapshot failed", "error", err)
		return nil
	}

	byStatus := make(map[order.Status]int)
	awaitingCourier := 0
	for _, o := range open {
		byStatus[o.Status]++
		if o.Status == order.Ready && o.CourierID == nil {
			awaitingCourier++
		}
	}

	attrs := []any{"open", len(open), "awaitingCourier", awaitingCourier}
	for status, n := range byStatus {
		attrs = append(attrs, status.String(), n)
	}
	j.logger.InfoContext(ctx, "Order backlog", attrs...)
	return byStatus
}

func (j *OrderBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order backlog job stopped")
}
