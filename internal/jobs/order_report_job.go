package jobs

import (
	"context"
	"log/slog"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderReportJob periodically logs a per-status census of the order
// registry. Runs every minute; the listing is a consistent snapshot, so
// the reported counts always add up.
type OrderReportJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderReportJob creates a new job reporting on the order registry.
func NewOrderReportJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *OrderReportJob {
	return &OrderReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_report_job"),
	}
}

// Start begins the report job to run at the top of every minute.
func (j *OrderReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Order report job failed", "error", err)
			return
		}

		counts := make(map[string]int, 4)
		for _, o := range orders {
			counts[o.Status().String()]++
		}

		j.logger.InfoContext(ctx, "Order registry report",
			"total", len(orders),
			"pending", counts[order.Pending.String()],
			"shipped", counts[order.Shipped.String()],
			"delivered", counts[order.Delivered.String()],
			"cancelled", counts[order.Cancelled.String()],
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order report job stopped")
}
