package jobs

import (
	"context"
	"log/slog"

	"canteen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// DefaultReportSchedule runs the report every 30 seconds.
const DefaultReportSchedule = "*/30 * * * * *"

// PendingOrdersReportJob periodically logs the state of the admin board:
// how many orders wait, the oldest token and the value still to be served.
type PendingOrdersReportJob struct {
	handler  queries.GetPendingOrdersQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPendingOrdersReportJob creates the job. The schedule is a cron
// expression with a seconds field; an empty schedule means DefaultReportSchedule.
func NewPendingOrdersReportJob(
	handler queries.GetPendingOrdersQueryHandler,
	schedule string,
	logger *slog.Logger,
) *PendingOrdersReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}

	return &PendingOrdersReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "pending_orders_report_job"),
	}
}

// Start schedules the report.
func (j *PendingOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *PendingOrdersReportJob) Run(ctx context.Context) {
	pending, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending orders report failed", "error", err)
		return
	}

	if len(pending) == 0 {
		j.logger.InfoContext(ctx, "No pending orders")
		return
	}

	value := decimal.Zero
	items := 0
	for _, row := range pending {
		value = value.Add(row.TotalPrice.Amount())
		items += row.Quantity
	}

	oldest := pending[0]
	j.logger.InfoContext(ctx, "Pending orders report",
		"pending", len(pending),
		"items", items,
		"value", value.StringFixed(2),
		"oldest_token", int64(oldest.Token),
		"oldest_item", oldest.ItemName,
		"oldest_since", oldest.CreatedAt,
	)
}

// Stop stops the report job.
func (j *PendingOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders report job stopped")
}
