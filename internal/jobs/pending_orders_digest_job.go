package jobs

import (
	"context"
	"log/slog"

	"solarstore/internal/core/application/notifications"
	"solarstore/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingOrdersDigestJob periodically mails the shop admin a summary of
// orders still awaiting shipment. The digest is best-effort like all other
// order mail; a failed run is logged and the next run starts fresh.
type PendingOrdersDigestJob struct {
	handler    queries.GetPendingOrdersQueryHandler
	dispatcher *notifications.Dispatcher
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingOrdersDigestJob creates the digest job with the given cron
// schedule, e.g. "0 0 8 * * *" for every morning at eight.
func NewPendingOrdersDigestJob(
	handler queries.GetPendingOrdersQueryHandler,
	dispatcher *notifications.Dispatcher,
	schedule string,
	logger *slog.Logger,
) *PendingOrdersDigestJob {
	return &PendingOrdersDigestJob{
		handler:    handler,
		dispatcher: dispatcher,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_orders_digest_job"),
	}
}

// Start schedules the digest job.
func (j *PendingOrdersDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		pending, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders digest job failed", "error", err)
			return
		}

		entries := make([]notifications.DigestEntry, 0, len(pending))
		for _, row := range pending {
			entries = append(entries, notifications.DigestEntry{
				Number:       row.OrderNumber,
				CustomerName: row.Name,
				TotalPrice:   row.TotalPrice.StringFixed(2),
				PlacedAt:     row.CreatedAt.Format("2006-01-02 15:04"),
			})
		}

		j.dispatcher.PendingDigest(ctx, entries)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the digest job.
func (j *PendingOrdersDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders digest job stopped")
}
