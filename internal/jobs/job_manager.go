// Package jobs provides the scheduled background tasks of the shop.
//
// A single job exists today: PendingOrdersDigestJob, which mails the admin a
// summary of unshipped orders on a configurable cron schedule. Jobs are
// managed through JobManager so the application entry point can start and
// stop all of them in one place.
package jobs

import (
	"fmt"
	"log/slog"

	"solarstore/internal/core/application/notifications"
	"solarstore/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingOrdersDigestJob *PendingOrdersDigestJob
}

// NewJobManager creates a job manager with all required jobs wired up.
func NewJobManager(
	pendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	dispatcher *notifications.Dispatcher,
	digestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingOrdersDigestJob: NewPendingOrdersDigestJob(
			pendingOrdersHandler, dispatcher, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingOrdersDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending orders digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingOrdersDigestJob.Stop()
}
