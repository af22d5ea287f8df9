package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the background jobs. Empty fields
// select the job defaults.
type Schedules struct {
	NotificationRetry string
	StatusGauge       string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	notificationRetryJob *NotificationRetryJob
	statusGaugeJob       *ParcelStatusGaugeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	flusher NotificationFlusher,
	counter StatusCounter,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		notificationRetryJob: NewNotificationRetryJob(flusher, schedules.NotificationRetry, logger),
		statusGaugeJob:       NewParcelStatusGaugeJob(counter, schedules.StatusGauge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification retry job: %w", err)
	}

	if err := jm.statusGaugeJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.notificationRetryJob.Stop()
		return fmt.Errorf("failed to start parcel status gauge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusGaugeJob.Stop()
	jm.notificationRetryJob.Stop()
}
