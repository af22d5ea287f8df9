package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// DefaultNotificationRetrySchedule flushes the retry buffer every 30 seconds.
const DefaultNotificationRetrySchedule = "*/30 * * * * *"

// NotificationFlusher is the retry side of the notification recorder.
type NotificationFlusher interface {
	Flush(ctx context.Context) (int, error)
	Pending() int
}

// NotificationRetryJob re-attempts notifications whose recording failed after
// a transition committed.
type NotificationRetryJob struct {
	flusher  NotificationFlusher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewNotificationRetryJob creates the job. An empty schedule selects
// DefaultNotificationRetrySchedule. Schedules use the six-field cron format.
func NewNotificationRetryJob(flusher NotificationFlusher, schedule string, logger *slog.Logger) *NotificationRetryJob {
	if schedule == "" {
		schedule = DefaultNotificationRetrySchedule
	}
	return &NotificationRetryJob{
		flusher:  flusher,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "notification_retry_job"),
	}
}

// Run performs one flush. It is a no-op when nothing is pending.
func (j *NotificationRetryJob) Run(ctx context.Context) {
	if j.flusher.Pending() == 0 {
		return
	}

	stored, err := j.flusher.Flush(ctx)
	if stored > 0 {
		j.logger.InfoContext(ctx, "Buffered notifications recorded", "count", stored)
	}
	if err != nil {
		j.logger.WarnContext(ctx, "Notification retry incomplete", "error", err)
	}
}

// Start schedules the job. It fails on an invalid cron expression.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running flush to finish.
func (j *NotificationRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}
