package jobs

import (
	"context"
	"log/slog"

	"logitrack/internal/core/application/usecases/queries"
	"logitrack/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const DefaultStatusGaugeSchedule = "*/15 * * * * *"

// StatusCounter is satisfied by queries.CountParcelsByStatusQueryHandler.
type StatusCounter interface {
	Handle(ctx context.Context, query queries.CountParcelsByStatusQuery) (queries.CountParcelsByStatusQueryResponse, error)
}

// ParcelStatusGaugeJob refreshes the logitrack_parcels_by_status gauge from
// the network-wide status counts.
type ParcelStatusGaugeJob struct {
	counter  StatusCounter
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewParcelStatusGaugeJob creates the job. An empty schedule selects
// DefaultStatusGaugeSchedule.
func NewParcelStatusGaugeJob(counter StatusCounter, schedule string, logger *slog.Logger) *ParcelStatusGaugeJob {
	if schedule == "" {
		schedule = DefaultStatusGaugeSchedule
	}
	return &ParcelStatusGaugeJob{
		counter:  counter,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "parcel_status_gauge_job"),
	}
}

// Run reads the counts once. On error the gauge keeps its previous values.
func (j *ParcelStatusGaugeJob) Run(ctx context.Context) {
	counts, err := j.counter.Handle(ctx, queries.NewCountParcelsByStatusQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Parcel status count failed", "error", err)
		return
	}

	for status, count := range counts.ByStatus {
		metrics.ParcelsByStatus.WithLabelValues(status.String()).Set(float64(count))
	}
}

// Start schedules the job. It fails on an invalid cron expression.
func (j *ParcelStatusGaugeJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel status gauge job started", "schedule", j.schedule)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (j *ParcelStatusGaugeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Parcel status gauge job stopped")
}
