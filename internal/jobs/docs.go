// Package jobs provides scheduled background tasks for the parcel service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules (six fields).
//
// # Available Jobs
//
// 1. NotificationRetryJob - flushes notifications that failed to record after a
// committed transition (default every 30 seconds)
// 2. ParcelStatusGaugeJob - refreshes the parcels-by-status gauge (default every
// 15 seconds)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(recorder, countHandler, jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs never panic the scheduler. Failures are logged and the next tick
// tries again. A failed start stops any job already running.
package jobs
