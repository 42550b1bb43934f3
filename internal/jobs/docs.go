// Package jobs provides scheduled background tasks of the order desk.
//
// Jobs are cron based (github.com/robfig/cron/v3, six fields with seconds).
//
// # Available Jobs
//
// DailyDraftsJob runs GenerateDailyDrafts over the stored clients and
// products, by default at 06:00. Generation is idempotent within a day, so a
// restart or a manual POST /drafts/generate never duplicates the batch.
//
// # Usage
//
//	job := jobs.NewDailyDraftsJob(generateDraftsHandler, cfg.DraftsSchedule, location, cronMetrics, log)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged at error level and counted in
// orderdesk_job_failure_total; the next scheduled run tries again.
package jobs
