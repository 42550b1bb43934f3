package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	dailyDraftsJob *DailyDraftsJob
}

func NewJobManager(dailyDraftsJob *DailyDraftsJob) *JobManager {
	return &JobManager{dailyDraftsJob: dailyDraftsJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.dailyDraftsJob.Start(); err != nil {
		return fmt.Errorf("failed to start daily drafts job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.dailyDraftsJob.Stop()
}
