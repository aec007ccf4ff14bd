package jobs

import (
	"fmt"
	"log/slog"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	hoursResetJob *HoursResetJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	resetWeeklyHoursHandler commands.ResetWeeklyHoursCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		hoursResetJob: NewHoursResetJob(resetWeeklyHoursHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.hoursResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start hours reset job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.hoursResetJob.Stop()
}
