package jobs

import (
	"context"
	"log/slog"

	"github.com/sheronjay/supply-chain-management-sys/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// hoursResetSchedule fires at midnight every Monday, the start of the
// weekly hour window.
const hoursResetSchedule = "0 0 0 * * MON"

// HoursResetJob zeroes all delivery worker hour counters at the start of
// each week.
type HoursResetJob struct {
	handler commands.ResetWeeklyHoursCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewHoursResetJob creates the weekly hour reset job.
func NewHoursResetJob(handler commands.ResetWeeklyHoursCommandHandler, logger *slog.Logger) *HoursResetJob {
	return &HoursResetJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "hours_reset_job"),
	}
}

// Start schedules the weekly reset.
func (j *HoursResetJob) Start() error {
	_, err := j.cron.AddFunc(hoursResetSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewResetWeeklyHoursCommand()

		affected, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Weekly hours reset failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Weekly hours reset completed", "workers_reset", affected)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hours reset job started (Mondays at 00:00)")
	return nil
}

// Stop stops the job.
func (j *HoursResetJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Hours reset job stopped")
}
