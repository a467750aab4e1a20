package scheduler

import (
	"time"

	"souvenaria-backend/internal/jobs"
	"souvenaria-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC timezone with seconds precision.
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.ExpireStaleJoinRequests, s.jobs.ExpireStaleJoinRequests)
	if err != nil {
		logger.Error("Failed to register ExpireStaleJoinRequests job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.PurgeExpiredSessions, s.jobs.PurgeExpiredSessions)
	if err != nil {
		logger.Error("Failed to register PurgeExpiredSessions job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SendEventReminders, s.jobs.SendEventReminders)
	if err != nil {
		logger.Error("Failed to register SendEventReminders job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler.
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// IsRunning returns true if any jobs are registered with the scheduler.
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
