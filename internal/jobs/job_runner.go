package jobs

import (
	"souvenaria-backend/internal/config"
	"souvenaria-backend/internal/logger"
	"souvenaria-backend/internal/repository"
	"souvenaria-backend/internal/service"
)

// JobRunner coordinates all scheduled maintenance jobs.
type JobRunner struct {
	reqRepo     repository.JoinRequestRepository
	sessionRepo repository.SessionRepository
	eventRepo   repository.EventRepository
	familyRepo  repository.FamilyRepository
	email       service.EmailService
	config      *config.Config
}

func NewJobRunner(
	reqRepo repository.JoinRequestRepository,
	sessionRepo repository.SessionRepository,
	eventRepo repository.EventRepository,
	familyRepo repository.FamilyRepository,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		reqRepo:     reqRepo,
		sessionRepo: sessionRepo,
		eventRepo:   eventRepo,
		familyRepo:  familyRepo,
		email:       email,
		config:      cfg,
	}
}

// Config exposes the loaded configuration so the scheduler can read the
// cron expressions.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs every nightly job once, for manual execution.
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireStaleJoinRequests()
	jr.PurgeExpiredSessions()
	jr.SendEventReminders()
}
