package jobs

import (
	"context"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/logger"
)

// ExpireStaleJoinRequests deletes pending join requests older than the
// configured TTL. Requests the approver never acted on should not linger
// forever.
func (jr *JobRunner) ExpireStaleJoinRequests() {
	jr.runWithRecovery("ExpireStaleJoinRequests", func() {
		ctx := context.Background()

		ttl := time.Duration(jr.config.Scheduler.JoinRequestTTLDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-ttl)

		deleted, err := jr.reqRepo.DeleteStale(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to expire stale join requests", "error", err)
			return
		}
		logger.Info("Expired stale join requests", "count", deleted, "older_than", cutoff.Format(time.RFC3339))
	})
}

// PurgeExpiredSessions removes refresh sessions whose expiry has passed.
func (jr *JobRunner) PurgeExpiredSessions() {
	jr.runWithRecovery("PurgeExpiredSessions", func() {
		ctx := context.Background()

		deleted, err := jr.sessionRepo.DeleteExpired(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to purge expired sessions", "error", err)
			return
		}
		logger.Info("Purged expired sessions", "count", deleted)
	})
}

// SendEventReminders emails every member of a family whose event takes place
// tomorrow.
func (jr *JobRunner) SendEventReminders() {
	jr.runWithRecovery("SendEventReminders", func() {
		ctx := context.Background()

		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(domain.EventDateLayout)
		events, err := jr.eventRepo.ListOnDate(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list events for reminders", "date", tomorrow, "error", err)
			return
		}

		sent := 0
		for _, event := range events {
			emails, err := jr.familyRepo.ListMemberEmails(ctx, event.FamilyID)
			if err != nil {
				logger.Error("Failed to list member emails",
					"event_id", event.ID,
					"family_id", event.FamilyID,
					"error", err)
				continue
			}

			for _, email := range emails {
				if err := jr.email.SendEventReminder(ctx, email, event.Name, event.Date, event.Type); err != nil {
					logger.Error("Failed to send event reminder",
						"event_id", event.ID,
						"email", email,
						"error", err)
					continue
				}
				sent++
			}
		}
		logger.Info("Sent event reminders", "date", tomorrow, "events", len(events), "emails", sent)
	})
}
