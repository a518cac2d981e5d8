package services

import (
	"log"
	"math"
	"time"

	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/arjunkoirala/trekmandu/notifications"
)

const outboxMaxAttempts = 5

// EnqueueEmail inserts a durable outbox row for the cron dispatcher to
// deliver on its next tick. It only performs the insert, so enqueueing can
// never be slowed down by the mail provider.
func EnqueueEmail(recipientName, recipient, subject, htmlBody string) (*models.EmailOutbox, error) {
	return enqueueEmail(recipientName, recipient, subject, htmlBody, time.Now())
}

func enqueueEmail(recipientName, recipient, subject, htmlBody string, nextAttempt time.Time) (*models.EmailOutbox, error) {
	entry := models.EmailOutbox{
		RecipientName: recipientName,
		Recipient:     recipient,
		Subject:       subject,
		HTMLBody:      htmlBody,
		Status:        "pending",
		NextAttemptAt: &nextAttempt,
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// EnqueueAndSendAsync enqueues the email and fires an immediate delivery
// attempt in the background. The row is scheduled one backoff interval in
// the future, so the cron dispatcher only ever sees it after the inline
// attempt has finished; without that deferral the dispatcher could pick
// the row up while the inline send is still in flight and deliver twice.
func EnqueueAndSendAsync(recipientName, recipient, subject, htmlBody string) {
	entry, err := enqueueEmail(recipientName, recipient, subject, htmlBody, firstRetryAt(time.Now()))
	if err != nil {
		log.Printf("🔥 Failed to enqueue email for %s: %v", recipient, err)
		return
	}
	go attemptDelivery(entry)
}

// firstRetryAt returns the earliest time the cron dispatcher may pick up a
// row whose first delivery attempt runs inline. The deferral must exceed
// the mail client's send timeout so the two senders never overlap.
func firstRetryAt(now time.Time) time.Time {
	return now.Add(NextBackoff(0))
}

// NextBackoff returns the delay before the next delivery attempt, doubling
// per attempt: 2m, 4m, 8m, 16m.
func NextBackoff(attempts int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempts))) * time.Minute
}

func attemptDelivery(entry *models.EmailOutbox) {
	err := sendOutboxEmail(entry.RecipientName, entry.Recipient, entry.Subject, entry.HTMLBody)

	entry.Attempts++
	if err == nil {
		entry.Status = "sent"
		entry.LastError = nil
		entry.NextAttemptAt = nil
	} else {
		msg := err.Error()
		entry.LastError = &msg
		if entry.Attempts >= outboxMaxAttempts {
			entry.Status = "failed"
			entry.NextAttemptAt = nil
			log.Printf("🔥 Giving up on outbox email %s to %s after %d attempts", entry.ID, entry.Recipient, entry.Attempts)
		} else {
			next := time.Now().Add(NextBackoff(entry.Attempts))
			entry.NextAttemptAt = &next
		}
	}

	if dbErr := database.DB.Save(entry).Error; dbErr != nil {
		log.Printf("🔥 Failed to update outbox entry %s: %v", entry.ID, dbErr)
	}
}

// DispatchDueEmails delivers every pending outbox row whose retry time has
// come. Called by the cron job.
func DispatchDueEmails() {
	var due []models.EmailOutbox
	err := database.DB.
		Where("status = ? AND next_attempt_at <= ?", "pending", time.Now()).
		Order("next_attempt_at asc").
		Limit(50).
		Find(&due).Error
	if err != nil {
		log.Printf("Error loading due outbox emails: %v", err)
		return
	}

	for i := range due {
		attemptDelivery(&due[i])
	}
}

// sendOutboxEmail is swapped out in tests.
var sendOutboxEmail = func(toName, toEmail, subject, htmlContent string) error {
	return notifications.SendEmail(toName, toEmail, subject, htmlContent)
}
