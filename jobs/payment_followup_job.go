package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/arjunkoirala/trekmandu/services"
)

// SendPaymentFollowups nudges travelers whose booking has sat in
// pending/pending for over a day. Each payment gets at most one nudge.
func SendPaymentFollowups() {
	log.Println("Running job: SendPaymentFollowups...")

	cutoff := time.Now().Add(-24 * time.Hour)

	var stalePayments []models.Payment
	err := database.DB.
		Preload("Booking.Destination").
		Where("status = ? AND followup_sent_at IS NULL AND created_at < ?", "pending", cutoff).
		Find(&stalePayments).Error
	if err != nil {
		log.Printf("Error checking for stale pending payments: %v", err)
		return
	}

	for i := range stalePayments {
		payment := &stalePayments[i]
		if payment.BookingID == nil || payment.Booking.PaymentStatus != "pending" {
			continue
		}

		booking := payment.Booking
		emailSubject := "Complete Your Trek Booking"
		emailBody := fmt.Sprintf(
			"<h1>Your Adventure Awaits</h1><p>Hi %s,</p><p>Your reservation <b>%s</b> for %s is still waiting for payment. Complete it to secure your spot.</p>",
			booking.TravelerName, booking.Reference, booking.Destination.Name,
		)
		services.EnqueueAndSendAsync(booking.TravelerName, booking.TravelerEmail, emailSubject, emailBody)

		now := time.Now()
		payment.FollowupSentAt = &now
		if err := database.DB.Save(payment).Error; err != nil {
			log.Printf("Error marking follow-up sent for payment %s: %v", payment.ID, err)
		}
	}
}
