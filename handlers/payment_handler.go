package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/arjunkoirala/trekmandu/payments"
	"github.com/arjunkoirala/trekmandu/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StripeWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			PaymentIntent string            `json:"payment_intent"`
			PaymentStatus string            `json:"payment_status"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// stripeWebhookSecret is swapped out in tests.
var stripeWebhookSecret = payments.StripeWebhookSecret

// HandleStripeWebhook confirms a payment when Stripe reports the hosted
// checkout session as completed. The delivery must carry a valid
// Stripe-Signature header; the endpoint is public and the session id is
// known to the customer, so an unsigned event proves nothing. Replays of
// an already-processed session are acknowledged and skipped.
func HandleStripeWebhook(c *fiber.Ctx) error {
	secret, err := stripeWebhookSecret()
	if err != nil {
		log.Printf("🔥 Stripe webhook rejected: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Webhook endpoint is not configured"})
	}
	if !payments.VerifyStripeWebhookSignature(c.Body(), c.Get("Stripe-Signature"), secret) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid webhook signature"})
	}

	var payload StripeWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse webhook payload"})
	}

	if payload.Type != "checkout.session.completed" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Event ignored"})
	}

	sessionID := payload.Data.Object.ID
	log.Printf("Received Stripe webhook for session: %s", sessionID)

	var payment models.Payment
	if err := database.DB.Where("provider_session_id = ?", sessionID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment record not found"})
	}

	if payment.Status == "succeeded" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Webhook already processed"})
	}

	txnID := payload.Data.Object.PaymentIntent
	if err := confirmPaymentSuccess(&payment, txnID); err != nil {
		log.Printf("🔥 CRITICAL: Error processing Stripe webhook for session %s: %v", sessionID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Webhook processed successfully"})
}

// CreateRazorpayOrderHandler creates a provider order for an existing
// pending razorpay payment, mirroring the session flow of the default
// provider.
func CreateRazorpayOrderHandler(c *fiber.Ctx) error {
	paymentID := c.Params("paymentId")
	if _, err := uuid.Parse(paymentID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID format"})
	}

	var payment models.Payment
	if err := database.DB.Where("id = ? AND status = ? AND provider = ?", paymentID, "pending", "razorpay").First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pending Razorpay payment not found for this ID"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	order, err := payments.CreateRazorpayOrder(payment.Amount, payment.Currency, payment.ID.String())
	if err != nil {
		log.Printf("🔥 Razorpay CreateOrder API call failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to create Razorpay order"})
	}

	payment.ProviderOrderID = &order.ID
	if err := database.DB.Save(&payment).Error; err != nil {
		log.Printf("🔥 Failed to save ProviderOrderID: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment record"})
	}

	return c.JSON(fiber.Map{"order_id": order.ID, "amount": order.Amount, "currency": order.Currency})
}

func VerifyRazorpayPaymentHandler(c *fiber.Ctx) error {
	type VerifyRequest struct {
		OrderID           string `json:"order_id" validate:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
		Signature         string `json:"signature" validate:"required"`
	}
	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ok, err := payments.VerifyRazorpaySignature(req.OrderID, req.RazorpayPaymentID, req.Signature)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment signature"})
	}

	var payment models.Payment
	if err := database.DB.Where("provider_order_id = ?", req.OrderID).First(&payment).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment record not found for this order"})
	}

	if payment.Status == "succeeded" {
		return c.JSON(fiber.Map{"status": "success", "message": "Payment already confirmed"})
	}

	if err := confirmPaymentSuccess(&payment, req.RazorpayPaymentID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to finalize payment"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Payment verified and booking confirmed"})
}

func confirmPaymentSuccess(payment *models.Payment, providerTxnID string) error {
	var booking models.Booking
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		payment.Status = "succeeded"
		if providerTxnID != "" {
			payment.ProviderTxnID = &providerTxnID
		}
		if err := tx.Save(payment).Error; err != nil {
			return err
		}

		if payment.BookingID == nil {
			return nil
		}
		if err := tx.Preload("Destination").First(&booking, "id = ?", payment.BookingID).Error; err != nil {
			return err
		}
		booking.PaymentStatus = "paid"
		booking.Status = "confirmed"
		return tx.Save(&booking).Error
	})
	if err != nil {
		return err
	}

	if payment.BookingID != nil {
		bookingID := *payment.BookingID
		go services.GenerateVoucherForBooking(bookingID)
		go sendPaymentConfirmedEmail(booking)
		broadcastBooking("booking.paid", booking, booking.Destination)
	}
	return nil
}

func sendPaymentConfirmedEmail(booking models.Booking) {
	emailBody := fmt.Sprintf(
		"<h1>Payment Received</h1><p>Hi %s,</p><p>Your payment for booking <b>%s</b> (%s) was successful. Your trek is confirmed — your voucher will be available in your booking page shortly.</p>",
		booking.TravelerName, booking.Reference, booking.Destination.Name,
	)
	services.EnqueueAndSendAsync(booking.TravelerName, booking.TravelerEmail, "Your Trek is Confirmed!", emailBody)
}
