package handlers

import (
	"errors"
	"log"
	"math"
	"time"

	config "github.com/arjunkoirala/trekmandu/configs"
	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/arjunkoirala/trekmandu/notifications"
	"github.com/arjunkoirala/trekmandu/payments"
	"github.com/arjunkoirala/trekmandu/services"
	"github.com/arjunkoirala/trekmandu/utils"
	"github.com/arjunkoirala/trekmandu/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// totalTolerance is the rounding slack allowed between a client-supplied
// total and the server-derived one.
const totalTolerance = 0.01

type CreateBookingRequest struct {
	DestinationID   string   `json:"destination_id" validate:"required,uuid"`
	TravelerName    string   `json:"traveler_name" validate:"required,min=2"`
	TravelerEmail   string   `json:"traveler_email" validate:"required,email"`
	TravelerPhone   string   `json:"traveler_phone" validate:"required,min=7"`
	NumberOfPeople  int      `json:"number_of_people" validate:"required,min=1"`
	TrekDate        string   `json:"trek_date" validate:"required"`
	TotalAmount     *float64 `json:"total_amount,omitempty"`
	SpecialRequests *string  `json:"special_requests,omitempty"`
	PaymentProvider string   `json:"payment_provider,omitempty"`
	SuccessPath     string   `json:"success_path,omitempty"`
	CancelPath      string   `json:"cancel_path,omitempty"`
}

func requestUser(c *fiber.Ctx) (uuid.UUID, string, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return uuid.Nil, "", errors.New("missing authenticated identity")
	}
	claims := token.Claims.(jwt.MapClaims)
	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		return uuid.Nil, "", err
	}
	email, _ := claims["email"].(string)
	return userID, email, nil
}

// deriveTotal recomputes the authoritative price from the destination row
// and rejects a client total that disagrees beyond rounding tolerance.
func deriveTotal(destination models.Destination, people int, clientTotal *float64) (float64, error) {
	total := destination.Price * float64(people)
	if clientTotal != nil && math.Abs(*clientTotal-total) > totalTolerance {
		return 0, errors.New("total amount does not match destination price")
	}
	return total, nil
}

func persistBooking(req CreateBookingRequest, userID uuid.UUID, destination models.Destination, total float64, withPayment bool, provider string) (models.Booking, models.Payment, error) {
	var booking models.Booking
	var payment models.Payment

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		reference, err := utils.GenerateBookingReference(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			UserID:          userID,
			DestinationID:   destination.ID,
			Reference:       reference,
			TravelerName:    req.TravelerName,
			TravelerEmail:   req.TravelerEmail,
			TravelerPhone:   req.TravelerPhone,
			NumberOfPeople:  req.NumberOfPeople,
			TrekDate:        req.TrekDate,
			TotalAmount:     total,
			Currency:        destination.Currency,
			SpecialRequests: req.SpecialRequests,
			Status:          "pending",
			PaymentStatus:   "pending",
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		if withPayment {
			payment = models.Payment{
				BookingID: &booking.ID,
				Provider:  provider,
				Amount:    total,
				Currency:  destination.Currency,
				Status:    "pending",
			}
			if err := tx.Create(&payment).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return booking, payment, err
}

func enqueueBookingConfirmation(booking models.Booking, destination models.Destination) {
	manageURL := config.Config("FRONTEND_BASE_URL") + "/bookings/" + booking.ID.String()

	duration := destination.Duration
	subject, html, err := notifications.RenderBookingConfirmation(notifications.BookingEmailData{
		Recipient:       booking.TravelerEmail,
		TravelerName:    booking.TravelerName,
		DestinationName: destination.Name,
		Location:        destination.Location,
		TrekDate:        booking.TrekDate,
		Phone:           booking.TravelerPhone,
		NumberOfPeople:  booking.NumberOfPeople,
		Duration:        duration,
		Difficulty:      destination.Difficulty,
		PricePerPerson:  destination.Price,
		TotalAmount:     booking.TotalAmount,
		Currency:        booking.Currency,
		SpecialRequests: derefOrEmpty(booking.SpecialRequests),
		ManageURL:       manageURL,
		Reference:       booking.Reference,
	})
	if err != nil {
		log.Printf("🔥 Skipping booking confirmation email for %s: %v", booking.Reference, err)
		return
	}

	services.EnqueueAndSendAsync(booking.TravelerName, booking.TravelerEmail, subject, html)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func broadcastBooking(eventType string, booking models.Booking, destination models.Destination) {
	websocket.PushBookingEvent(&websocket.BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID.String(),
		Reference:     booking.Reference,
		Destination:   destination.Name,
		TravelerName:  booking.TravelerName,
		TotalAmount:   booking.TotalAmount,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
	})
}

// CreateBooking persists a reservation without initiating payment.
// Submitting twice creates two bookings; dedupe only happens on the
// checkout path.
func CreateBooking(c *fiber.Ctx) error {
	userID, _, err := requestUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	destinationID, _ := uuid.Parse(req.DestinationID)

	var destination models.Destination
	if err := database.DB.First(&destination, "id = ?", destinationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Destination not found"})
	}

	total, err := deriveTotal(destination, req.NumberOfPeople, req.TotalAmount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	booking, _, err := persistBooking(req, userID, destination, total, false, "")
	if err != nil {
		log.Printf("🔥 Failed to persist booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
	}

	go enqueueBookingConfirmation(booking, destination)
	broadcastBooking("booking.created", booking, destination)

	booking.Destination = destination
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// retargetPayment points a reused pending payment at the provider chosen
// on this checkout attempt, so a retry that switches providers does not
// leave the row marked for the old one. References issued by an earlier
// attempt stay in place; a late completion of the old session must still
// match its record.
func retargetPayment(payment *models.Payment, provider string) {
	payment.Provider = provider
}

// CheckoutBooking runs the full sequence: persist the booking, create a
// hosted checkout session with the payment provider, queue the
// confirmation email and hand the redirect URL back. A payment-session
// failure leaves the persisted booking in place; an email failure never
// blocks the redirect.
func CheckoutBooking(c *fiber.Ctx) error {
	userID, _, err := requestUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	destinationID, _ := uuid.Parse(req.DestinationID)

	provider := req.PaymentProvider
	if provider == "" {
		provider = "stripe"
	}
	if provider != "stripe" && provider != "razorpay" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment provider specified"})
	}

	var destination models.Destination
	if err := database.DB.First(&destination, "id = ?", destinationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Destination not found"})
	}

	total, err := deriveTotal(destination, req.NumberOfPeople, req.TotalAmount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Reuse a recent pending checkout for the same user and destination
	// instead of stacking up duplicates.
	var booking models.Booking
	var payment models.Payment
	reuseCutoff := time.Now().Add(-utils.IdempotencyWindow())
	err = database.DB.
		Where("user_id = ? AND destination_id = ? AND status = ? AND payment_status = ? AND created_at > ?",
			userID, destinationID, "pending", "pending", reuseCutoff).
		Order("created_at desc").
		First(&booking).Error
	if err == nil {
		// Reused bookings from the plain intake endpoint have no payment
		// row yet; attach one so the provider call below can track it.
		if err := database.DB.First(&payment, "booking_id = ?", booking.ID).Error; err != nil {
			payment = models.Payment{
				BookingID: &booking.ID,
				Provider:  provider,
				Amount:    booking.TotalAmount,
				Currency:  booking.Currency,
				Status:    "pending",
			}
			if err := database.DB.Create(&payment).Error; err != nil {
				log.Printf("🔥 Failed to create payment for reused booking: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
			}
		}
		retargetPayment(&payment, provider)
	} else {
		booking, payment, err = persistBooking(req, userID, destination, total, true, provider)
		if err != nil {
			log.Printf("🔥 Failed to persist booking: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create booking"})
		}
		broadcastBooking("booking.created", booking, destination)
	}

	origin := c.Get("Origin")
	if origin == "" {
		origin = config.Config("FRONTEND_BASE_URL")
	}
	successPath := req.SuccessPath
	if successPath == "" {
		successPath = "/booking/success"
	}
	cancelPath := req.CancelPath
	if cancelPath == "" {
		cancelPath = "/booking/cancelled"
	}

	response := fiber.Map{}

	switch provider {
	case "stripe":
		session, err := payments.CreateCheckoutSession(payments.CheckoutSessionParams{
			AmountMajorUnits: booking.TotalAmount,
			Currency:         booking.Currency,
			CustomerEmail:    booking.TravelerEmail,
			ProductName:      destination.Name + " Trek",
			SuccessURL:       origin + successPath,
			CancelURL:        origin + cancelPath,
			IdempotencyKey:   utils.CheckoutIdempotencyKey(userID, destinationID, time.Now()),
			Metadata: map[string]string{
				"booking_id":       booking.ID.String(),
				"destination_id":   destination.ID.String(),
				"destination_name": destination.Name,
				"user_email":       booking.TravelerEmail,
			},
		})
		if err != nil {
			log.Printf("🔥 CRITICAL: CreateCheckoutSession failed: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment could not be initiated: " + err.Error()})
		}

		payment.ProviderSessionID = &session.SessionID
		database.DB.Save(&payment)

		response["checkout_url"] = session.CheckoutURL
		response["session_id"] = session.SessionID
		response["publishable_key"] = session.PublishableKey

	case "razorpay":
		amount := booking.TotalAmount
		currency := booking.Currency
		if currency != "INR" {
			inrAmount, err := services.ConvertUSDToINR(amount)
			if err != nil {
				log.Printf("🔥 Currency conversion failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not perform currency conversion."})
			}
			amount = math.Round(inrAmount)
			currency = "INR"
		}

		order, err := payments.CreateRazorpayOrder(amount, currency, booking.Reference)
		if err != nil {
			log.Printf("🔥 CRITICAL: CreateRazorpayOrder failed: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment could not be initiated: " + err.Error()})
		}

		payment.ProviderOrderID = &order.ID
		payment.Amount = amount
		payment.Currency = currency
		database.DB.Save(&payment)

		response["order_id"] = order.ID
		response["amount"] = order.Amount
		response["currency"] = order.Currency
	}

	go enqueueBookingConfirmation(booking, destination)

	booking.Destination = destination
	response["booking"] = booking
	return c.Status(fiber.StatusCreated).JSON(response)
}

func GetMyBookings(c *fiber.Ctx) error {
	userID, _, err := requestUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var bookings []models.Booking
	database.DB.
		Preload("Destination").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookings)

	return c.JSON(bookings)
}

func GetMyBooking(c *fiber.Ctx) error {
	userID, _, err := requestUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	bookingID := c.Params("bookingId")

	var booking models.Booking
	if err := database.DB.Preload("Destination").First(&booking, "id = ?", bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}
	if booking.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "This is not your booking"})
	}

	return c.JSON(booking)
}
