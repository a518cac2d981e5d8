package handlers

import (
	"log"

	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/arjunkoirala/trekmandu/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ListAllBookings(c *fiber.Ctx) error {
	query := database.DB.Preload("Destination").Preload("User").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	var bookings []models.Booking
	query.Find(&bookings)
	return c.JSON(bookings)
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	var req BookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.Preload("Destination").First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	booking.Status = req.Status
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update booking status"})
	}

	broadcastBooking("booking.status_changed", booking, booking.Destination)
	return c.JSON(booking)
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid refunded"`
}

func UpdateBookingPaymentStatus(c *fiber.Ctx) error {
	var req PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var booking models.Booking
	if err := database.DB.Preload("Destination").First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	previous := booking.PaymentStatus
	booking.PaymentStatus = req.PaymentStatus
	if err := database.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update payment status"})
	}

	if previous != "paid" && req.PaymentStatus == "paid" {
		go services.GenerateVoucherForBooking(booking.ID)
		go sendPaymentConfirmedEmail(booking)
	}

	broadcastBooking("booking.payment_changed", booking, booking.Destination)
	return c.JSON(booking)
}

func DeleteBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := database.DB.First(&booking, "id = ?", c.Params("bookingId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Booking not found"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&booking).Error
	})
	if err != nil {
		log.Printf("🔥 Failed to delete booking %s: %v", booking.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete booking"})
	}

	return c.JSON(fiber.Map{"message": "Booking deleted successfully"})
}

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	database.DB.Order("created_at desc").Find(&users)
	return c.JSON(users)
}

type UserActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func SetUserActive(c *fiber.Ctx) error {
	var req UserActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", c.Params("userId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = *req.IsActive
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return c.JSON(user)
}

func GetDashboardStats(c *fiber.Ctx) error {
	var totalBookings, pendingBookings, confirmedBookings, totalUsers, totalDestinations int64
	database.DB.Model(&models.Booking{}).Count(&totalBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", "pending").Count(&pendingBookings)
	database.DB.Model(&models.Booking{}).Where("status = ?", "confirmed").Count(&confirmedBookings)
	database.DB.Model(&models.User{}).Count(&totalUsers)
	database.DB.Model(&models.Destination{}).Count(&totalDestinations)

	var revenue struct {
		Total float64
	}
	database.DB.Model(&models.Booking{}).
		Where("payment_status = ?", "paid").
		Select("coalesce(sum(total_amount), 0) as total").
		Scan(&revenue)

	return c.JSON(fiber.Map{
		"total_bookings":     totalBookings,
		"pending_bookings":   pendingBookings,
		"confirmed_bookings": confirmedBookings,
		"total_users":        totalUsers,
		"total_destinations": totalDestinations,
		"paid_revenue":       revenue.Total,
	})
}
