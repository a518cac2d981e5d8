package handlers

import (
	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TripRequest struct {
	DestinationID string `json:"destination_id" validate:"required,uuid"`
	Title         string `json:"title" validate:"required,min=2"`
	StartDate     string `json:"start_date" validate:"required"`
	Seats         int    `json:"seats" validate:"gte=0"`
	Status        string `json:"status,omitempty" validate:"omitempty,oneof=open full cancelled"`
}

func ListTrips(c *fiber.Ctx) error {
	var trips []models.Trip
	query := database.DB.Preload("Destination").Order("created_at desc")
	if destinationID := c.Query("destination_id"); destinationID != "" {
		query = query.Where("destination_id = ?", destinationID)
	}
	query.Find(&trips)
	return c.JSON(trips)
}

func CreateTrip(c *fiber.Ctx) error {
	var req TripRequest
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

	trip := models.Trip{
		DestinationID: destinationID,
		Title:         req.Title,
		StartDate:     req.StartDate,
		Seats:         req.Seats,
	}
	if req.Status != "" {
		trip.Status = req.Status
	}
	if err := database.DB.Create(&trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create trip"})
	}

	trip.Destination = destination
	return c.Status(fiber.StatusCreated).JSON(trip)
}

func UpdateTrip(c *fiber.Ctx) error {
	var trip models.Trip
	if err := database.DB.First(&trip, "id = ?", c.Params("tripId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var req TripRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trip.Title = req.Title
	trip.StartDate = req.StartDate
	trip.Seats = req.Seats
	if req.Status != "" {
		trip.Status = req.Status
	}

	if err := database.DB.Save(&trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip"})
	}

	return c.JSON(trip)
}

func DeleteTrip(c *fiber.Ctx) error {
	var trip models.Trip
	if err := database.DB.First(&trip, "id = ?", c.Params("tripId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	if err := database.DB.Delete(&trip).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trip"})
	}

	return c.JSON(fiber.Map{"message": "Trip deleted successfully"})
}
