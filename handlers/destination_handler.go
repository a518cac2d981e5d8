package handlers

import (
	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/gofiber/fiber/v2"
)

type DestinationRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Location    string  `json:"location" validate:"required"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Duration    string  `json:"duration,omitempty"`
	Difficulty  string  `json:"difficulty" validate:"required,oneof=easy moderate challenging extreme"`
	Tags        string  `json:"tags,omitempty"`
	MaxAltitude *string `json:"max_altitude,omitempty"`
	BestSeason  *string `json:"best_season,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
}

func ListDestinations(c *fiber.Ctx) error {
	query := database.DB.Order("featured desc, created_at desc")
	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var destinations []models.Destination
	query.Find(&destinations)
	return c.JSON(destinations)
}

func GetDestination(c *fiber.Ctx) error {
	var destination models.Destination
	if err := database.DB.First(&destination, "id = ?", c.Params("destinationId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Destination not found"})
	}
	return c.JSON(destination)
}

func CreateDestination(c *fiber.Ctx) error {
	var req DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	destination := models.Destination{
		Name:        req.Name,
		Location:    req.Location,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Currency:    currency,
		Duration:    req.Duration,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		MaxAltitude: req.MaxAltitude,
		BestSeason:  req.BestSeason,
		Featured:    req.Featured,
	}
	if err := database.DB.Create(&destination).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create destination"})
	}

	return c.Status(fiber.StatusCreated).JSON(destination)
}

func UpdateDestination(c *fiber.Ctx) error {
	var destination models.Destination
	if err := database.DB.First(&destination, "id = ?", c.Params("destinationId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Destination not found"})
	}

	var req DestinationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	destination.Name = req.Name
	destination.Location = req.Location
	destination.Image = req.Image
	destination.Description = req.Description
	destination.Price = req.Price
	if req.Currency != "" {
		destination.Currency = req.Currency
	}
	destination.Duration = req.Duration
	destination.Difficulty = req.Difficulty
	destination.Tags = req.Tags
	destination.MaxAltitude = req.MaxAltitude
	destination.BestSeason = req.BestSeason
	destination.Featured = req.Featured

	if err := database.DB.Save(&destination).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update destination"})
	}

	return c.JSON(destination)
}

func DeleteDestination(c *fiber.Ctx) error {
	var destination models.Destination
	if err := database.DB.First(&destination, "id = ?", c.Params("destinationId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Destination not found"})
	}

	if err := database.DB.Delete(&destination).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete destination"})
	}

	return c.JSON(fiber.Map{"message": "Destination deleted successfully"})
}
