package handlers

import (
	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/gofiber/fiber/v2"
)

type ActivityRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
}

func ListActivities(c *fiber.Ctx) error {
	var activities []models.Activity
	database.DB.Order("name asc").Find(&activities)
	return c.JSON(activities)
}

func CreateActivity(c *fiber.Ctx) error {
	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	activity := models.Activity{
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}
	if err := database.DB.Create(&activity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create activity"})
	}

	return c.Status(fiber.StatusCreated).JSON(activity)
}

func UpdateActivity(c *fiber.Ctx) error {
	var activity models.Activity
	if err := database.DB.First(&activity, "id = ?", c.Params("activityId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
	}

	var req ActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	activity.Name = req.Name
	activity.Image = req.Image
	activity.Description = req.Description
	activity.BasePrice = req.BasePrice

	if err := database.DB.Save(&activity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update activity"})
	}

	return c.JSON(activity)
}

func DeleteActivity(c *fiber.Ctx) error {
	var activity models.Activity
	if err := database.DB.First(&activity, "id = ?", c.Params("activityId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Activity not found"})
	}

	if err := database.DB.Delete(&activity).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete activity"})
	}

	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}
