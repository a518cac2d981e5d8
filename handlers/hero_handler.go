package handlers

import (
	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/gofiber/fiber/v2"
)

type HeroSlideRequest struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle,omitempty"`
	Image    string `json:"image" validate:"required,url"`
	CTALabel string `json:"cta_label,omitempty"`
	CTALink  string `json:"cta_link,omitempty"`
	Position int    `json:"position" validate:"gte=0"`
	Active   bool   `json:"active,omitempty"`
}

func ListActiveHeroSlides(c *fiber.Ctx) error {
	var slides []models.HeroSlide
	database.DB.Where("active = ?", true).Order("position asc").Find(&slides)
	return c.JSON(slides)
}

func ListAllHeroSlides(c *fiber.Ctx) error {
	var slides []models.HeroSlide
	database.DB.Order("position asc").Find(&slides)
	return c.JSON(slides)
}

func CreateHeroSlide(c *fiber.Ctx) error {
	var req HeroSlideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slide := models.HeroSlide{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Image:    req.Image,
		CTALabel: req.CTALabel,
		CTALink:  req.CTALink,
		Position: req.Position,
		Active:   req.Active,
	}
	if err := database.DB.Create(&slide).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create hero slide"})
	}

	return c.Status(fiber.StatusCreated).JSON(slide)
}

func UpdateHeroSlide(c *fiber.Ctx) error {
	var slide models.HeroSlide
	if err := database.DB.First(&slide, "id = ?", c.Params("slideId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hero slide not found"})
	}

	var req HeroSlideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slide.Title = req.Title
	slide.Subtitle = req.Subtitle
	slide.Image = req.Image
	slide.CTALabel = req.CTALabel
	slide.CTALink = req.CTALink
	slide.Position = req.Position
	slide.Active = req.Active

	if err := database.DB.Save(&slide).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update hero slide"})
	}

	return c.JSON(slide)
}

func DeleteHeroSlide(c *fiber.Ctx) error {
	var slide models.HeroSlide
	if err := database.DB.First(&slide, "id = ?", c.Params("slideId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Hero slide not found"})
	}

	if err := database.DB.Delete(&slide).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete hero slide"})
	}

	return c.JSON(fiber.Map{"message": "Hero slide deleted successfully"})
}
