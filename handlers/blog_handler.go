package handlers

import (
	"strings"

	"github.com/arjunkoirala/trekmandu/database"
	"github.com/arjunkoirala/trekmandu/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

type BlogPostRequest struct {
	Title      string `json:"title" validate:"required,min=3"`
	Slug       string `json:"slug,omitempty"`
	CoverImage string `json:"cover_image,omitempty"`
	Excerpt    string `json:"excerpt,omitempty"`
	Body       string `json:"body" validate:"required"`
	Published  bool   `json:"published,omitempty"`
}

func slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, slug)
	return strings.Trim(slug, "-")
}

func ListPublishedPosts(c *fiber.Ctx) error {
	var posts []models.BlogPost
	database.DB.Where("published = ?", true).Order("created_at desc").Find(&posts)
	return c.JSON(posts)
}

func GetPostBySlug(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := database.DB.Where("slug = ? AND published = ?", c.Params("slug"), true).First(&post).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}
	return c.JSON(post)
}

func ListAllPosts(c *fiber.Ctx) error {
	var posts []models.BlogPost
	database.DB.Order("created_at desc").Find(&posts)
	return c.JSON(posts)
}

func CreatePost(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	authorID, _ := uuid.Parse(claims["user_id"].(string))

	var req BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	slug := req.Slug
	if slug == "" {
		slug = slugify(req.Title)
	}

	post := models.BlogPost{
		Title:      req.Title,
		Slug:       slug,
		CoverImage: req.CoverImage,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		AuthorID:   authorID,
		Published:  req.Published,
	}
	if err := database.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create post"})
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func UpdatePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := database.DB.First(&post, "id = ?", c.Params("postId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}

	var req BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	post.Title = req.Title
	if req.Slug != "" {
		post.Slug = req.Slug
	}
	post.CoverImage = req.CoverImage
	post.Excerpt = req.Excerpt
	post.Body = req.Body
	post.Published = req.Published

	if err := database.DB.Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update post"})
	}

	return c.JSON(post)
}

func DeletePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := database.DB.First(&post, "id = ?", c.Params("postId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Post not found"})
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete post"})
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
