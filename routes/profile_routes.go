package routes

import (
	"github.com/arjunkoirala/trekmandu/handlers"
	"github.com/arjunkoirala/trekmandu/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile", middleware.Protected())
	profile.Get("", handlers.GetMyProfile)
	profile.Put("", handlers.UpdateMyProfile)
}
