package routes

import (
	"github.com/arjunkoirala/trekmandu/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/destinations", handlers.ListDestinations)
	api.Get("/destinations/:destinationId", handlers.GetDestination)
	api.Get("/activities", handlers.ListActivities)
	api.Get("/trips", handlers.ListTrips)
	api.Get("/blog", handlers.ListPublishedPosts)
	api.Get("/blog/:slug", handlers.GetPostBySlug)
	api.Get("/hero-slides", handlers.ListActiveHeroSlides)
}
