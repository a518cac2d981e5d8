package routes

import (
	"github.com/arjunkoirala/trekmandu/handlers"
	"github.com/arjunkoirala/trekmandu/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/stats", handlers.GetDashboardStats)

	admin.Get("/bookings", handlers.ListAllBookings)
	admin.Patch("/bookings/:bookingId/status", handlers.UpdateBookingStatus)
	admin.Patch("/bookings/:bookingId/payment-status", handlers.UpdateBookingPaymentStatus)
	admin.Delete("/bookings/:bookingId", handlers.DeleteBooking)

	admin.Get("/users", handlers.ListUsers)
	admin.Patch("/users/:userId/active", handlers.SetUserActive)

	admin.Post("/destinations", handlers.CreateDestination)
	admin.Put("/destinations/:destinationId", handlers.UpdateDestination)
	admin.Delete("/destinations/:destinationId", handlers.DeleteDestination)

	admin.Post("/activities", handlers.CreateActivity)
	admin.Put("/activities/:activityId", handlers.UpdateActivity)
	admin.Delete("/activities/:activityId", handlers.DeleteActivity)

	admin.Post("/trips", handlers.CreateTrip)
	admin.Put("/trips/:tripId", handlers.UpdateTrip)
	admin.Delete("/trips/:tripId", handlers.DeleteTrip)

	admin.Get("/blog", handlers.ListAllPosts)
	admin.Post("/blog", handlers.CreatePost)
	admin.Put("/blog/:postId", handlers.UpdatePost)
	admin.Delete("/blog/:postId", handlers.DeletePost)

	admin.Get("/hero-slides", handlers.ListAllHeroSlides)
	admin.Post("/hero-slides", handlers.CreateHeroSlide)
	admin.Put("/hero-slides/:slideId", handlers.UpdateHeroSlide)
	admin.Delete("/hero-slides/:slideId", handlers.DeleteHeroSlide)
}
