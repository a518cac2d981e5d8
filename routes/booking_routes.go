package routes

import (
	"github.com/arjunkoirala/trekmandu/handlers"
	"github.com/arjunkoirala/trekmandu/middleware"
	"github.com/gofiber/fiber/v2"
)

func BookingRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	booking := api.Group("/bookings", middleware.Protected())
	booking.Get("/me", handlers.GetMyBookings)
	booking.Post("", handlers.CreateBooking)
	booking.Post("/checkout", handlers.CheckoutBooking)
	booking.Get("/:bookingId", handlers.GetMyBooking)
}
