package routes

import (
	"github.com/arjunkoirala/trekmandu/handlers"
	"github.com/arjunkoirala/trekmandu/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/payments/webhook", handlers.HandleStripeWebhook)

	payment := api.Group("/payments", middleware.Protected())
	payment.Post("/razorpay/:paymentId/order", handlers.CreateRazorpayOrderHandler)
	payment.Post("/razorpay/verify", handlers.VerifyRazorpayPaymentHandler)
}
