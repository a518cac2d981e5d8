package routes

import (
	"github.com/arjunkoirala/trekmandu/middleware"
	ws "github.com/arjunkoirala/trekmandu/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// FeedRoutes exposes the live booking feed consumed by the admin dashboard.
func FeedRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Use("/admin/feed", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	api.Get("/admin/feed", middleware.Protected(), middleware.AdminRequired(), websocket.New(func(conn *websocket.Conn) {
		token := conn.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		userID, err := uuid.Parse(claims["user_id"].(string))
		if err != nil {
			conn.Close()
			return
		}

		client := &ws.Client{UserID: userID, Conn: conn}
		ws.Register <- client
		defer func() {
			ws.Unregister <- client
		}()

		// Feed is push-only; drain reads until the client disconnects.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
