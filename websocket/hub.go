package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is a connected admin dashboard session.
type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// BookingEvent is pushed to every connected admin when a booking is
// created or changes state.
type BookingEvent struct {
	Type          string  `json:"type"`
	BookingID     string  `json:"booking_id"`
	Reference     string  `json:"reference"`
	Destination   string  `json:"destination"`
	TravelerName  string  `json:"traveler_name"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *BookingEvent, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin feed client registered: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin feed client unregistered: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var dead []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error pushing booking event to client %s: %v", userID, err)
					conn.Close()
					dead = append(dead, userID)
				}
			}
			clientsMu.RUnlock()
			if len(dead) > 0 {
				clientsMu.Lock()
				for _, userID := range dead {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// PushBookingEvent queues an event without ever blocking the caller.
func PushBookingEvent(event *BookingEvent) {
	select {
	case Broadcast <- event:
	default:
		log.Println("Admin feed broadcast buffer full, dropping event")
	}
}
