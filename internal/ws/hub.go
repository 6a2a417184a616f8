package ws

import (
	"encoding/json"
	"log/slog"

	"github.com/dkhalil/blurt/internal/models"
)

// Hub fans newly created messages out to every connected feed client.
// Persistence has already happened by the time a message reaches the hub.
type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Messages to fan out to clients.
	broadcast chan models.Message

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan models.Message),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
		case message := <-h.broadcast:
			msgBytes, err := json.Marshal(message)
			if err != nil {
				slog.Error("marshal feed message", "error", err)
				continue
			}
			for client := range h.clients {
				select {
				case client.send <- msgBytes:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// Broadcast queues a message for delivery to all connected clients.
func (h *Hub) Broadcast(message models.Message) {
	h.broadcast <- message
}
