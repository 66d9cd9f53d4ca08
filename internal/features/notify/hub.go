package notify

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

// RefreshEvent tells connected clients that records of a kind changed and
// their current view should refetch.
type RefreshEvent struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// Hub fans refresh events out to every connected websocket client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
		logger:  logger,
	}
}

func (h *Hub) register(c *websocket.Conn) {
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Broadcast sends a refresh event to all clients. Write failures drop the
// client; it reconnects on its own.
func (h *Hub) Broadcast(kind, reason string) {
	payload, err := json.Marshal(RefreshEvent{Kind: kind, Reason: reason})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Debug("dropping websocket client", zap.Error(err))
			c.Close()
			delete(h.clients, c)
		}
	}
}

// HandleConn keeps one client connection open until it disconnects. Incoming
// messages are ignored; the channel is push-only.
func (h *Hub) HandleConn(c *websocket.Conn) {
	h.register(c)
	defer func() {
		h.unregister(c)
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
