package notify

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type NotifyApi struct {
	Hub *Hub
}

func NewNotifyApi(hub *Hub) *NotifyApi {
	return &NotifyApi{Hub: hub}
}

func (h *NotifyApi) Setup(app *fiber.App) {
	app.Get("/api/ws/refresh", websocket.New(h.Hub.HandleConn))
}
