package warehouse

import (
	"go-pm/internal/config"
	"go-pm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type WarehouseApi struct {
	controller *WarehouseController
	config     *config.Config
}

func NewWarehouseApi(controller *WarehouseController, config *config.Config) *WarehouseApi {
	return &WarehouseApi{
		controller: controller,
		config:     config,
	}
}

func (h *WarehouseApi) Setup(app *fiber.App) {
	warehouse := app.Group("/api/warehouse", middleware.AuthMiddleware(h.config.SkipAuth))

	warehouse.Post("/sync", h.controller.SyncAll)
	warehouse.Post("/sync/:type", h.controller.SyncKind)
	warehouse.Get("/logs", h.controller.ListLogs)
}
