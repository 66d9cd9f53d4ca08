package bulkaction

import (
	"go-pm/internal/config"
	"go-pm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type BulkActionApi struct {
	controller *BulkActionController
	config     *config.Config
}

func NewBulkActionApi(controller *BulkActionController, config *config.Config) *BulkActionApi {
	return &BulkActionApi{
		controller: controller,
		config:     config,
	}
}

func (h *BulkActionApi) Setup(app *fiber.App) {
	bulk := app.Group("/api/bulk", middleware.AuthMiddleware(h.config.SkipAuth))

	bulk.Post("/delete", h.controller.BulkDelete)
}
