package export

import (
	"go-pm/internal/config"
	"go-pm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	controller *ExportController
	config     *config.Config
}

func NewExportApi(controller *ExportController, config *config.Config) *ExportApi {
	return &ExportApi{
		controller: controller,
		config:     config,
	}
}

func (h *ExportApi) Setup(app *fiber.App) {
	exports := app.Group("/api/exports", middleware.AuthMiddleware(h.config.SkipAuth))

	exports.Post("/", h.controller.CreateExport)
	exports.Get("/", h.controller.ListHistory)
	exports.Get("/:token/download", h.controller.Download)
}
