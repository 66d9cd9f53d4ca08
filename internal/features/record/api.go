package record

import (
	"go-pm/internal/config"
	"go-pm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type RecordApi struct {
	recordController *RecordController
	config           *config.Config
}

func NewRecordApi(
	recordController *RecordController,
	config *config.Config,
) *RecordApi {
	return &RecordApi{
		recordController: recordController,
		config:           config,
	}
}

// Setup registers the generic data view routes
func (h *RecordApi) Setup(app *fiber.App) {
	data := app.Group("/api/data", middleware.AuthMiddleware(h.config.SkipAuth))

	data.Get("/:type", h.recordController.ListRecords)
	data.Get("/:type/meta", h.recordController.GetViewMeta)
	data.Post("/:type", h.recordController.CreateRecord)
	data.Get("/:type/:id", h.recordController.GetRecord)
	data.Put("/:type/:id", h.recordController.UpdateRecord)
	data.Delete("/:type/:id", h.recordController.DeleteRecord)
}
