package preference

import (
	"go-pm/internal/config"
	"go-pm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type PreferenceApi struct {
	controller *PreferenceController
	config     *config.Config
}

func NewPreferenceApi(controller *PreferenceController, config *config.Config) *PreferenceApi {
	return &PreferenceApi{
		controller: controller,
		config:     config,
	}
}

func (h *PreferenceApi) Setup(app *fiber.App) {
	prefs := app.Group("/api/preferences", middleware.AuthMiddleware(h.config.SkipAuth))

	prefs.Get("/", h.controller.ListPreferences)
	prefs.Get("/:key", h.controller.GetPreference)
	prefs.Put("/:key", h.controller.SetPreference)
}
