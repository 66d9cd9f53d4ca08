package savedview

import (
	"go-pm/internal/config"
	"go-pm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SavedViewApi struct {
	ViewController *SavedViewController
	Config         *config.Config
}

func NewSavedViewApi(viewController *SavedViewController, config *config.Config) *SavedViewApi {
	return &SavedViewApi{
		ViewController: viewController,
		Config:         config,
	}
}

func (api *SavedViewApi) Setup(app *fiber.App) {
	group := app.Group("/api/views", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/", api.ViewController.CreateView)
	group.Get("/", api.ViewController.ListUserViews)
	group.Get("/public", api.ViewController.ListPublicViews)
	group.Get("/:id", api.ViewController.GetView)
	group.Delete("/:id", api.ViewController.DeleteView)
}
