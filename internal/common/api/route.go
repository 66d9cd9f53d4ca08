package api

import "github.com/gofiber/fiber/v2"

// Route is implemented by every feature API so the fx "routes" group can
// register them all against the app in one pass.
type Route interface {
	Setup(app *fiber.App)
}
