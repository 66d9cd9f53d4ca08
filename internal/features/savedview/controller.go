package savedview

import (
	"encoding/json"

	"go-pm/internal/features/entity"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedViewController struct {
	Service   SavedViewService
	Validator *entity.Validator
}

func NewSavedViewController(service SavedViewService, validator *entity.Validator) *SavedViewController {
	return &SavedViewController{Service: service, Validator: validator}
}

func (ctrl *SavedViewController) CreateView(c *fiber.Ctx) error {
	body := c.Body()
	if err := ctrl.Validator.ValidateSaveView(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var view SavedView
	if err := json.Unmarshal(body, &view); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr)
	view.UserID = userID

	if err := ctrl.Service.SaveView(c.UserContext(), &view); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"view":    view,
	})
}

func (ctrl *SavedViewController) GetView(c *fiber.Ctx) error {
	view, err := ctrl.Service.GetView(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "View not found"})
	}
	return c.JSON(view)
}

func (ctrl *SavedViewController) DeleteView(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr)

	if err := ctrl.Service.DeleteView(c.UserContext(), c.Params("id"), userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *SavedViewController) ListUserViews(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	userID, _ := primitive.ObjectIDFromHex(userIDStr)

	views, err := ctrl.Service.ListUserViews(c.UserContext(), userID, c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(views)
}

func (ctrl *SavedViewController) ListPublicViews(c *fiber.Ctx) error {
	views, err := ctrl.Service.ListPublicViews(c.UserContext(), c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(views)
}
