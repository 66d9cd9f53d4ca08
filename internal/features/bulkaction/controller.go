package bulkaction

import (
	"encoding/json"

	"go-pm/internal/features/entity"

	"github.com/gofiber/fiber/v2"
)

type BulkDeleteRequest struct {
	IDs  []string `json:"ids"`
	Type string   `json:"type"`
}

type BulkActionController struct {
	Service   BulkActionService
	Validator *entity.Validator
}

func NewBulkActionController(service BulkActionService, validator *entity.Validator) *BulkActionController {
	return &BulkActionController{Service: service, Validator: validator}
}

// BulkDelete godoc
func (ctrl *BulkActionController) BulkDelete(c *fiber.Ctx) error {
	body := c.Body()
	if err := ctrl.Validator.ValidateBulkDelete(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req BulkDeleteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	kind, err := entity.ParseKind(req.Type)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	deleted, err := ctrl.Service.DeleteRecords(c.UserContext(), kind, req.IDs)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"deleted": deleted,
	})
}
