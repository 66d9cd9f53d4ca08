package warehouse

import (
	"strconv"

	"go-pm/internal/features/entity"

	"github.com/gofiber/fiber/v2"
)

type WarehouseController struct {
	Service WarehouseService
}

func NewWarehouseController(service WarehouseService) *WarehouseController {
	return &WarehouseController{Service: service}
}

// SyncKind godoc
func (ctrl *WarehouseController) SyncKind(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	syncLog, err := ctrl.Service.SyncKind(c.UserContext(), kind)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(syncLog)
}

// SyncAll godoc
func (ctrl *WarehouseController) SyncAll(c *fiber.Ctx) error {
	logs, err := ctrl.Service.SyncAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
			"logs":  logs,
		})
	}
	return c.JSON(fiber.Map{"logs": logs})
}

// ListLogs godoc
func (ctrl *WarehouseController) ListLogs(c *fiber.Ctx) error {
	limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

	logs, err := ctrl.Service.ListLogs(c.UserContext(), c.Query("type"), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(logs)
}
