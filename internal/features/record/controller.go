package record

import (
	"strconv"

	"go-pm/internal/features/entity"

	"github.com/gofiber/fiber/v2"
)

type RecordController struct {
	Service RecordService
	Catalog *entity.Catalog
}

func NewRecordController(service RecordService, catalog *entity.Catalog) *RecordController {
	return &RecordController{Service: service, Catalog: catalog}
}

// queryInt64 reads a numeric query param, falling back on absent or garbage
// input.
func queryInt64(c *fiber.Ctx, key string, def int64) int64 {
	n, err := strconv.ParseInt(c.Query(key), 10, 64)
	if err != nil {
		return def
	}
	return n
}

// reserved query params of list endpoints; everything else is a filter.
var reservedListParams = map[string]bool{
	"page":       true,
	"limit":      true,
	"sort_by":    true,
	"sort_order": true,
}

// ListRecords godoc
func (ctrl *RecordController) ListRecords(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 25)
	sortBy := c.Query("sort_by")
	sortOrder := c.Query("sort_order", "desc")

	filters := make(map[string]string)
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		k := string(key)
		if !reservedListParams[k] {
			filters[k] = string(value)
		}
	})

	result, err := ctrl.Service.ListRecords(c.UserContext(), kind, filters, page, limit, sortBy, sortOrder)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// GetViewMeta returns the column catalog and filter controls for a kind.
func (ctrl *RecordController) GetViewMeta(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"columns": ctrl.Catalog.ExportColumns(kind),
		"filters": ctrl.Catalog.FilterDescriptors(kind),
	})
}

// CreateRecord godoc
func (ctrl *RecordController) CreateRecord(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	id, err := ctrl.Service.CreateRecord(c.UserContext(), kind, data)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id": id,
	})
}

// GetRecord godoc
func (ctrl *RecordController) GetRecord(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	record, err := ctrl.Service.GetRecord(c.UserContext(), kind, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Record not found",
		})
	}

	return c.JSON(record)
}

// UpdateRecord godoc
func (ctrl *RecordController) UpdateRecord(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var data map[string]interface{}
	if err := c.BodyParser(&data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := ctrl.Service.UpdateRecord(c.UserContext(), kind, c.Params("id"), data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Record updated successfully",
	})
}

// DeleteRecord godoc
func (ctrl *RecordController) DeleteRecord(c *fiber.Ctx) error {
	kind, err := entity.ParseKind(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := ctrl.Service.DeleteRecord(c.UserContext(), kind, c.Params("id")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Record deleted successfully",
	})
}
