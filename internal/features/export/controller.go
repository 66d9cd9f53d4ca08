package export

import (
	"encoding/json"

	"go-pm/internal/features/entity"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	Service   ExportService
	Validator *entity.Validator
}

func NewExportController(service ExportService, validator *entity.Validator) *ExportController {
	return &ExportController{Service: service, Validator: validator}
}

// CreateExport godoc
func (ctrl *ExportController) CreateExport(c *fiber.Ctx) error {
	body := c.Body()
	if err := ctrl.Validator.ValidateExportRequest(body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var req ExportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	job, err := ctrl.Service.CreateExport(c.UserContext(), req)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"download_url": job.DownloadURL,
		"data":         job,
	})
}

// ListHistory godoc
func (ctrl *ExportController) ListHistory(c *fiber.Ctx) error {
	jobs, err := ctrl.Service.ListHistory(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    jobs,
	})
}

// Download godoc
func (ctrl *ExportController) Download(c *fiber.Ctx) error {
	job, err := ctrl.Service.ResolveDownload(c.UserContext(), c.Params("token"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Export not found or expired",
		})
	}

	return c.Download(job.FilePath, job.Filename)
}
