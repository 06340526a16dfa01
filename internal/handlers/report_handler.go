package handlers

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"kasir/internal/export"
	"kasir/internal/models"
	"kasir/internal/services"
)

// ReportHandler serves the sales history and its CSV exports.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the sales routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	salesRoutes := router.Group("/sales")
	salesRoutes.Get("/history", h.HandleSalesHistory)
	salesRoutes.Post("/export/summary", h.HandleExportSummary)
	salesRoutes.Post("/export/details", h.HandleExportDetails)
}

// ExportRequest is the sales history as the browser currently shows it.
type ExportRequest struct {
	SalesData []models.SalesOrder `json:"salesData"`
}

// HandleSalesHistory lists completed orders with their line items.
func (h *ReportHandler) HandleSalesHistory(c *fiber.Ctx) error {
	history, err := h.service.SalesHistory(c.UserContext())
	if err != nil {
		return respondError(c, "fetch sales data", err)
	}

	message := "Sales data retrieved successfully."
	if len(history) == 0 {
		message = "No completed sales found."
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    history,
	})
}

// HandleExportSummary downloads one CSV row per order.
func (h *ReportHandler) HandleExportSummary(c *fiber.Ctx) error {
	return h.exportCSV(c, export.SummaryFilename, export.WriteSummary)
}

// HandleExportDetails downloads one CSV row per order line.
func (h *ReportHandler) HandleExportDetails(c *fiber.Ctx) error {
	return h.exportCSV(c, export.DetailsFilename, export.WriteDetails)
}

func (h *ReportHandler) exportCSV(c *fiber.Ctx, filename string, write func(io.Writer, []models.SalesOrder) error) error {
	var req ExportRequest
	if err := c.BodyParser(&req); err != nil || req.SalesData == nil {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid or missing sales data received.")
	}

	var buf bytes.Buffer
	if err := write(&buf, req.SalesData); err != nil {
		return respondError(c, "export sales data", err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Set(fiber.HeaderCacheControl, "no-cache")
	return c.Send(buf.Bytes())
}
