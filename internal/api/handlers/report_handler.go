package handlers

import (
	"strconv"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *zap.Logger
}

func NewReportHandler(reportService *service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// Rollup godoc
// @Summary Hierarchical spending rollup
// @Description Nested period totals computed recursively over the user's expenses: year → month → day, or a single ISO week → day
// @Tags reports
// @Produce json
// @Param period query string false "Rollup period: year (default) or week"
// @Param year query int false "Year for period=year, defaults to the current year"
// @Param date query string false "Anchor date (YYYY-MM-DD) for period=week, defaults to today"
// @Security Bearer
// @Success 200 {object} dto.RollupResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/reports/rollup [get]
func (h *ReportHandler) Rollup(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var resp *dto.RollupResponse
	switch c.Query("period", "year") {
	case "year":
		year := time.Now().UTC().Year()
		if raw := c.Query("year"); raw != "" {
			year, err = strconv.Atoi(raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid year",
				})
			}
		}
		resp, err = h.reportService.YearRollup(c.Context(), userID, year)

	case "week":
		anchor := time.Now().UTC()
		if raw := c.Query("date"); raw != "" {
			anchor, err = time.Parse("2006-01-02", raw)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid date, expected YYYY-MM-DD",
				})
			}
		}
		resp, err = h.reportService.WeekRollup(c.Context(), userID, anchor)

	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid period, expected year or week",
		})
	}

	if err != nil {
		h.logger.Error("Rollup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build rollup",
		})
	}

	return c.JSON(resp)
}
