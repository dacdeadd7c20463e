package handlers

import (
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdviceHandler struct {
	adviceService *service.AdviceService
	logger        *zap.Logger
}

func NewAdviceHandler(adviceService *service.AdviceService, logger *zap.Logger) *AdviceHandler {
	return &AdviceHandler{
		adviceService: adviceService,
		logger:        logger,
	}
}

// Advise godoc
// @Summary AI spending recommendations
// @Description Summarizes the user's spending and returns recommendation lines from the configured advisor
// @Tags advice
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AdviceResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/advice [get]
func (h *AdviceHandler) Advise(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.adviceService.Advise(c.Context(), userID)
	if err != nil {
		h.logger.Error("Advice generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate advice",
		})
	}

	return c.JSON(resp)
}
