package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/services"
)

type HealthHandler struct {
	analyzer services.ResumeAnalyzer
}

func NewHealthHandler(analyzer services.ResumeAnalyzer) *HealthHandler {
	return &HealthHandler{analyzer: analyzer}
}

// HandleHealth handles GET /api/v1/health. It does not call the LLM.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"provider": h.analyzer.Provider(),
		"model":    h.analyzer.Model(),
		"time":     time.Now(),
	})
}
