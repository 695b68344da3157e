package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler, healthHandler *HealthHandler) {
	app.Post("/analyze-resume", analyzeHandler.HandleAnalyzeResume)

	api := app.Group("/api/v1")
	api.Get("/health", healthHandler.HandleHealth)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /analyze-resume",
				"GET /api/v1/health",
			},
		})
	})
}

// ErrorHandler renders errors that escape a handler, such as an oversized
// body or an unknown route.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
