package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// statusForError maps a pipeline error to its HTTP status. Anything not
// recognised is an upstream or extraction failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingInput),
		errors.Is(err, services.ErrInvalidFileType):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNoExtractableText):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func outcomeForStatus(status int) models.AnalysisOutcome {
	switch {
	case status < 400:
		return models.OutcomeSucceeded
	case status < 500:
		return models.OutcomeRejected
	default:
		return models.OutcomeFailed
	}
}
