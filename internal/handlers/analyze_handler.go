package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer  services.ResumeAnalyzer
	auditRepo repositories.AuditRepository
	log       *logrus.Logger
}

func NewAnalyzeHandler(
	analyzer services.ResumeAnalyzer,
	auditRepo repositories.AuditRepository,
	log *logrus.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:  analyzer,
		auditRepo: auditRepo,
		log:       log,
	}
}

// HandleAnalyzeResume handles POST /analyze-resume
func (h *AnalyzeHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	start := time.Now()
	audit := &models.AnalysisAudit{
		RequestID: requestID(c),
		Provider:  h.analyzer.Provider(),
		Model:     h.analyzer.Model(),
	}

	fileHeader, err := c.FormFile("resume")
	hasFile := err == nil && fileHeader != nil
	jobDescription := c.FormValue("jd")
	audit.JDLength = len(jobDescription)

	filename := ""
	if hasFile {
		filename = fileHeader.Filename
		audit.FileSize = fileHeader.Size
	}

	if err := services.ValidateUpload(filename, hasFile, jobDescription); err != nil {
		return h.fail(c, audit, start, err)
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		return h.fail(c, audit, start, err)
	}

	result, err := h.analyzer.Analyze(c.UserContext(), services.AnalysisRequest{
		Filename:       filename,
		Resume:         data,
		JobDescription: jobDescription,
	})
	if err != nil {
		return h.fail(c, audit, start, err)
	}

	audit.PageCount = result.PageCount
	h.record(c, audit, start, fiber.StatusOK, nil)

	h.log.WithFields(logrus.Fields{
		"request_id": audit.RequestID,
		"page_count": result.PageCount,
		"latency":    time.Since(start),
	}).Info("✅ Resume analyzed")

	return c.Status(fiber.StatusOK).JSON(models.AnalyzeResponse{
		Result: result.Analysis,
	})
}

func (h *AnalyzeHandler) fail(c *fiber.Ctx, audit *models.AnalysisAudit, start time.Time, err error) error {
	status := statusForError(err)

	entry := h.log.WithFields(logrus.Fields{
		"request_id": audit.RequestID,
		"status":     status,
		"error":      err.Error(),
	})
	if status >= fiber.StatusInternalServerError {
		entry.Error("❌ Resume analysis failed")
	} else {
		entry.Warn("⚠️ Resume analysis rejected")
	}

	h.record(c, audit, start, status, err)

	return c.Status(status).JSON(models.ErrorResponse{
		Error: err.Error(),
	})
}

// record never affects the response; a failed write is only logged.
func (h *AnalyzeHandler) record(c *fiber.Ctx, audit *models.AnalysisAudit, start time.Time, status int, err error) {
	audit.StatusCode = status
	audit.Outcome = outcomeForStatus(status)
	audit.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		msg := err.Error()
		audit.ErrorMessage = &msg
	}

	if err := h.auditRepo.Create(c.UserContext(), audit); err != nil {
		h.log.WithFields(logrus.Fields{
			"request_id": audit.RequestID,
			"error":      err.Error(),
		}).Warn("⚠️ Failed to record analysis audit")
	}
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return data, nil
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
