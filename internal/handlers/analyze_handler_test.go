package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
	"alfredoptarigan/resume-analyzer/internal/testutil"
)

type upload struct {
	filename string
	data     []byte
}

type testEnv struct {
	app   *fiber.App
	llm   *testutil.MockLLMClient
	audit *testutil.MockAuditRepository
}

func newTestEnv(t *testing.T, rejectEmptyText bool) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	llm := new(testutil.MockLLMClient)
	auditRepo := testutil.NewMockAuditRepository()
	analyzer := services.NewResumeAnalyzer(services.NewPDFParserService(), llm, rejectEmptyText, log)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Use(requestid.New())
	RegisterRoutes(app, NewAnalyzeHandler(analyzer, auditRepo, log), NewHealthHandler(analyzer))

	return &testEnv{app: app, llm: llm, audit: auditRepo}
}

func newAnalyzeRequest(t *testing.T, file *upload, jd *string) *http.Request {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	if file != nil {
		part, err := writer.CreateFormFile("resume", file.filename)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	if jd != nil {
		require.NoError(t, writer.WriteField("jd", *jd))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze-resume", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func doJSON(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var responseBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&responseBody))
	return resp.StatusCode, responseBody
}

func strPtr(s string) *string { return &s }

func TestHandleAnalyzeResume_Success(t *testing.T) {
	env := newTestEnv(t, false)
	env.llm.On("Complete", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "Jane Doe") && strings.Contains(prompt, "Backend engineer")
	})).Return("85% match", nil)

	req := newAnalyzeRequest(t, &upload{"resume.pdf", testutil.BuildPDF("Jane Doe", "Skills")}, strPtr("Backend engineer"))
	status, body := doJSON(t, env.app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]string{"result": "85% match"}, body)
	env.llm.AssertExpectations(t)

	audit, ok := env.audit.Last()
	require.True(t, ok)
	assert.Equal(t, models.OutcomeSucceeded, audit.Outcome)
	assert.Equal(t, http.StatusOK, audit.StatusCode)
	assert.Equal(t, 2, audit.PageCount)
	assert.Equal(t, "mock", audit.Provider)
	assert.NotEmpty(t, audit.RequestID)
	assert.Nil(t, audit.ErrorMessage)
}

func TestHandleAnalyzeResume_ValidationErrors(t *testing.T) {
	validPDF := testutil.BuildPDF("Jane Doe")

	tests := []struct {
		name    string
		file    *upload
		jd      *string
		wantErr string
	}{
		{
			name:    "missing resume",
			jd:      strPtr("Backend engineer"),
			wantErr: "Missing resume or job description",
		},
		{
			name:    "missing jd",
			file:    &upload{"resume.pdf", validPDF},
			wantErr: "Missing resume or job description",
		},
		{
			name:    "empty jd",
			file:    &upload{"resume.pdf", validPDF},
			jd:      strPtr(""),
			wantErr: "Missing resume or job description",
		},
		{
			name:    "docx resume",
			file:    &upload{"resume.docx", []byte("PK")},
			jd:      strPtr("Backend engineer"),
			wantErr: "Invalid file type. Only PDFs are allowed.",
		},
		{
			name:    "no extension",
			file:    &upload{"resume", validPDF},
			jd:      strPtr("Backend engineer"),
			wantErr: "Invalid file type. Only PDFs are allowed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, false)

			status, body := doJSON(t, env.app, newAnalyzeRequest(t, tt.file, tt.jd))

			assert.Equal(t, http.StatusBadRequest, status)
			assert.Equal(t, map[string]string{"error": tt.wantErr}, body)
			env.llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)

			audit, ok := env.audit.Last()
			require.True(t, ok)
			assert.Equal(t, models.OutcomeRejected, audit.Outcome)
		})
	}
}

func TestHandleAnalyzeResume_NotMultipart(t *testing.T) {
	env := newTestEnv(t, false)

	req := httptest.NewRequest(http.MethodPost, "/analyze-resume", strings.NewReader(`{"jd":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	status, body := doJSON(t, env.app, req)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Missing resume or job description", body["error"])
}

func TestHandleAnalyzeResume_UpstreamError(t *testing.T) {
	env := newTestEnv(t, false)
	env.llm.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("Rate limit reached for gpt-3.5-turbo"))

	req := newAnalyzeRequest(t, &upload{"resume.pdf", testutil.BuildPDF("Jane Doe")}, strPtr("Backend engineer"))
	status, body := doJSON(t, env.app, req)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, map[string]string{"error": "Rate limit reached for gpt-3.5-turbo"}, body)

	audit, ok := env.audit.Last()
	require.True(t, ok)
	assert.Equal(t, models.OutcomeFailed, audit.Outcome)
	require.NotNil(t, audit.ErrorMessage)
	assert.Equal(t, "Rate limit reached for gpt-3.5-turbo", *audit.ErrorMessage)
}

func TestHandleAnalyzeResume_RenamedNonPDF(t *testing.T) {
	env := newTestEnv(t, false)

	req := newAnalyzeRequest(t, &upload{"resume.pdf", []byte("just some text pretending")}, strPtr("Backend engineer"))
	status, body := doJSON(t, env.app, req)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.True(t, strings.HasPrefix(body["error"], "failed to read PDF"), body["error"])
	env.llm.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestHandleAnalyzeResume_EmptyTextRejected(t *testing.T) {
	env := newTestEnv(t, true)

	req := newAnalyzeRequest(t, &upload{"scan.pdf", testutil.BuildPDF("")}, strPtr("Backend engineer"))
	status, body := doJSON(t, env.app, req)

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "No extractable text found in PDF", body["error"])
}

func TestHandleAnalyzeResume_AuditFailureDoesNotChangeResponse(t *testing.T) {
	env := newTestEnv(t, false)
	env.audit.Err = errors.New("database is down")
	env.llm.On("Complete", mock.Anything, mock.Anything).Return("70% match", nil)

	req := newAnalyzeRequest(t, &upload{"resume.pdf", testutil.BuildPDF("Jane Doe")}, strPtr("Backend engineer"))
	status, body := doJSON(t, env.app, req)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "70% match", body["result"])
}

func TestHealthAndUnknownRoute(t *testing.T) {
	env := newTestEnv(t, false)

	resp, err := env.app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var health map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "mock", health["provider"])

	resp, err = env.app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var notFound map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notFound))
	assert.Equal(t, float64(http.StatusNotFound), notFound["code"])
}
