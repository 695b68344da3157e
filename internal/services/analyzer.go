package services

import (
	"context"

	"github.com/sirupsen/logrus"
)

// AnalysisRequest is one upload plus its job description. It lives for a
// single request.
type AnalysisRequest struct {
	Filename       string
	Resume         []byte
	JobDescription string
}

type AnalysisResult struct {
	Analysis  string
	PageCount int
}

type ResumeAnalyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
	Provider() string
	Model() string
}

type resumeAnalyzer struct {
	pdfParser       PDFParserService
	promptBuilder   *PromptBuilder
	llm             LLMClient
	rejectEmptyText bool
	log             *logrus.Logger
}

func NewResumeAnalyzer(
	pdfParser PDFParserService,
	llm LLMClient,
	rejectEmptyText bool,
	log *logrus.Logger,
) ResumeAnalyzer {
	return &resumeAnalyzer{
		pdfParser:       pdfParser,
		promptBuilder:   NewPromptBuilder(),
		llm:             llm,
		rejectEmptyText: rejectEmptyText,
		log:             log,
	}
}

// Analyze runs validation, extraction, composition and the LLM call in order.
// The first failing stage ends the run; LLM errors come back unwrapped.
func (a *resumeAnalyzer) Analyze(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	if err := ValidateUpload(req.Filename, req.Resume != nil, req.JobDescription); err != nil {
		return nil, err
	}

	content, err := ExtractBytes(a.pdfParser, req.Resume)
	if err != nil {
		return nil, err
	}

	fields := logrus.Fields{
		"filename":   req.Filename,
		"page_count": content.PageCount,
		"text_chars": len(content.Text),
	}

	if content.Empty {
		if a.rejectEmptyText {
			a.log.WithFields(fields).Warn("Rejecting PDF with no extractable text")
			return nil, ErrNoExtractableText
		}
		a.log.WithFields(fields).Warn("PDF has no extractable text, forwarding as-is")
	}

	prompt := a.promptBuilder.BuildResumeAnalysisPrompt(content.Text, req.JobDescription)

	a.log.WithFields(fields).WithFields(logrus.Fields{
		"provider":      a.llm.Provider(),
		"model":         a.llm.Model(),
		"prompt_length": len(prompt),
	}).Debug("Sending resume analysis prompt")

	analysis, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &AnalysisResult{
		Analysis:  analysis,
		PageCount: content.PageCount,
	}, nil
}

func (a *resumeAnalyzer) Provider() string { return a.llm.Provider() }

func (a *resumeAnalyzer) Model() string { return a.llm.Model() }
