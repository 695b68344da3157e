package services

import (
	"strings"
)

const (
	resumePlaceholder = "{text}"
	jdPlaceholder     = "{jd}"
)

const resumeAnalysisTemplate = `
As an ATS specialist, I meticulously evaluate resumes in tech, software, and data science for a fierce job market. Provide a percentage match, identify keywords, and offer top-tier guidance.

1. **Contact Information:**
   - Full name
   - Phone number (with country code)
   - Email address
   - LinkedIn profile
   - Location (City, State, ZIP code)

2. **Resume Format:**
   - Compatible formats (.docx, .pdf)
   - Proper naming convention

3. **Keyword Match:**
   - Keywords from the job description present in the resume
   - Important keywords missing from the resume

4. **Experience & Skills:**
   - Relevance of past roles to the job description
   - Quantified achievements and impact
   - Technical skills alignment

5. **Overall Assessment:**
   - Percentage match between the resume and the job description
   - Top recommendations to improve the resume for this role

*Resume:*
{text}

*Job Description:*
{jd}
`

type PromptBuilder struct {
	template string
}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{template: resumeAnalysisTemplate}
}

// BuildResumeAnalysisPrompt fills the ATS template. Substitution is a single
// pass over the template, so placeholder-like text inside the resume or the
// job description is copied verbatim and never expanded.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobDescription string) string {
	r := strings.NewReplacer(
		resumePlaceholder, sanitizePromptInput(resumeText),
		jdPlaceholder, sanitizePromptInput(jobDescription),
	)
	return r.Replace(pb.template)
}

func sanitizePromptInput(s string) string {
	s = strings.ToValidUTF8(s, "�")
	return strings.ReplaceAll(s, "\x00", "")
}
