package services

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput      = errors.New("Missing resume or job description")
	ErrInvalidFileType   = errors.New("Invalid file type. Only PDFs are allowed.")
	ErrNoExtractableText = errors.New("No extractable text found in PDF")
)

// ExtractionError reports a PDF the parser could not read.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to read PDF: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
