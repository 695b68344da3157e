package services

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(r io.ReaderAt, size int64) (string, error)
	ExtractTextWithMetaData(r io.ReaderAt, size int64) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	// Empty is true when no page yielded any non-whitespace text.
	Empty bool
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText implements PDFParserService.
func (p *pdfParserService) ExtractText(r io.ReaderAt, size int64) (string, error) {
	content, err := p.ExtractTextWithMetaData(r, size)
	if err != nil {
		return "", err
	}
	return content.Text, nil
}

// ExtractTextWithMetaData implements PDFParserService. Every page gets a
// "Page n:" header, including pages whose text could not be read.
func (p *pdfParserService) ExtractTextWithMetaData(r io.ReaderAt, size int64) (content *PDFContent, err error) {
	// The parser panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			content = nil
			err = &ExtractionError{Err: fmt.Errorf("%v", rec)}
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()
	empty := true

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		text := pageText(reader.Page(pageIndex))
		if strings.TrimSpace(text) != "" {
			empty = false
		}

		textBuilder.WriteString(fmt.Sprintf("Page %d:\n", pageIndex))
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return &PDFContent{
		Text:      textBuilder.String(),
		PageCount: totalPage,
		Empty:     empty,
	}, nil
}

// ExtractBytes is a convenience wrapper for in-memory uploads.
func ExtractBytes(parser PDFParserService, data []byte) (*PDFContent, error) {
	return parser.ExtractTextWithMetaData(bytes.NewReader(data), int64(len(data)))
}

func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
