package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

var errUnsupportedFormat = errors.New("unsupported document format")

// PDFTextExtractor reads PDFs with MuPDF (go-fitz). Plain text uploads are
// passed through unchanged.
type PDFTextExtractor struct {
	logger *zap.Logger
}

func NewPDFTextExtractor(logger *zap.Logger) *PDFTextExtractor {
	return &PDFTextExtractor{logger: logger}
}

func (e *PDFTextExtractor) ExtractText(data []byte, contentType string) (string, error) {
	switch {
	case strings.HasPrefix(contentType, "text/"):
		return sanitizeUTF8(strings.TrimSpace(string(data))), nil
	case contentType == "application/pdf" || isPDF(data):
		return e.extractPDF(data)
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedFormat, contentType)
	}
}

func (e *PDFTextExtractor) extractPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			e.logger.Warn("Failed to extract text from page", zap.Int("page", i+1), zap.Error(err))
			continue
		}
		if pageText != "" {
			b.WriteString(pageText)
			b.WriteString("\n")
		}
	}

	text := sanitizeUTF8(strings.TrimSpace(b.String()))
	if text == "" {
		return "", errors.New("no text found in PDF")
	}

	e.logger.Info("PDF text extracted",
		zap.Int("pages", doc.NumPage()),
		zap.Int("text_length", len(text)),
	)
	return text, nil
}

func isPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
