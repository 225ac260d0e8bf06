package extract

import (
	"context"
	"time"
)

// Extraction methods reported on Result.
const (
	MethodPDFText = "pdf-text"
	MethodPDFOCR  = "pdf-ocr"
	MethodNone    = "none"
)

// TextExtractor turns raw PDF bytes into best-effort plain text.
//
// Extract never fails: a malformed PDF, a missing text layer, or a broken OCR
// toolchain all degrade to an empty Text, with the cause recorded in Warnings.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) Result
}

type Result struct {
	Text     string
	Pages    int
	Method   string // MethodPDFText | MethodPDFOCR | MethodNone
	Duration time.Duration
	Warnings []string
}

// PageOCR is the OCR fallback: rasterize a PDF and recognize each page.
type PageOCR interface {
	ExtractPDF(ctx context.Context, data []byte) (text string, pages int, warnings []string, err error)
}
