package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"
)

// TextLayerMinChars separates "a few stray characters from a broken extractor"
// from "a real paragraph of text". A trimmed text layer longer than this is
// trusted and OCR is skipped.
const TextLayerMinChars = 50

// Extractor implements the two-stage fallback: embedded text layer first,
// OCR only when the text layer is missing or too short to trust.
type Extractor struct {
	ocr    PageOCR
	logger *slog.Logger

	// textLayer is swappable in tests; defaults to readTextLayer.
	textLayer func(data []byte) (string, int, error)
}

func NewExtractor(ocr PageOCR, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{ocr: ocr, logger: logger, textLayer: readTextLayer}
}

// Extract applies the fallback policy:
//
//  1. Read the embedded text layer; any failure counts as "no text layer".
//  2. If the trimmed text layer exceeds TextLayerMinChars, return it as-is.
//  3. Otherwise OCR every page. If OCR fails or recognizes nothing, return
//     whatever the text layer produced (possibly empty).
//
// Extract never returns an error; stage failures surface as Warnings.
func (e *Extractor) Extract(ctx context.Context, data []byte) Result {
	start := time.Now()
	var warnings []string

	layerText, layerPages, err := e.textLayer(data)
	if err != nil {
		e.logger.Debug("text layer unavailable", "error", err)
		warnings = append(warnings, err.Error())
		layerText, layerPages = "", 0
	}
	layerText = strings.TrimSpace(layerText)

	// threshold counts characters, not bytes
	if utf8.RuneCountInString(layerText) > TextLayerMinChars {
		return Result{
			Text:     layerText,
			Pages:    layerPages,
			Method:   MethodPDFText,
			Duration: time.Since(start),
			Warnings: warnings,
		}
	}

	ocrText, ocrPages, ocrWarns, err := e.ocr.ExtractPDF(ctx, data)
	warnings = append(warnings, ocrWarns...)
	if err != nil {
		e.logger.Warn("ocr fallback failed, keeping text layer output", "error", err)
		warnings = append(warnings, err.Error())
		return e.layerResult(layerText, layerPages, start, warnings)
	}
	if strings.TrimSpace(ocrText) == "" {
		e.logger.Warn("ocr recognized no text, keeping text layer output")
		return e.layerResult(layerText, layerPages, start, warnings)
	}

	return Result{
		Text:     ocrText,
		Pages:    ocrPages,
		Method:   MethodPDFOCR,
		Duration: time.Since(start),
		Warnings: warnings,
	}
}

// layerResult wraps the stage-1 output when the OCR fallback produced
// nothing usable.
func (e *Extractor) layerResult(layerText string, layerPages int, start time.Time, warnings []string) Result {
	method := MethodPDFText
	if layerText == "" {
		method = MethodNone
	}
	return Result{
		Text:     layerText,
		Pages:    layerPages,
		Method:   method,
		Duration: time.Since(start),
		Warnings: warnings,
	}
}
