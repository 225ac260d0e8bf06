package pack

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vikwalker/precheck/internal/extract"
	"github.com/vikwalker/precheck/internal/ingest"
)

// Service turns one batch of uploaded files into the consolidated artifact.
// Each run is independent; nothing is shared or cached between runs.
type Service struct {
	extractor extract.TextExtractor
	logger    *slog.Logger
}

func NewService(extractor extract.TextExtractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{extractor: extractor, logger: logger}
}

// RunResult is the complete outcome of one run.
type RunResult struct {
	RunID       uuid.UUID
	ClientID    string
	Text        string
	OutputName  string
	Documents   []Document       // upload order, before grouping
	Extractions []extract.Result // aligned with Documents
	Warnings    []string
}

// Build processes files strictly in upload order, one extraction at a time,
// then classifies and renders the report. No condition aborts the run: a file
// that yields no text still gets its (empty) block.
func (s *Service) Build(ctx context.Context, files []ingest.File) RunResult {
	runID := uuid.New()
	log := s.logger.With("run_id", runID)

	docs := make([]Document, 0, len(files))
	results := make([]extract.Result, 0, len(files))
	for _, f := range files {
		clientID, docType, label := ingest.ParseName(f.Filename)

		if n, err := ingest.PageCount(f.Data); err != nil {
			log.Warn("pack.probe.unreadable", "file", f.Filename, "error", err)
		} else {
			log.Debug("pack.probe.ok", "file", f.Filename, "pages", n)
		}

		start := time.Now()
		res := s.extractor.Extract(ctx, f.Data)
		log.Info("pack.extract.done",
			"file", f.Filename,
			"doc_type", docType,
			"label", label,
			"method", res.Method,
			"pages", res.Pages,
			"bytes", len(res.Text),
			"duration_ms", time.Since(start).Milliseconds(),
		)

		docs = append(docs, Document{
			Filename: f.Filename,
			ClientID: clientID,
			DocType:  docType,
			Label:    label,
			Text:     res.Text,
		})
		results = append(results, res)
	}

	a := Classify(docs)
	for _, w := range a.Warnings {
		log.Warn("pack.classify.warning", "warning", w)
	}

	return RunResult{
		RunID:       runID,
		ClientID:    a.ClientID,
		Text:        a.Render(),
		OutputName:  OutputFilename(a.ClientID),
		Documents:   docs,
		Extractions: results,
		Warnings:    a.Warnings,
	}
}
