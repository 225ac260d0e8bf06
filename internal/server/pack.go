package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vikwalker/precheck/internal/pack"
)

func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	files, warnings, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	run := s.svc.Build(r.Context(), files)
	warnings = append(warnings, run.Warnings...)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.OutputName))
	w.Header().Set("X-Precheck-Client-Id", run.ClientID)
	for _, warn := range warnings {
		w.Header().Add("X-Precheck-Warning", warn)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(run.Text)); err != nil {
		s.logger.Error("pack response write failed", "run_id", run.RunID, "error", err)
	}
}

// previewResponse mirrors the original tool's per-document preview: a header
// line and the first 4000 characters of extracted text.
type previewResponse struct {
	ClientID  string            `json:"client_id"`
	Warnings  []string          `json:"warnings,omitempty"`
	Documents []documentPreview `json:"documents"`
}

type documentPreview struct {
	Header  string `json:"header"`
	DocType string `json:"doc_type"`
	Label   string `json:"label"`
	File    string `json:"file"`
	Preview string `json:"preview"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	files, warnings, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	run := s.svc.Build(r.Context(), files)
	resp := previewResponse{
		ClientID: run.ClientID,
		Warnings: append(warnings, run.Warnings...),
	}
	for _, d := range run.Documents {
		resp.Documents = append(resp.Documents, documentPreview{
			Header:  pack.PreviewHeader(d),
			DocType: d.DocType,
			Label:   d.Label,
			File:    d.Filename,
			Preview: pack.Preview(d),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("preview response write failed", "run_id", run.RunID, "error", err)
	}
}

func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	files, warnings, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	run := s.svc.Build(r.Context(), files)
	xlsx, err := s.manifests.BuildXLSX(run)
	if err != nil {
		s.logger.Error("manifest build failed", "run_id", run.RunID, "error", err)
		http.Error(w, "failed to build manifest", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", run.ClientID+"_precheck_manifest.xlsx"))
	for _, warn := range append(warnings, run.Warnings...) {
		w.Header().Add("X-Precheck-Warning", warn)
	}
	if _, err := w.Write(xlsx); err != nil {
		s.logger.Error("manifest response write failed", "run_id", run.RunID, "error", err)
	}
}
