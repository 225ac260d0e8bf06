package server

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/vikwalker/precheck/internal/ingest"
)

// readUpload parses the multipart form and collects the "files" parts in
// upload order. Files that are not PDFs by extension are skipped with a
// warning instead of failing the request. Returns ok=false only when the
// request itself is unusable; an error response has been written in that
// case.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (files []ingest.File, warnings []string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		s.logger.Warn("upload parse failed", "error", err)
		http.Error(w, "could not parse multipart upload (too large?)", http.StatusBadRequest)
		return nil, nil, false
	}

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		http.Error(w, "no files uploaded; use multipart field \"files\"", http.StatusBadRequest)
		return nil, nil, false
	}

	for _, part := range parts {
		if !ingest.AllowedExt(filepath.Ext(part.Filename)) {
			warnings = append(warnings, fmt.Sprintf("skipped non-PDF upload: %s", part.Filename))
			continue
		}
		f, err := part.Open()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped unreadable upload %s: %v", part.Filename, err))
			continue
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipped unreadable upload %s: %v", part.Filename, err))
			continue
		}
		files = append(files, ingest.File{Filename: part.Filename, Data: data})
	}

	if len(files) == 0 {
		http.Error(w, "no PDF files in upload", http.StatusBadRequest)
		return nil, nil, false
	}
	return files, warnings, true
}
