package server

import (
	"log/slog"
	"net/http"

	"github.com/vikwalker/precheck/internal/manifest"
	"github.com/vikwalker/precheck/internal/pack"
)

// Server exposes the pack builder over HTTP. Every request is an isolated
// run: files in, one artifact out, nothing cached in between.
type Server struct {
	svc       *pack.Service
	manifests *manifest.Service
	logger    *slog.Logger
	maxUpload int64
}

func New(svc *pack.Service, manifests *manifest.Service, maxUpload int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUpload <= 0 {
		maxUpload = 50 << 20
	}
	return &Server{svc: svc, manifests: manifests, logger: logger, maxUpload: maxUpload}
}

// Routes registers all handlers on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/pack", s.handlePack)
	mux.HandleFunc("POST /v1/preview", s.handlePreview)
	mux.HandleFunc("POST /v1/manifest", s.handleManifest)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
