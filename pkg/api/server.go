package api

import (
	"context"
	"net/http"
	"time"
)

// Server hosts the upload form and the conversion endpoint.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux

	// maxUploadBytes bounds how much of a multipart body is held in memory.
	maxUploadBytes int64
}

// NewServer creates a new API server.
func NewServer() *Server {
	s := &Server{
		mux:            http.NewServeMux(),
		maxUploadBytes: 32 << 20,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/upload", s.handleUpload)
	s.mux.HandleFunc("/health", s.handleHealth)
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the server on the given address. This is blocking.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
