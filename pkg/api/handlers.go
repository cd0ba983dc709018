package api

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/alde/asciify/pkg/ascii"
	"github.com/dustin/go-humanize"
)

//go:embed index.html
var indexHTML []byte

// handleIndex serves the upload form.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "running",
		"version": Version,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleUpload accepts a multipart form with an image file plus the theme,
// detailed and full_resolution fields, converts the image, and responds with
// the result page.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "No image uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}
	if len(data) == 0 {
		http.Error(w, "No image uploaded.", http.StatusBadRequest)
		return
	}

	theme, err := ascii.GetTheme(r.FormValue("theme"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rampName := "simple"
	if r.FormValue("detailed") == "true" {
		rampName = "detailed"
	}
	ramp, err := ascii.GetRamp(rampName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conv := ascii.New(ascii.Options{
		FullResolution: r.FormValue("full_resolution") == "true",
		Theme:          theme,
		Ramp:           ramp,
	})

	result, err := conv.Convert(data)
	if err != nil {
		if errors.Is(err, ascii.ErrDecode) {
			http.Error(w, "Could not decode the uploaded image.", http.StatusBadRequest)
			return
		}
		log.Printf("Conversion failed: %v", err)
		http.Error(w, "Conversion failed", http.StatusInternalServerError)
		return
	}

	stem := filenameStem(header.Filename)
	log.Printf("Converted %s (%s in, %s text, %s html, %dx%d)",
		stem,
		humanize.Bytes(result.Stats.InputSize),
		humanize.Bytes(result.Stats.TextSize),
		humanize.Bytes(result.Stats.HTMLSize),
		result.Cols, result.Rows)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := writeResultPage(w, stem, result); err != nil {
		log.Printf("Failed to write result page: %v", err)
	}
}
