package ui

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes c with a 200 status.
func Render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	RenderStatus(w, r, http.StatusOK, c)
}

// RenderStatus buffers c so a failed render still produces a clean 500.
func RenderStatus(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	err := c.Render(r.Context(), &buf)
	if err != nil {
		slog.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	if err != nil {
		slog.WarnContext(r.Context(), "write response failed", "path", r.URL.Path, "error", err)
	}
}
