package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/templui/lenscard/internal/ctxkeys"
	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/service"
	"github.com/templui/lenscard/internal/storage"
)

type SnapshotHandler struct {
	snapshotService *service.SnapshotService
	defaultTheme    model.Theme
}

func NewSnapshotHandler(snapshotService *service.SnapshotService, defaultTheme model.Theme) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		defaultTheme:    defaultTheme,
	}
}

type publishRequest struct {
	ProfileID       string `json:"profileId"`
	EthereumAddress string `json:"address"`
	Theme           string `json:"theme"`
	OnClick         string `json:"onclick"`
	Class           string `json:"class"`
	Style           string `json:"style"`
}

type snapshotResponse struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Handle    string    `json:"handle"`
	Theme     string    `json:"theme"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

func toSnapshotResponse(s model.Snapshot) snapshotResponse {
	return snapshotResponse{
		ID:        s.ID,
		ProfileID: s.ProfileID,
		Handle:    s.Handle,
		Theme:     s.Theme,
		Path:      s.StoragePath,
		URL:       s.URL,
		CreatedAt: s.CreatedAt,
	}
}

// Publish renders and stores a static snapshot of a card.
func (h *SnapshotHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if !h.snapshotService.Enabled() {
		http.Error(w, storage.ErrNotConfigured.Error(), http.StatusServiceUnavailable)
		return
	}

	var req publishRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 16<<10)).Decode(&req)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	props, err := cardProps(url.Values{
		"profileId": {req.ProfileID},
		"address":   {req.EthereumAddress},
		"theme":     {req.Theme},
		"onclick":   {req.OnClick},
		"class":     {req.Class},
		"style":     {req.Style},
	}, h.defaultTheme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	snapshot, err := h.snapshotService.Publish(r.Context(), props)
	switch {
	case errors.Is(err, service.ErrMissingIdentifier):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, service.ErrNothingToRender):
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	case errors.Is(err, storage.ErrNotConfigured):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "failed to publish snapshot", "error", err)
		http.Error(w, "failed to publish snapshot", http.StatusInternalServerError)
		return
	}

	slog.InfoContext(r.Context(), "snapshot requested",
		"publisher", ctxkeys.Publisher(r.Context()),
		"snapshot_id", snapshot.ID,
	)
	w.Header().Set("Location", snapshot.URL)
	writeJSON(w, http.StatusCreated, toSnapshotResponse(*snapshot))
}

// List returns the latest snapshots, optionally filtered by ?handle=.
func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.snapshotService.Latest(r.URL.Query().Get("handle"))
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list snapshots", "error", err)
		http.Error(w, "failed to list snapshots", http.StatusInternalServerError)
		return
	}

	out := make([]snapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, toSnapshotResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}
