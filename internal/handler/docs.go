package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/lenscard/internal/ctxkeys"
	"github.com/templui/lenscard/internal/service"
	"github.com/templui/lenscard/internal/ui"
	"github.com/templui/lenscard/internal/ui/pages"
)

type DocsHandler struct {
	docsService *service.DocsService
}

func NewDocsHandler(docsService *service.DocsService) *DocsHandler {
	return &DocsHandler{
		docsService: docsService,
	}
}

// ShowDocs serves "/" (the first guide page) and "/docs/{slug}".
func (h *DocsHandler) ShowDocs(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, err := h.docsService.DocPage(slug)
	if errors.Is(err, service.ErrDocNotFound) {
		NotFound(w, r)
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to load documentation", "slug", slug, "error", err)
		http.Error(w, "Failed to load documentation", http.StatusInternalServerError)
		return
	}

	all, err := h.docsService.Pages()
	if err != nil {
		http.Error(w, "Failed to load documentation", http.StatusInternalServerError)
		return
	}

	appName := "Lens Cards"
	if cfg := ctxkeys.Config(r.Context()); cfg != nil && cfg.AppName != "" {
		appName = cfg.AppName
	}

	ui.Render(w, r, pages.Docs(appName, page, all))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
