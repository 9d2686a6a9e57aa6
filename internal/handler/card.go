package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/templui/lenscard/internal/metrics"
	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/ui"
	"github.com/templui/lenscard/internal/ui/components/profilecard"
	"github.com/templui/lenscard/internal/ui/pages"
)

type CardHandler struct {
	fetcher      profilecard.Fetcher
	cardOpts     profilecard.Options
	defaultTheme model.Theme
}

func NewCardHandler(fetcher profilecard.Fetcher, cardOpts profilecard.Options, defaultTheme model.Theme) *CardHandler {
	return &CardHandler{
		fetcher:      fetcher,
		cardOpts:     cardOpts,
		defaultTheme: defaultTheme,
	}
}

// Fragment serves the card markup for inclusion in a host page.
func (h *CardHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(_ *model.Profile, card templ.Component) templ.Component {
		return card
	})
}

// Embed serves the card as a complete document for iframes.
func (h *CardHandler) Embed(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, func(p *model.Profile, card templ.Component) templ.Component {
		return pages.Embed(p.Handle, card)
	})
}

func (h *CardHandler) serve(w http.ResponseWriter, r *http.Request, wrap func(*model.Profile, templ.Component) templ.Component) {
	props, err := cardProps(r.URL.Query(), h.defaultTheme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	widget := profilecard.Load(r.Context(), h.fetcher, h.cardOpts, props)
	if !widget.Ready() {
		// Missing identifier or failed lookup: the card renders nothing.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	profile := widget.Profile()

	metrics.CardsRenderedTotal.WithLabelValues(props.Theme.String()).Inc()
	slog.DebugContext(r.Context(), "card rendered", "handle", profile.Handle, "theme", props.Theme.String())

	w.Header().Set("Cache-Control", "public, max-age=60")
	ui.Render(w, r, wrap(profile, widget.Component()))
}
