package profilecard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/templui/lenscard/internal/model"
)

// Fetcher loads formatted card data. Implemented by service.ProfileService.
type Fetcher interface {
	Profile(ctx context.Context, id model.Identifier) (*model.Profile, error)
	Followers(ctx context.Context, profileID string) ([]model.ProfileHandle, error)
}

type Options struct {
	ProfileBaseURL string
	Logger         *slog.Logger
}

// Widget is a stateful profile card. It fetches when its identifier changes and renders
// nothing until a profile has been loaded.
//
// Each identifier change starts a new generation; results of an older generation are dropped,
// so a slow response for a previous identifier never overwrites newer state.
type Widget struct {
	fetcher Fetcher
	opts    Options
	id      string

	mu         sync.Mutex
	props      Props
	mounted    bool
	generation uint64
	profile    *model.Profile
	followers  []model.ProfileHandle
}

func NewWidget(fetcher Fetcher, opts Options) *Widget {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Widget{
		fetcher: fetcher,
		opts:    opts,
		id:      "lens-profile-" + uuid.NewString(),
	}
}

// Load creates a widget and fetches data for props.
func Load(ctx context.Context, fetcher Fetcher, opts Options, props Props) *Widget {
	w := NewWidget(fetcher, opts)
	w.SetProps(ctx, props)
	return w
}

// SetProps updates the props. The first call, and any call that changes the identifier,
// fetches the profile and then its followers before returning.
func (w *Widget) SetProps(ctx context.Context, props Props) {
	w.mu.Lock()
	changed := !w.mounted || props.Identifier() != w.props.Identifier()
	w.props = props
	w.mounted = true
	if !changed {
		w.mu.Unlock()
		return
	}
	w.generation++
	gen := w.generation
	w.mu.Unlock()

	w.fetch(ctx, gen, props.Identifier())
}

func (w *Widget) fetch(ctx context.Context, gen uint64, id model.Identifier) {
	log := w.opts.Logger
	if id.Empty() {
		log.Warn("please pass in either a Lens profile ID or an Ethereum address")
		return
	}

	profile, err := w.fetcher.Profile(ctx, id)
	if err != nil {
		log.Error("error fetching profile", "identifier", id.String(), "error", err)
		return
	}
	if !w.apply(gen, func() { w.profile = profile }) {
		log.Debug("dropping stale profile response", "identifier", id.String())
		return
	}

	followers, err := w.fetcher.Followers(ctx, profile.ID)
	if err != nil {
		log.Error("error fetching followers", "profile_id", profile.ID, "error", err)
		return
	}
	if !w.apply(gen, func() { w.followers = followers }) {
		log.Debug("dropping stale followers response", "profile_id", profile.ID)
	}
}

// apply runs update while holding the lock if gen is still current.
func (w *Widget) apply(gen uint64, update func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.generation {
		return false
	}
	update()
	return true
}

// Profile returns the loaded profile, or nil while nothing has been loaded.
func (w *Widget) Profile() *model.Profile {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.profile
}

func (w *Widget) Followers() []model.ProfileHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]model.ProfileHandle(nil), w.followers...)
}

// Ready reports whether the widget has something to render.
func (w *Widget) Ready() bool {
	return w.Profile() != nil
}

// Component renders the current state.
func (w *Widget) Component() templ.Component {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Card(CardData{
		ID:             w.id,
		Props:          w.props,
		Profile:        w.profile,
		Followers:      append([]model.ProfileHandle(nil), w.followers...),
		ProfileBaseURL: w.opts.ProfileBaseURL,
	})
}
