package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/repository"
	"github.com/templui/lenscard/internal/storage"
	"github.com/templui/lenscard/internal/ui/components/profilecard"
	"github.com/templui/lenscard/internal/ui/pages"
)

var ErrNothingToRender = errors.New("no profile to render")

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// snapshotPath builds the object key. The handle comes from the API, so it is
// reduced to [a-z0-9._-] and may not climb out of cards/.
func snapshotPath(handle string, theme model.Theme, id string) string {
	segment := strings.Trim(unsafeKeyChars.ReplaceAllString(strings.ToLower(handle), "-"), ".-")
	if segment == "" {
		segment = "unknown"
	}
	return fmt.Sprintf("cards/%s/%s-%s.html", segment, theme, id)
}

const snapshotLatestLimit = 50

// SnapshotService publishes static card pages to object storage.
type SnapshotService struct {
	fetcher    profilecard.Fetcher
	storage    storage.Storage
	repository repository.SnapshotRepository
	cardOpts   profilecard.Options
}

// NewSnapshotService accepts a nil store; Publish then returns storage.ErrNotConfigured.
func NewSnapshotService(
	fetcher profilecard.Fetcher,
	store storage.Storage,
	repository repository.SnapshotRepository,
	cardOpts profilecard.Options,
) *SnapshotService {
	return &SnapshotService{
		fetcher:    fetcher,
		storage:    store,
		repository: repository,
		cardOpts:   cardOpts,
	}
}

func (s *SnapshotService) Enabled() bool {
	return s.storage != nil
}

// Publish renders the card for props and stores it at cards/<handle>/<theme>-<uuid>.html.
func (s *SnapshotService) Publish(ctx context.Context, props profilecard.Props) (*model.Snapshot, error) {
	if !s.Enabled() {
		return nil, storage.ErrNotConfigured
	}
	if props.Identifier().Empty() {
		return nil, ErrMissingIdentifier
	}

	widget := profilecard.Load(ctx, s.fetcher, s.cardOpts, props)
	if !widget.Ready() {
		return nil, ErrNothingToRender
	}
	profile := widget.Profile()

	var buf bytes.Buffer
	err := pages.Embed(profile.Handle, widget.Component()).Render(ctx, &buf)
	if err != nil {
		return nil, fmt.Errorf("render snapshot: %w", err)
	}

	id := uuid.New().String()
	path := snapshotPath(profile.Handle, props.Theme, id)

	err = s.storage.Save(ctx, path, &buf, "text/html; charset=utf-8")
	if err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}

	snapshot := &model.Snapshot{
		ID:          id,
		ProfileID:   profile.ID,
		Handle:      profile.Handle,
		Theme:       props.Theme.String(),
		StoragePath: path,
		URL:         s.storage.URL(path),
	}
	err = s.repository.Create(snapshot)
	if err != nil {
		// Object without a registry row is unreachable from the listing.
		delErr := s.storage.Delete(ctx, path)
		if delErr != nil {
			slog.WarnContext(ctx, "failed to remove orphaned snapshot", "path", path, "error", delErr)
		}
		return nil, fmt.Errorf("record snapshot: %w", err)
	}

	slog.InfoContext(ctx, "snapshot published", "handle", snapshot.Handle, "theme", snapshot.Theme, "path", path)
	return snapshot, nil
}

// Latest lists recently published snapshots, newest first.
func (s *SnapshotService) Latest(handle string) ([]model.Snapshot, error) {
	if handle != "" {
		return s.repository.ByHandle(handle)
	}
	return s.repository.Latest(snapshotLatestLimit)
}
