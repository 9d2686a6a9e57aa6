package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/db"
	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/repository"
	"github.com/templui/lenscard/internal/service"
	"github.com/templui/lenscard/internal/ui/components/profilecard"
)

type stubFetcher struct {
	mu       sync.Mutex
	profiles map[string]*model.Profile
	calls    int
}

func (s *stubFetcher) Profile(ctx context.Context, id model.Identifier) (*model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if id.Empty() {
		return nil, service.ErrMissingIdentifier
	}
	key := id.ProfileID
	if !id.ByProfileID() {
		key = id.EthereumAddress
	}
	p, ok := s.profiles[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (s *stubFetcher) Followers(ctx context.Context, profileID string) ([]model.ProfileHandle, error) {
	return []model.ProfileHandle{{Handle: "a.lens", Picture: "https://img/a"}}, nil
}

func newStubFetcher() *stubFetcher {
	stani := &model.Profile{
		ID:      "0x01",
		Handle:  "stani.lens",
		Name:    "Stani",
		Bio:     "building @aave",
		Picture: model.MediaSet{URL: "https://img/stani.png"},
		Stats:   model.Stats{TotalFollowing: 12, TotalFollowers: 1234},
	}
	return &stubFetcher{profiles: map[string]*model.Profile{
		"0x01":  stani,
		"0xabc": stani,
	}}
}

func get(t *testing.T, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestCardFragment(t *testing.T) {
	h := NewCardHandler(newStubFetcher(), profilecard.Options{}, model.ThemeDefault)

	rec := get(t, h.Fragment, "/card?profileId=0x01&theme=dark&class=shadow")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `data-theme="dark"`)
	assert.Contains(t, body, "1,234")
	assert.Contains(t, body, "lens-profile-card shadow")
	assert.NotContains(t, body, "<!DOCTYPE html>")
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestCardByAddress(t *testing.T) {
	h := NewCardHandler(newStubFetcher(), profilecard.Options{}, model.ThemeDark)

	rec := get(t, h.Fragment, "/card?address=0xabc")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-theme="dark"`)
}

func TestCardWithoutIdentifierIsEmpty(t *testing.T) {
	fetcher := newStubFetcher()
	h := NewCardHandler(fetcher, profilecard.Options{}, model.ThemeDefault)

	rec := get(t, h.Fragment, "/card")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Zero(t, fetcher.calls)
}

func TestCardUnknownProfileIsEmpty(t *testing.T) {
	h := NewCardHandler(newStubFetcher(), profilecard.Options{}, model.ThemeDefault)

	rec := get(t, h.Fragment, "/card?profileId=0xffff")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCardRejectsBadParams(t *testing.T) {
	h := NewCardHandler(newStubFetcher(), profilecard.Options{}, model.ThemeDefault)

	for _, target := range []string{
		"/card?profileId=0x01&theme=neon",
		"/card?profileId=0x01&onclick=alert(1)",
		"/card?profileId=0x01&style=background:url(x)",
	} {
		rec := get(t, h.Fragment, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestCardEmbedIsDocument(t *testing.T) {
	h := NewCardHandler(newStubFetcher(), profilecard.Options{}, model.ThemeDefault)

	rec := get(t, h.Embed, "/embed?profileId=0x01")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, rec.Body.String(), "<title>stani.lens on Lens</title>")
}

func TestDocs(t *testing.T) {
	docs := service.NewDocsService(fstest.MapFS{
		"docs/intro.md":   {Data: []byte("---\ntitle: Intro\norder: 1\n---\nHello\n")},
		"docs/theming.md": {Data: []byte("---\ntitle: Theming\norder: 2\n---\nDark\n")},
	})
	h := NewDocsHandler(docs)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.ShowDocs)
	mux.HandleFunc("GET /docs/{slug}", h.ShowDocs)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Intro | Lens Cards</title>")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/theming", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>Dark</p>")

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type memStorage struct {
	objects map[string]string
}

func (m *memStorage) Save(ctx context.Context, path string, body io.Reader, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[path] = string(data)
	return nil
}

func (m *memStorage) Delete(ctx context.Context, path string) error {
	delete(m.objects, path)
	return nil
}

func (m *memStorage) URL(path string) string { return "https://cdn.example/" + path }

func newSnapshotHandler(t *testing.T, withStorage bool) (*SnapshotHandler, *memStorage) {
	t.Helper()
	conn, err := db.Init("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(conn) })
	require.NoError(t, db.RunMigrations(context.Background(), conn.DB, "sqlite"))

	store := &memStorage{objects: map[string]string{}}
	svc := service.NewSnapshotService(newStubFetcher(), nil, repository.NewSnapshotRepository(conn), profilecard.Options{})
	if withStorage {
		svc = service.NewSnapshotService(newStubFetcher(), store, repository.NewSnapshotRepository(conn), profilecard.Options{})
	}
	return NewSnapshotHandler(svc, model.ThemeDefault), store
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/snapshots", strings.NewReader(body)))
	return rec
}

func TestSnapshotPublishAndList(t *testing.T) {
	h, store := newSnapshotHandler(t, true)

	rec := post(h.Publish, `{"profileId":"0x01","theme":"dark"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created snapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "stani.lens", created.Handle)
	assert.Equal(t, "dark", created.Theme)
	assert.True(t, strings.HasPrefix(created.Path, "cards/stani.lens/dark-"))
	assert.Equal(t, created.URL, rec.Header().Get("Location"))
	assert.Contains(t, store.objects, created.Path)

	rec = get(t, h.List, "/snapshots?handle=stani.lens")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []snapshotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestSnapshotPublishErrors(t *testing.T) {
	h, _ := newSnapshotHandler(t, true)

	assert.Equal(t, http.StatusBadRequest, post(h.Publish, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h.Publish, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h.Publish, `{"profileId":"0x01","theme":"neon"}`).Code)
	assert.Equal(t, http.StatusNotFound, post(h.Publish, `{"profileId":"0xffff"}`).Code)
}

func TestSnapshotPublishDisabled(t *testing.T) {
	h, _ := newSnapshotHandler(t, false)

	rec := post(h.Publish, `{"profileId":"0x01"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = get(t, h.List, "/snapshots")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

type failingPinger struct{ err error }

func (f failingPinger) PingContext(ctx context.Context) error { return f.err }

func TestHealthz(t *testing.T) {
	rec := get(t, NewHealthHandler(failingPinger{}).Healthz, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())

	rec = get(t, NewHealthHandler(failingPinger{err: errors.New("down")}).Healthz, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unreachable")
}
