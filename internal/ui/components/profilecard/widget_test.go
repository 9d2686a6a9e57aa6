package profilecard

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/model"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Profile(ctx context.Context, id model.Identifier) (*model.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockFetcher) Followers(ctx context.Context, profileID string) ([]model.ProfileHandle, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProfileHandle), args.Error(1)
}

func quietOptions() Options {
	return Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func render(t *testing.T, w *Widget) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, w.Component().Render(context.Background(), &b))
	return b.String()
}

func TestWidgetWithoutIdentifierDoesNotFetch(t *testing.T) {
	f := new(MockFetcher)
	var logs bytes.Buffer
	w := Load(context.Background(), f, Options{Logger: slog.New(slog.NewTextHandler(&logs, nil))}, Props{})

	f.AssertNotCalled(t, "Profile", mock.Anything, mock.Anything)
	f.AssertNotCalled(t, "Followers", mock.Anything, mock.Anything)
	assert.False(t, w.Ready())
	assert.Empty(t, render(t, w))
	assert.Contains(t, logs.String(), "please pass in either a Lens profile ID or an Ethereum address")
}

func TestWidgetByProfileIDFetchesProfileThenFollowers(t *testing.T) {
	f := new(MockFetcher)
	profile := &model.Profile{ID: "0x01", Handle: "stani.lens"}
	followers := []model.ProfileHandle{{Handle: "a.lens", Picture: "https://img.example/a.png"}}
	f.On("Profile", mock.Anything, model.Identifier{ProfileID: "0x01"}).Return(profile, nil).Once()
	f.On("Followers", mock.Anything, "0x01").Return(followers, nil).Once()

	w := Load(context.Background(), f, quietOptions(), Props{ProfileID: "0x01"})

	f.AssertExpectations(t)
	require.Len(t, f.Calls, 2)
	assert.Equal(t, "Profile", f.Calls[0].Method)
	assert.Equal(t, "Followers", f.Calls[1].Method)
	assert.Equal(t, profile, w.Profile())
	assert.Equal(t, followers, w.Followers())
}

func TestWidgetByAddressUsesResolvedProfileID(t *testing.T) {
	f := new(MockFetcher)
	f.On("Profile", mock.Anything, model.Identifier{EthereumAddress: "0xabc"}).
		Return(&model.Profile{ID: "0x05", Handle: "owner.lens"}, nil).Once()
	f.On("Followers", mock.Anything, "0x05").Return([]model.ProfileHandle{}, nil).Once()

	Load(context.Background(), f, quietOptions(), Props{EthereumAddress: "0xabc"})

	f.AssertExpectations(t)
	f.AssertNotCalled(t, "Followers", mock.Anything, "0xabc")
}

func TestWidgetProfileFailureKeepsPreviousState(t *testing.T) {
	f := new(MockFetcher)
	f.On("Profile", mock.Anything, model.Identifier{ProfileID: "0xbad"}).Return(nil, errors.New("network down")).Once()

	w := Load(context.Background(), f, quietOptions(), Props{ProfileID: "0xbad"})

	assert.Nil(t, w.Profile())
	assert.Empty(t, render(t, w))
	f.AssertNotCalled(t, "Followers", mock.Anything, mock.Anything)

	first := &model.Profile{ID: "0x01", Handle: "stani.lens"}
	f.On("Profile", mock.Anything, model.Identifier{ProfileID: "0x01"}).Return(first, nil).Once()
	f.On("Followers", mock.Anything, "0x01").Return([]model.ProfileHandle{}, nil).Once()
	w.SetProps(context.Background(), Props{ProfileID: "0x01"})
	require.Equal(t, first, w.Profile())

	f.On("Profile", mock.Anything, model.Identifier{ProfileID: "0x02"}).Return(nil, errors.New("timeout")).Once()
	w.SetProps(context.Background(), Props{ProfileID: "0x02"})
	assert.Equal(t, first, w.Profile())
}

func TestWidgetFollowersFailureStillRendersProfile(t *testing.T) {
	f := new(MockFetcher)
	f.On("Profile", mock.Anything, mock.Anything).Return(&model.Profile{ID: "0x01", Handle: "stani.lens"}, nil)
	f.On("Followers", mock.Anything, "0x01").Return(nil, errors.New("graphql: boom"))

	w := Load(context.Background(), f, quietOptions(), Props{ProfileID: "0x01"})

	assert.True(t, w.Ready())
	assert.Empty(t, w.Followers())
	assert.Contains(t, render(t, w), "stani.lens")
}

func TestWidgetDoesNotRefetchWhenIdentifierUnchanged(t *testing.T) {
	f := new(MockFetcher)
	f.On("Profile", mock.Anything, mock.Anything).Return(&model.Profile{ID: "0x01"}, nil).Once()
	f.On("Followers", mock.Anything, "0x01").Return([]model.ProfileHandle{}, nil).Once()

	w := Load(context.Background(), f, quietOptions(), Props{ProfileID: "0x01"})
	w.SetProps(context.Background(), Props{ProfileID: "0x01", Theme: model.ThemeDark})

	f.AssertNumberOfCalls(t, "Profile", 1)
	assert.Contains(t, render(t, w), `data-theme="dark"`)
}

// gatedFetcher blocks profile lookups for one identifier until released.
type gatedFetcher struct {
	gateID  string
	entered chan struct{}
	release chan struct{}

	mu        sync.Mutex
	followers []string
}

func (g *gatedFetcher) Profile(ctx context.Context, id model.Identifier) (*model.Profile, error) {
	if id.ProfileID == g.gateID {
		close(g.entered)
		<-g.release
	}
	return &model.Profile{ID: id.ProfileID, Handle: id.ProfileID + ".lens"}, nil
}

func (g *gatedFetcher) Followers(ctx context.Context, profileID string) ([]model.ProfileHandle, error) {
	g.mu.Lock()
	g.followers = append(g.followers, profileID)
	g.mu.Unlock()
	return []model.ProfileHandle{{Handle: "f-" + profileID}}, nil
}

func TestWidgetDropsStaleResponses(t *testing.T) {
	g := &gatedFetcher{gateID: "0xslow", entered: make(chan struct{}), release: make(chan struct{})}
	w := NewWidget(g, quietOptions())

	done := make(chan struct{})
	go func() {
		w.SetProps(context.Background(), Props{ProfileID: "0xslow"})
		close(done)
	}()
	<-g.entered

	w.SetProps(context.Background(), Props{ProfileID: "0xfast"})
	close(g.release)
	<-done

	require.NotNil(t, w.Profile())
	assert.Equal(t, "0xfast", w.Profile().ID)
	assert.Equal(t, []model.ProfileHandle{{Handle: "f-0xfast"}}, w.Followers())
	// The stale generation stops before asking for followers.
	assert.Equal(t, []string{"0xfast"}, g.followers)
}
