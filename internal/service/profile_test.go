package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/model"
)

type MockLens struct {
	mock.Mock
}

func (m *MockLens) ProfileByID(ctx context.Context, profileID string) (*model.Profile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockLens) ProfileByAddress(ctx context.Context, address string) (*model.Profile, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockLens) Followers(ctx context.Context, profileID string) ([]model.Follower, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Follower), args.Error(1)
}

const gateway = "https://gw.example/ipfs/"

func TestProfileRequiresIdentifier(t *testing.T) {
	lens := new(MockLens)
	svc := NewProfileService(lens, gateway)

	_, err := svc.Profile(context.Background(), model.Identifier{})

	assert.ErrorIs(t, err, ErrMissingIdentifier)
	lens.AssertNotCalled(t, "ProfileByID", mock.Anything, mock.Anything)
	lens.AssertNotCalled(t, "ProfileByAddress", mock.Anything, mock.Anything)
}

func TestProfilePrefersProfileID(t *testing.T) {
	lens := new(MockLens)
	lens.On("ProfileByID", mock.Anything, "0x01").
		Return(&model.Profile{ID: "0x01", Picture: model.MediaSet{URL: "ipfs://QmA"}}, nil)
	svc := NewProfileService(lens, gateway)

	p, err := svc.Profile(context.Background(), model.Identifier{ProfileID: "0x01", EthereumAddress: "0xabc"})
	require.NoError(t, err)

	assert.Equal(t, model.MediaSet{URL: gateway + "QmA"}, p.Picture)
	lens.AssertNotCalled(t, "ProfileByAddress", mock.Anything, mock.Anything)
}

func TestProfileByAddress(t *testing.T) {
	lens := new(MockLens)
	lens.On("ProfileByAddress", mock.Anything, "0xabc").Return(&model.Profile{ID: "0x05"}, nil)
	svc := NewProfileService(lens, gateway)

	p, err := svc.Profile(context.Background(), model.Identifier{EthereumAddress: "0xabc"})
	require.NoError(t, err)
	assert.Equal(t, "0x05", p.ID)
}

func TestProfileWrapsLensErrors(t *testing.T) {
	lensErr := errors.New("graphql: boom")
	lens := new(MockLens)
	lens.On("ProfileByID", mock.Anything, "0x01").Return(nil, lensErr)
	svc := NewProfileService(lens, gateway)

	_, err := svc.Profile(context.Background(), model.Identifier{ProfileID: "0x01"})
	assert.ErrorIs(t, err, lensErr)
}

func TestFollowersFormatsFirstThreeWithPictures(t *testing.T) {
	lens := new(MockLens)
	lens.On("Followers", mock.Anything, "0x01").Return([]model.Follower{
		{DefaultProfile: &model.Profile{Handle: "a.lens"}},
		{DefaultProfile: &model.Profile{Handle: "b.lens", Picture: model.MediaSet{URL: "ipfs://QmB"}}},
		{DefaultProfile: &model.Profile{Handle: "c.lens", Picture: model.MediaSet{URL: "https://img/c"}}},
		{DefaultProfile: &model.Profile{Handle: "d.lens", Picture: model.MediaSet{URL: "https://img/d"}}},
		{DefaultProfile: &model.Profile{Handle: "e.lens", Picture: model.MediaSet{URL: "https://img/e"}}},
	}, nil)
	svc := NewProfileService(lens, gateway)

	got, err := svc.Followers(context.Background(), "0x01")
	require.NoError(t, err)

	assert.Equal(t, []model.ProfileHandle{
		{Handle: "b.lens", Picture: gateway + "QmB"},
		{Handle: "c.lens", Picture: "https://img/c"},
		{Handle: "d.lens", Picture: "https://img/d"},
	}, got)
}
