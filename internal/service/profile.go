package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/templui/lenscard/internal/format"
	"github.com/templui/lenscard/internal/model"
)

var ErrMissingIdentifier = errors.New("missing profile id or ethereum address")

// LensClient is the subset of the Lens API used to build cards.
type LensClient interface {
	ProfileByID(ctx context.Context, profileID string) (*model.Profile, error)
	ProfileByAddress(ctx context.Context, address string) (*model.Profile, error)
	Followers(ctx context.Context, profileID string) ([]model.Follower, error)
}

type ProfileService struct {
	lens        LensClient
	ipfsGateway string
}

func NewProfileService(lens LensClient, ipfsGateway string) *ProfileService {
	return &ProfileService{
		lens:        lens,
		ipfsGateway: ipfsGateway,
	}
}

// Profile looks a profile up by ID, or by owner address when no ID is given,
// and resolves its picture URLs.
func (s *ProfileService) Profile(ctx context.Context, id model.Identifier) (*model.Profile, error) {
	if id.Empty() {
		return nil, ErrMissingIdentifier
	}

	var (
		profile *model.Profile
		err     error
	)
	if id.ByProfileID() {
		profile, err = s.lens.ProfileByID(ctx, id.ProfileID)
	} else {
		profile, err = s.lens.ProfileByAddress(ctx, id.EthereumAddress)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch profile %s: %w", id, err)
	}

	return format.FormatProfilePicture(profile, s.ipfsGateway), nil
}

// Followers returns up to three followers of profileID that have a picture.
func (s *ProfileService) Followers(ctx context.Context, profileID string) ([]model.ProfileHandle, error) {
	followers, err := s.lens.Followers(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("fetch followers of %s: %w", profileID, err)
	}
	return format.FormatFollowers(followers, format.MaxFollowers, s.ipfsGateway), nil
}
