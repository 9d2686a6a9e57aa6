package lens

import "github.com/templui/lenscard/internal/model"

type mediaResponse struct {
	Typename string `json:"__typename"`
	Original *struct {
		URL      string `json:"url"`
		MimeType string `json:"mimeType"`
	} `json:"original"`
	URI             string `json:"uri"`
	ContractAddress string `json:"contractAddress"`
	TokenID         string `json:"tokenId"`
	Verified        bool   `json:"verified"`
}

type profileResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Bio          string         `json:"bio"`
	Handle       string         `json:"handle"`
	OwnedBy      string         `json:"ownedBy"`
	Picture      *mediaResponse `json:"picture"`
	CoverPicture *mediaResponse `json:"coverPicture"`
	Stats        struct {
		TotalFollowers int64 `json:"totalFollowers"`
		TotalFollowing int64 `json:"totalFollowing"`
	} `json:"stats"`
}

type profileByIDResponse struct {
	Profile *profileResponse `json:"profile"`
}

type profileByAddressResponse struct {
	DefaultProfile *profileResponse `json:"defaultProfile"`
}

type followersResponse struct {
	Followers struct {
		Items []struct {
			Wallet struct {
				Address        string           `json:"address"`
				DefaultProfile *profileResponse `json:"defaultProfile"`
			} `json:"wallet"`
		} `json:"items"`
	} `json:"followers"`
}

// toMedia is the only place the __typename tag is inspected.
func (m *mediaResponse) toMedia() model.Media {
	if m == nil {
		return nil
	}
	switch m.Typename {
	case "MediaSet":
		if m.Original == nil {
			return nil
		}
		return model.MediaSet{URL: m.Original.URL, MimeType: m.Original.MimeType}
	case "NftImage":
		return model.NftImage{
			URI:             m.URI,
			ContractAddress: m.ContractAddress,
			TokenID:         m.TokenID,
			Verified:        m.Verified,
		}
	}
	return nil
}

func (p *profileResponse) toModel() *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		ID:           p.ID,
		Handle:       p.Handle,
		Name:         p.Name,
		OwnedBy:      p.OwnedBy,
		Bio:          p.Bio,
		Picture:      p.Picture.toMedia(),
		CoverPicture: p.CoverPicture.toMedia(),
		Stats: model.Stats{
			TotalFollowers: p.Stats.TotalFollowers,
			TotalFollowing: p.Stats.TotalFollowing,
		},
	}
}

func (r *followersResponse) toModel() []model.Follower {
	followers := make([]model.Follower, 0, len(r.Followers.Items))
	for _, item := range r.Followers.Items {
		followers = append(followers, model.Follower{
			Address:        item.Wallet.Address,
			DefaultProfile: item.Wallet.DefaultProfile.toModel(),
		})
	}
	return followers
}
