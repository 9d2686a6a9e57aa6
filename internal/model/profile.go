package model

import "strings"

// Profile is a Lens profile as shown on a card.
type Profile struct {
	ID           string
	Handle       string
	Name         string
	OwnedBy      string
	Bio          string
	Picture      Media
	CoverPicture Media
	Stats        Stats
}

type Stats struct {
	TotalFollowing int64
	TotalFollowers int64
}

// Copy returns a shallow copy; Media values are immutable so sharing them is safe.
func (p *Profile) Copy() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Media is the picture slot of a profile. A nil Media means the slot is empty.
// The set of variants is closed: MediaSet and NftImage.
type Media interface {
	isMedia()
}

// MediaSet is an uploaded image.
type MediaSet struct {
	URL      string
	MimeType string
}

// NftImage is an NFT used as a profile picture.
type NftImage struct {
	URI             string
	ContractAddress string
	TokenID         string
	Verified        bool
}

func (MediaSet) isMedia() {}
func (NftImage) isMedia() {}

// MediaURL returns the fetchable location of m, or "" for an empty slot.
func MediaURL(m Media) string {
	switch v := m.(type) {
	case MediaSet:
		return v.URL
	case NftImage:
		return v.URI
	case nil:
		return ""
	default:
		panic("model: unknown media variant")
	}
}

// Identifier selects a profile either by Lens profile ID or by the owner's Ethereum address.
type Identifier struct {
	ProfileID       string
	EthereumAddress string
}

func (i Identifier) Empty() bool {
	return strings.TrimSpace(i.ProfileID) == "" && strings.TrimSpace(i.EthereumAddress) == ""
}

// ByProfileID reports whether the profile ID takes precedence for this lookup.
func (i Identifier) ByProfileID() bool {
	return strings.TrimSpace(i.ProfileID) != ""
}

func (i Identifier) String() string {
	if i.ByProfileID() {
		return "profile:" + i.ProfileID
	}
	if i.EthereumAddress != "" {
		return "address:" + i.EthereumAddress
	}
	return ""
}
