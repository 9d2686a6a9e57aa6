package format

import "github.com/templui/lenscard/internal/model"

// FormatProfilePicture returns a copy of p whose picture and cover URLs are fetchable over HTTP.
func FormatProfilePicture(p *model.Profile, gateway string) *model.Profile {
	if p == nil {
		return nil
	}
	c := p.Copy()
	c.Picture = resolveMedia(c.Picture, gateway)
	c.CoverPicture = resolveMedia(c.CoverPicture, gateway)
	return c
}

func resolveMedia(m model.Media, gateway string) model.Media {
	switch v := m.(type) {
	case model.MediaSet:
		v.URL = IPFSPathOrURL(v.URL, gateway)
		return v
	case model.NftImage:
		v.URI = IPFSPathOrURL(v.URI, gateway)
		return v
	case nil:
		return nil
	default:
		panic("format: unknown media variant")
	}
}
