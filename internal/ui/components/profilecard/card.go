package profilecard

import (
	"net/url"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/templui/lenscard/internal/format"
	"github.com/templui/lenscard/internal/model"
)

//go:generate go tool templ generate

const DefaultProfileBaseURL = "https://lenster.xyz/u/"

// CardData is everything Card needs to render.
type CardData struct {
	ID             string
	Props          Props
	Profile        *model.Profile
	Followers      []model.ProfileHandle
	ProfileBaseURL string
}

// ProfileURL is the page opened when the card is clicked without an OnClick handler.
func ProfileURL(baseURL, handle string) string {
	if baseURL == "" {
		baseURL = DefaultProfileBaseURL
	}
	return baseURL + url.PathEscape(handle)
}

var numbers = message.NewPrinter(language.AmericanEnglish)

// FormatCount prints n with en-US thousands separators.
func FormatCount(n int64) string {
	return numbers.Sprintf("%d", n)
}

// Card renders a profile card. It renders nothing when d.Profile is nil.
func Card(d CardData) templ.Component {
	if d.Profile == nil {
		return templ.NopComponent
	}
	return card(newCardView(d))
}

// cardView holds the resolved strings card.templ renders.
type cardView struct {
	ID             string
	Class          string
	ContainerStyle string
	Theme          string
	Handle         string
	ProfileURL     string
	OnClick        string
	Styles         Styles
	CoverURL       string
	PictureURL     string
	Name           string
	BioHTML        string
	Following      string
	FollowersCount string
	Followers      []followerView
	FollowedBy     string
}

type followerView struct {
	Handle  string
	Picture string
}

func newCardView(d CardData) cardView {
	p := d.Profile
	s := StylesFor(d.Props.Theme)

	container := s.Container
	if d.Props.ContainerStyle != nil {
		container = d.Props.ContainerStyle
	}

	v := cardView{
		ID:             d.ID,
		Class:          twmerge.Merge("lens-profile-card", d.Props.Class),
		ContainerStyle: container.String(),
		Theme:          d.Props.Theme.String(),
		Handle:         p.Handle,
		ProfileURL:     string(templ.URL(ProfileURL(d.ProfileBaseURL, p.Handle))),
		Styles:         s,
		Name:           p.Name,
		Following:      FormatCount(p.Stats.TotalFollowing),
		FollowersCount: FormatCount(p.Stats.TotalFollowers),
	}
	if d.Props.OnClick != "" && ValidateOnClick(d.Props.OnClick) == nil {
		v.OnClick = d.Props.OnClick
	}
	if v.Name == "" {
		v.Name = p.Handle
	}
	if cover, ok := p.CoverPicture.(model.MediaSet); ok {
		v.CoverURL = string(templ.URL(cover.URL))
	}
	if picture, ok := p.Picture.(model.MediaSet); ok {
		v.PictureURL = string(templ.URL(picture.URL))
	}
	if p.Bio != "" {
		v.BioHTML = format.FormatBio(p.Bio, PaletteFor(d.Props.Theme).Highlight)
	}
	if len(d.Followers) > 0 {
		handles := make([]string, 0, len(d.Followers))
		for _, f := range d.Followers {
			handles = append(handles, f.Handle)
			v.Followers = append(v.Followers, followerView{Handle: f.Handle, Picture: string(templ.URL(f.Picture))})
		}
		v.FollowedBy = format.FormatHandleList(handles)
	}
	return v
}
