package profilecard

import (
	"strings"

	"github.com/templui/lenscard/internal/model"
)

// Theme colors shared by both palettes.
const (
	ColorWhite      = "#ffffff"
	ColorBlack      = "#000000"
	ColorLightBlack = "#1d1d1d"
	ColorDarkGray   = "#4b4b4b"
	ColorLightGreen = "#e7f7ea"
	ColorMint       = "#abfe2c"
)

type Declaration struct {
	Property string
	Value    string
}

// Style is an ordered list of CSS declarations rendered into a style attribute.
type Style []Declaration

func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// With returns a copy of s with decls appended, replacing declarations of the same property.
func (s Style) With(decls ...Declaration) Style {
	out := make(Style, 0, len(s)+len(decls))
	for _, d := range s {
		replaced := false
		for _, n := range decls {
			if n.Property == d.Property {
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, d)
		}
	}
	return append(out, decls...)
}

// Palette is the set of colors a theme selects.
type Palette struct {
	Background        string
	Text              string
	Muted             string
	AvatarRing        string
	MiniAvatarOutline string
	ButtonBackground  string
	ButtonText        string
	Highlight         string
}

func PaletteFor(theme model.Theme) Palette {
	switch theme {
	case model.ThemeDark:
		return Palette{
			Background:        ColorLightBlack,
			Text:              ColorWhite,
			Muted:             ColorWhite,
			AvatarRing:        ColorLightBlack,
			MiniAvatarOutline: ColorLightBlack,
			ButtonBackground:  "#c3e4cd",
			ButtonText:        "#191919",
			Highlight:         ColorMint,
		}
	default:
		return Palette{
			Background:        ColorWhite,
			Text:              ColorBlack,
			Muted:             ColorDarkGray,
			AvatarRing:        ColorWhite,
			MiniAvatarOutline: ColorWhite,
			ButtonBackground:  "#3d4b41",
			ButtonText:        ColorWhite,
			Highlight:         ColorMint,
		}
	}
}

// Styles holds the inline style of every element of the card.
type Styles struct {
	Container               Style
	HeaderImageContainer    Style
	HeaderImage             Style
	ProfilePictureContainer Style
	ProfilePicture          Style
	InfoContainer           Style
	ButtonContainer         Style
	Button                  Style
	NameAndBio              Style
	Name                    Style
	Bio                     Style
	StatsContainer          Style
	Stat                    Style
	StatLabel               Style
	FollowedByContainer     Style
	FollowedByText          Style
	FollowedByLabel         Style
	MiniAvatarContainer     Style
	MiniAvatarWrapper       Style
	MiniAvatar              Style
}

// DefaultContainerStyle is used when no container style override is given.
var DefaultContainerStyle = Style{
	{"width", "510px"},
	{"border-radius", "18px"},
	{"overflow", "hidden"},
	{"cursor", "pointer"},
}

// StylesFor maps a theme to the styles of every card element.
func StylesFor(theme model.Theme) Styles {
	p := PaletteFor(theme)
	return Styles{
		Container:            DefaultContainerStyle,
		HeaderImageContainer: Style{{"position", "relative"}},
		HeaderImage: Style{
			{"display", "block"},
			{"width", "100%"},
			{"height", "245px"},
			{"object-fit", "cover"},
			{"object-position", "center center"},
			{"background-color", ColorLightGreen},
			{"border-top-left-radius", "18px"},
			{"border-top-right-radius", "18px"},
		},
		ProfilePictureContainer: Style{
			{"position", "absolute"},
			{"display", "flex"},
			{"justify-content", "center"},
			{"align-items", "center"},
			{"left", "0"},
			{"bottom", "-50px"},
			{"background-color", p.AvatarRing},
			{"width", "138px"},
			{"height", "138px"},
			{"border-radius", "70px"},
			{"margin-left", "20px"},
		},
		ProfilePicture: Style{
			{"width", "128px"},
			{"height", "128px"},
			{"border-radius", "70px"},
		},
		InfoContainer: Style{
			{"background-color", p.Background},
			{"padding", "0px 20px 20px"},
		},
		ButtonContainer: Style{
			{"display", "flex"},
			{"flex", "1"},
			{"justify-content", "flex-end"},
		},
		Button: Style{
			{"margin-top", "10px"},
			{"outline", "none"},
			{"border", "none"},
			{"padding", "10px 32px"},
			{"background-color", p.ButtonBackground},
			{"border-radius", "50px"},
			{"color", p.ButtonText},
			{"font-size", "16px"},
			{"font-weight", "500"},
			{"cursor", "pointer"},
		},
		NameAndBio: Style{{"margin-top", "15px"}},
		Name: Style{
			{"color", p.Text},
			{"font-size", "26px"},
			{"font-weight", "700"},
		},
		Bio: Style{
			{"color", p.Text},
			{"font-weight", "500"},
			{"margin-top", "9px"},
			{"line-height", "24px"},
		},
		StatsContainer: Style{
			{"display", "flex"},
			{"margin-top", "15px"},
		},
		Stat: Style{
			{"color", p.Text},
			{"font-weight", "600"},
			{"margin-right", "10px"},
		},
		StatLabel: Style{
			{"color", p.Muted},
			{"opacity", "50%"},
		},
		FollowedByContainer: Style{
			{"margin-top", "20px"},
			{"display", "flex"},
			{"color", p.Muted},
			{"align-items", "center"},
		},
		FollowedByText: Style{
			{"color", p.Text},
			{"margin-right", "5px"},
			{"font-weight", "600"},
			{"font-size", "14px"},
		},
		FollowedByLabel: Style{
			{"opacity", ".5"},
			{"margin-right", "4px"},
		},
		MiniAvatarContainer: Style{
			{"display", "flex"},
			{"margin-left", "10px"},
			{"margin-right", "14px"},
		},
		MiniAvatarWrapper: Style{
			{"display", "flex"},
			{"align-items", "center"},
			{"justify-content", "center"},
			{"width", "36px"},
			{"height", "36px"},
			{"margin-left", "-10px"},
			{"border-radius", "20px"},
		},
		MiniAvatar: Style{
			{"width", "34px"},
			{"height", "34px"},
			{"border-radius", "20px"},
			{"outline", "2px solid " + p.MiniAvatarOutline},
			{"background-color", p.MiniAvatarOutline},
		},
	}
}
