package profilecard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/templui/lenscard/internal/model"
)

func valueOf(s Style, property string) string {
	for _, d := range s {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

func TestPaletteForDefault(t *testing.T) {
	p := PaletteFor(model.ThemeDefault)
	assert.Equal(t, ColorWhite, p.Background)
	assert.Equal(t, ColorBlack, p.Text)
	assert.Equal(t, ColorWhite, p.MiniAvatarOutline)
}

func TestPaletteForDark(t *testing.T) {
	p := PaletteFor(model.ThemeDark)
	assert.Equal(t, ColorLightBlack, p.Background)
	assert.Equal(t, ColorWhite, p.Text)
	assert.Equal(t, ColorLightBlack, p.MiniAvatarOutline)
}

func TestStylesForAppliesPalette(t *testing.T) {
	dark := StylesFor(model.ThemeDark)
	assert.Equal(t, ColorLightBlack, valueOf(dark.InfoContainer, "background-color"))
	assert.Equal(t, ColorWhite, valueOf(dark.Name, "color"))
	assert.Equal(t, "2px solid "+ColorLightBlack, valueOf(dark.MiniAvatar, "outline"))
	assert.Equal(t, "#c3e4cd", valueOf(dark.Button, "background-color"))

	light := StylesFor(model.ThemeDefault)
	assert.Equal(t, ColorWhite, valueOf(light.InfoContainer, "background-color"))
	assert.Equal(t, ColorBlack, valueOf(light.Name, "color"))
	assert.Equal(t, "#3d4b41", valueOf(light.Button, "background-color"))
}

func TestStylesGeometry(t *testing.T) {
	s := StylesFor(model.ThemeDefault)
	assert.Equal(t, "510px", valueOf(s.Container, "width"))
	assert.Equal(t, "245px", valueOf(s.HeaderImage, "height"))
	assert.Equal(t, "128px", valueOf(s.ProfilePicture, "width"))
	assert.Equal(t, "138px", valueOf(s.ProfilePictureContainer, "width"))
}

func TestStyleWithReplacesProperty(t *testing.T) {
	s := Style{{"width", "510px"}, {"cursor", "pointer"}}
	got := s.With(Declaration{"width", "100%"})

	assert.Equal(t, "cursor: pointer; width: 100%;", got.String())
	assert.Equal(t, "width: 510px; cursor: pointer;", s.String())
}

func TestHeaderImageCoversWithoutBackgroundURL(t *testing.T) {
	s := StylesFor(model.ThemeDark)
	assert.Equal(t, "cover", valueOf(s.HeaderImage, "object-fit"))
	assert.Equal(t, "100%", valueOf(s.HeaderImage, "width"))
	assert.NotContains(t, s.HeaderImage.String(), "url(")
}
