package profilecard

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/model"
)

func renderCard(t *testing.T, ctx context.Context, d CardData) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Card(d).Render(ctx, &b))
	return b.String()
}

func sampleProfile() *model.Profile {
	return &model.Profile{
		ID:           "0x01",
		Handle:       "stani.lens",
		Name:         "Stani",
		Bio:          "Building @lensprotocol <script>alert(1)</script>",
		Picture:      model.MediaSet{URL: "https://img.example/avatar.png"},
		CoverPicture: model.MediaSet{URL: "https://img.example/cover.png"},
		Stats:        model.Stats{TotalFollowing: 1234, TotalFollowers: 1234567},
	}
}

func TestCardRendersNothingWithoutProfile(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{ID: "card"})
	assert.Empty(t, got)
}

func TestCardRendersProfile(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{
		ID:      "card",
		Profile: sampleProfile(),
		Followers: []model.ProfileHandle{
			{Handle: "a.lens", Picture: "https://img.example/a.png"},
			{Handle: "b.lens", Picture: "https://img.example/b.png"},
			{Handle: "c.lens", Picture: "https://img.example/c.png"},
		},
	})

	assert.Contains(t, got, `id="card"`)
	assert.Contains(t, got, `>Stani</p>`)
	assert.Contains(t, got, `src="https://img.example/avatar.png"`)
	assert.Contains(t, got, `src="https://img.example/cover.png"`)
	assert.Contains(t, got, `1,234 <span`)
	assert.Contains(t, got, `1,234,567 <span`)
	assert.Contains(t, got, `>Follow</button>`)
	assert.Contains(t, got, `Followed by</span>a.lens, b.lens and c.lens</p>`)
	assert.Equal(t, 5, strings.Count(got, "<img "))
	assert.Contains(t, got, `data-profile-url="https://lenster.xyz/u/stani.lens"`)
	assert.NotContains(t, got, "data-onclick")
}

func TestCardEscapesBioMarkup(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{ID: "card", Profile: sampleProfile()})

	assert.NotContains(t, got, "<script>alert(1)</script>")
	assert.Contains(t, got, "&lt;script&gt;")
	assert.Contains(t, got, `<span style="color: `+ColorMint+`;">@lensprotocol</span>`)
}

func TestCardSkipsNonMediaSetPictures(t *testing.T) {
	p := sampleProfile()
	p.Picture = model.NftImage{URI: "https://nft.example/1.png"}
	p.CoverPicture = nil

	got := renderCard(t, context.Background(), CardData{ID: "card", Profile: p})

	assert.NotContains(t, got, "nft.example")
	assert.Equal(t, 0, strings.Count(got, "<img "))
	assert.NotContains(t, got, "Followed by")
}

func TestCardUsesThemeAndOverrides(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{
		ID:      "card",
		Profile: sampleProfile(),
		Props: Props{
			Theme:          model.ThemeDark,
			OnClick:        "app.openProfile",
			ContainerStyle: Style{{"width", "100%"}},
			Class:          "shadow-sm shadow-lg",
		},
	})

	assert.Contains(t, got, `data-theme="dark"`)
	assert.Contains(t, got, `background-color: `+ColorLightBlack)
	assert.Contains(t, got, `style="width: 100%;"`)
	assert.Contains(t, got, `class="lens-profile-card shadow-lg"`)
	assert.Contains(t, got, `data-onclick="app.openProfile"`)
}

func TestCardCarriesNonce(t *testing.T) {
	ctx := templ.WithNonce(context.Background(), "n0nce")
	got := renderCard(t, ctx, CardData{ID: "card", Profile: sampleProfile()})

	assert.Contains(t, got, `<style nonce="n0nce">`)
	assert.Contains(t, got, `<script nonce="n0nce">`)
	assert.Contains(t, got, `@media (max-width: 510px) { .lens-profile-card { width: 100% !important; } }`)
}

func TestCardOmitsNonceWithoutOne(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{ID: "card", Profile: sampleProfile()})

	assert.Contains(t, got, "<style>")
	assert.Contains(t, got, "<script>")
	assert.NotContains(t, got, "nonce=")
}

func TestCardClickScriptSkipsBuiltins(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{ID: "card", Profile: sampleProfile()})

	assert.Contains(t, got, "document.currentScript")
	assert.Contains(t, got, `[native code\]`)
	assert.Less(t, strings.Index(got, `class="lens-profile-card`), strings.Index(got, "<script"))
}

func TestCardDropsInvalidOnClick(t *testing.T) {
	got := renderCard(t, context.Background(), CardData{
		ID:      "card",
		Profile: sampleProfile(),
		Props:   Props{OnClick: "location.assign"},
	})

	assert.NotContains(t, got, "data-onclick")
}

func TestCardFallsBackToHandle(t *testing.T) {
	p := sampleProfile()
	p.Name = ""
	p.Bio = ""

	got := renderCard(t, context.Background(), CardData{ID: "card", Profile: p})

	assert.Contains(t, got, `>stani.lens</p>`)
	assert.NotContains(t, got, "@lensprotocol")
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "1,234", FormatCount(1234))
}

func TestProfileURL(t *testing.T) {
	assert.Equal(t, "https://lenster.xyz/u/stani.lens", ProfileURL("", "stani.lens"))
	assert.Equal(t, "https://hey.xyz/u/a%2Fb", ProfileURL("https://hey.xyz/u/", "a/b"))
}
