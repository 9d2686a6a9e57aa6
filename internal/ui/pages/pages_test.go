package pages

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templui/lenscard/internal/model"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(ctx, &b))
	return b.String()
}

func TestEmbedIsBareDocument(t *testing.T) {
	ctx := templ.WithNonce(context.Background(), "n0nce")

	got := render(t, ctx, Embed("stani.lens", templ.Raw(`<div id="card"></div>`)))

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>stani.lens on Lens</title>")
	assert.Contains(t, got, `<style nonce="n0nce">`)
	assert.Contains(t, got, `<body><div id="card"></div></body>`)
	assert.NotContains(t, got, "<main>")
}

func TestDocsRendersNavigation(t *testing.T) {
	a := &model.DocPage{Slug: "getting-started", Title: "Getting Started", HTMLContent: "<p>hello</p>"}
	b := &model.DocPage{Slug: "theming", Title: "Theming <dark>"}

	got := render(t, context.Background(), Docs("Lens Cards", a, []*model.DocPage{a, b}))

	assert.Contains(t, got, "<title>Getting Started | Lens Cards</title>")
	assert.Contains(t, got, `<a href="/docs/getting-started" aria-current="page">Getting Started</a>`)
	assert.Contains(t, got, `<a href="/docs/theming">Theming &lt;dark&gt;</a>`)
	assert.Contains(t, got, "<article><p>hello</p></article>")
	assert.Contains(t, got, "<main>")
}

func TestNotFound(t *testing.T) {
	got := render(t, context.Background(), NotFound())
	assert.Contains(t, got, "<h1>Not found</h1>")
	assert.Contains(t, got, `<a href="/">Back to the guide</a>`)
	assert.Contains(t, got, "<main>")
}

func TestEmbedWithoutHandle(t *testing.T) {
	got := render(t, context.Background(), Embed("", templ.NopComponent))

	assert.Contains(t, got, "<title>Lens profile</title>")
	assert.Contains(t, got, "<style>body { margin: 0; background: transparent; }")
}

func TestDocsSkipsNavForSinglePage(t *testing.T) {
	a := &model.DocPage{Slug: "only", Title: "Only", Description: "One & done"}
	got := render(t, context.Background(), Docs("Lens Cards", a, []*model.DocPage{a}))

	assert.NotContains(t, got, "<nav>")
	assert.Contains(t, got, "<p><em>One &amp; done</em></p>")
	assert.Contains(t, got, "<h1>Lens Cards</h1>")
}
