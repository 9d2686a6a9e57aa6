package format

import (
	"html"
	"regexp"
)

// BioLength is the number of characters of a bio shown on a card.
const BioLength = 130

// Links are matched first so a handle inside a URL is not wrapped twice.
var highlightPattern = regexp.MustCompile(`https?://[^\s<]+|@[\w.\-]*\w`)

// Substring cuts s to n characters and appends an ellipsis when it was longer.
func Substring(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// FormatHandleColors escapes text and wraps @handles and links in colored spans.
// The result is safe to insert as markup.
func FormatHandleColors(text, color string) string {
	escaped := html.EscapeString(text)
	open := `<span style="color: ` + html.EscapeString(color) + `;">`
	return highlightPattern.ReplaceAllStringFunc(escaped, func(m string) string {
		return open + m + "</span>"
	})
}

// FormatBio prepares a raw bio for display: truncation, escaping, highlighting.
func FormatBio(bio, color string) string {
	return FormatHandleColors(Substring(bio, BioLength), color)
}
