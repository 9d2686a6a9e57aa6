package lenscard

import "embed"

// ContentFS holds the embedding guide served at "/" (content/docs/*.md).
//
//go:embed content
var ContentFS embed.FS
