package model

// DocPage is one page of the embedding guide served at the site root.
type DocPage struct {
	Title       string
	Slug        string
	Order       int
	Description string
	HTMLContent string
}
