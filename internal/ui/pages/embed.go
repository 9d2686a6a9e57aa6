package pages

//go:generate go tool templ generate

func embedTitle(handle string) string {
	if handle == "" {
		return "Lens profile"
	}
	return handle + " on Lens"
}
