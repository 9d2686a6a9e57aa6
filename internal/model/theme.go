package model

import (
	"errors"
	"strings"
)

var ErrInvalidTheme = errors.New("invalid theme")

type Theme int

const (
	ThemeDefault Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	default:
		return "default"
	}
}

// ParseTheme maps a query/config value to a Theme. Empty input yields ThemeDefault.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ThemeDefault, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeDefault, ErrInvalidTheme
}
