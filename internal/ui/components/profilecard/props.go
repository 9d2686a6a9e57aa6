package profilecard

import (
	"errors"
	"regexp"
	"strings"

	"github.com/templui/lenscard/internal/model"
)

var (
	ErrInvalidStyle   = errors.New("invalid container style")
	ErrInvalidOnClick = errors.New("invalid onclick handler name")
)

// Props are the inputs of a profile card.
type Props struct {
	ProfileID       string
	EthereumAddress string
	// OnClick names a function on the host page, called with the handle when the card is clicked.
	// Empty means the card opens the profile page in a new tab.
	OnClick        string
	Theme          model.Theme
	ContainerStyle Style // nil keeps DefaultContainerStyle
	Class          string
}

func (p Props) Identifier() model.Identifier {
	return model.Identifier{
		ProfileID:       strings.TrimSpace(p.ProfileID),
		EthereumAddress: strings.TrimSpace(p.EthereumAddress),
	}
}

var (
	onClickPattern  = regexp.MustCompile(`^[A-Za-z_$][\w$]*(\.[A-Za-z_$][\w$]*)*$`)
	propertyPattern = regexp.MustCompile(`^-?[a-z][a-z0-9-]*$`)
)

// reservedOnClick lists globals and members that must never be reachable as a click handler.
var reservedOnClick = map[string]bool{
	"window": true, "self": true, "globalThis": true, "top": true, "parent": true, "frames": true, "opener": true,
	"document": true, "location": true, "history": true, "navigator": true, "localStorage": true, "sessionStorage": true,
	"eval": true, "Function": true, "constructor": true, "prototype": true, "__proto__": true,
	"setTimeout": true, "setInterval": true, "fetch": true, "XMLHttpRequest": true, "importScripts": true,
	"alert": true, "confirm": true, "prompt": true, "open": true, "postMessage": true,
	"assign": true, "replace": true, "call": true, "apply": true, "bind": true,
}

// ValidateOnClick accepts empty input or a dotted JavaScript identifier path such as "app.onCard".
// Paths touching browser built-ins such as eval or location.assign are rejected.
func ValidateOnClick(name string) error {
	if name == "" {
		return nil
	}
	if !onClickPattern.MatchString(name) {
		return ErrInvalidOnClick
	}
	for _, part := range strings.Split(name, ".") {
		if reservedOnClick[part] {
			return ErrInvalidOnClick
		}
	}
	return nil
}

// ParseStyle parses an inline style override such as "width: 100%; border-radius: 0".
// Values that could escape the declaration or load resources are rejected.
func ParseStyle(s string) (Style, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var style Style
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, ErrInvalidStyle
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if !propertyPattern.MatchString(prop) || value == "" || unsafeValue(value) {
			return nil, ErrInvalidStyle
		}
		style = append(style, Declaration{Property: prop, Value: value})
	}
	return style, nil
}

func unsafeValue(v string) bool {
	if strings.ContainsAny(v, `<>"'{}\;`) {
		return true
	}
	lower := strings.ToLower(v)
	return strings.Contains(lower, "url(") || strings.Contains(lower, "expression(") || strings.Contains(lower, "@import")
}
