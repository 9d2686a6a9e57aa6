package handler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/ui/components/profilecard"
)

// cardProps maps query parameters onto card props. An empty theme falls back to defaultTheme.
func cardProps(q url.Values, defaultTheme model.Theme) (profilecard.Props, error) {
	props := profilecard.Props{
		ProfileID:       strings.TrimSpace(q.Get("profileId")),
		EthereumAddress: strings.TrimSpace(q.Get("address")),
		OnClick:         strings.TrimSpace(q.Get("onclick")),
		Class:           q.Get("class"),
		Theme:           defaultTheme,
	}
	if props.EthereumAddress == "" {
		props.EthereumAddress = strings.TrimSpace(q.Get("ethereumAddress"))
	}

	if raw := q.Get("theme"); raw != "" {
		theme, err := model.ParseTheme(raw)
		if err != nil {
			return props, fmt.Errorf("%w: %q", err, raw)
		}
		props.Theme = theme
	}

	if props.OnClick != "" {
		err := profilecard.ValidateOnClick(props.OnClick)
		if err != nil {
			return props, err
		}
	}

	if raw := q.Get("style"); raw != "" {
		style, err := profilecard.ParseStyle(raw)
		if err != nil {
			return props, err
		}
		props.ContainerStyle = style
	}

	return props, nil
}
