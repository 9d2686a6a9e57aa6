package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/templui/lenscard/internal/config"
	"github.com/templui/lenscard/internal/lens"
	"github.com/templui/lenscard/internal/logger"
	"github.com/templui/lenscard/internal/model"
	"github.com/templui/lenscard/internal/service"
	"github.com/templui/lenscard/internal/ui/components/profilecard"
	"github.com/templui/lenscard/internal/ui/pages"
)

var errNoCard = errors.New("no card rendered, check the identifier")

type renderFlags struct {
	profileID string
	address   string
	theme     string
	class     string
	style     string
	onClick   string
	page      bool
}

func RenderCmd() *cobra.Command {
	var f renderFlags

	c := &cobra.Command{
		Use:   "render",
		Short: "Print the card HTML for a profile",
		Example: `  cardctl render --profile-id 0x01
  cardctl render --address 0x7241... --theme dark --page > card.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			// Logs go to stderr so stdout only carries HTML.
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), cfg.IsDevelopment(), "", cfg.AppEnv))

			if f.theme == "" {
				f.theme = cfg.DefaultTheme
			}
			props, err := f.props()
			if err != nil {
				return err
			}

			client := lens.NewClient(lens.Options{
				Endpoint: cfg.LensAPIURL,
				Timeout:  cfg.LensTimeout,
				PageSize: cfg.FollowersPerPage,
			})
			fetcher := service.NewProfileService(client, cfg.IPFSGateway)
			opts := profilecard.Options{ProfileBaseURL: cfg.ProfileBaseURL}

			return renderCard(cmd.Context(), cmd.OutOrStdout(), fetcher, opts, props, f.page)
		},
	}

	c.Flags().StringVar(&f.profileID, "profile-id", "", "Lens profile ID (takes precedence over --address)")
	c.Flags().StringVar(&f.address, "address", "", "Ethereum address whose default profile is shown")
	c.Flags().StringVar(&f.theme, "theme", "", "default or dark (DEFAULT_THEME when empty)")
	c.Flags().StringVar(&f.class, "class", "", "extra CSS classes for the container")
	c.Flags().StringVar(&f.style, "style", "", "container style override, e.g. \"width: 400px\"")
	c.Flags().StringVar(&f.onClick, "onclick", "", "host page JS function called with the handle on click")
	c.Flags().BoolVar(&f.page, "page", false, "wrap the card in a standalone HTML document")

	return c
}

func (f renderFlags) props() (profilecard.Props, error) {
	theme, err := model.ParseTheme(f.theme)
	if err != nil {
		return profilecard.Props{}, fmt.Errorf("--theme %q: %w", f.theme, err)
	}

	props := profilecard.Props{
		ProfileID:       f.profileID,
		EthereumAddress: f.address,
		Theme:           theme,
		Class:           f.class,
		OnClick:         f.onClick,
	}
	if props.Identifier().Empty() {
		return props, fmt.Errorf("one of --profile-id or --address is required: %w", service.ErrMissingIdentifier)
	}
	if f.onClick != "" {
		err = profilecard.ValidateOnClick(f.onClick)
		if err != nil {
			return props, err
		}
	}
	if f.style != "" {
		props.ContainerStyle, err = profilecard.ParseStyle(f.style)
		if err != nil {
			return props, err
		}
	}
	return props, nil
}

func renderCard(ctx context.Context, w io.Writer, fetcher profilecard.Fetcher, opts profilecard.Options, props profilecard.Props, page bool) error {
	widget := profilecard.Load(ctx, fetcher, opts, props)
	profile := widget.Profile()
	if profile == nil {
		return errNoCard
	}

	component := widget.Component()
	if page {
		component = pages.Embed(profile.Handle, component)
	}
	err := component.Render(ctx, w)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
