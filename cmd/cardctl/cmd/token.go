package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/lenscard/internal/config"
	"github.com/templui/lenscard/internal/service"
)

func TokenCmd() *cobra.Command {
	var subject string

	c := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for POST /snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			token, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry).Generate(subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	c.Flags().StringVar(&subject, "subject", "", "who the token is issued to")
	_ = c.MarkFlagRequired("subject")

	return c
}
