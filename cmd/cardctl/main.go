package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/templui/lenscard/cmd/cardctl/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "cardctl",
		Short:        "Render Lens profile cards and manage publishing",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cmd.RenderCmd())
	rootCmd.AddCommand(cmd.TokenCmd())
	rootCmd.AddCommand(cmd.MigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
