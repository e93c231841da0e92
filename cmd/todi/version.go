package main

import (
	"strings"

	"github.com/aretw0/todi"
	"github.com/aretw0/todi/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of todi",
	Run: func(cmd *cobra.Command, args []string) {
		tui.PrintBanner(cmd.OutOrStdout(), strings.TrimSpace(todi.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
