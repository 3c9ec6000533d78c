// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fitdash/cli/internal/backend"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		pterm.Fprintln(cmd.OutOrStdout(), "fitdash "+Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	backend.UserAgent = "fitdash-cli/" + Version
}
