// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	apperr "fitdash/cli/internal/errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// whoamiCmd shows the account the stored token belongs to.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the signed-in account",
	Long: `The whoami command asks the API who the stored token belongs to.
If no token is stored it tells you how to sign in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		u, err := a.session.CurrentUser(cmd.Context())
		if apperr.KindOf(err) == apperr.NotAuthenticated {
			pterm.Fprintln(cmd.OutOrStdout(), "🔒 You're not signed in yet!")
			pterm.Fprintln(cmd.OutOrStdout(), "   Run 'fitdash login' to get started.")
			return nil
		}
		if err != nil {
			explainVerbose(cmd, a, err, "fetching your account")
			return err
		}

		pterm.Fprintln(cmd.OutOrStdout(), fmt.Sprintf("👤 Current user: %s <%s>", u.DisplayName(), u.Email))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
