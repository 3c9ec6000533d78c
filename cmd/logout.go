// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd removes the stored access token.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored token",
	Long: `The logout command removes the access token from the OS keychain.
It always succeeds: if the keychain cannot be cleared, a warning is logged and
you are signed out anyway.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		a.session.Logout(cmd.Context())
		pterm.Fprintln(cmd.OutOrStdout(), "✅ Signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
