// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fitdash/cli/internal/backend"
	"fitdash/cli/internal/nav"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var whoopNoBrowser bool

var whoopCmd = &cobra.Command{
	Use:   "whoop",
	Short: "Link or unlink your WHOOP account",
}

// whoopConnectCmd starts the WHOOP authorization in the browser.
var whoopConnectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Link your WHOOP account",
	Long: `The connect command asks the API for a WHOOP authorization link and opens it
in your browser. After you approve access on WHOOP's site, the API stores the
connection and your data starts syncing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, ok, err := requireRoute(cmd, nav.RouteProfile)
		if err != nil || !ok {
			return err
		}

		auth, err := a.api.AuthorizeWhoop(cmd.Context())
		if err != nil {
			explainVerbose(cmd, a, err, "contacting WHOOP")
			return err
		}
		a.log.Debug("whoop authorization", a.log.Args("state", auth.State))

		w := cmd.OutOrStdout()
		pterm.Fprintln(w, "Open this link to connect WHOOP:")
		pterm.Fprintln(w, auth.URL)
		pterm.Fprintln(w)
		if !whoopNoBrowser {
			if err := openBrowser(auth.URL); err != nil {
				a.log.Debug("could not open browser", a.log.Args("error", err.Error()))
			}
		}
		return nil
	},
}

// whoopDisconnectCmd removes the WHOOP connection of the signed-in user.
var whoopDisconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Unlink your WHOOP account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, ok, err := requireRoute(cmd, nav.RouteProfile)
		if err != nil || !ok {
			return err
		}

		u, err := a.session.CurrentUser(cmd.Context())
		if err != nil {
			explainVerbose(cmd, a, err, "fetching your account")
			return err
		}

		err = a.api.DisconnectWhoop(cmd.Context(), u.ID)
		if backend.IsNoWhoopConnection(err) {
			pterm.Fprintln(cmd.OutOrStdout(), "No WHOOP account is linked.")
			return nil
		}
		if err != nil {
			explainVerbose(cmd, a, err, "disconnecting WHOOP")
			return err
		}
		pterm.Fprintln(cmd.OutOrStdout(), "✅ WHOOP account unlinked")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoopCmd)
	whoopCmd.AddCommand(whoopConnectCmd, whoopDisconnectCmd)
	whoopConnectCmd.Flags().BoolVar(&whoopNoBrowser, "no-browser", false, "Print the link without opening a browser")
}
