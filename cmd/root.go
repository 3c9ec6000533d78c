// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of the fitness dashboard.
// Each screen of the dashboard is a subcommand; which of them are reachable
// depends on whether a session token is stored. The root command renders the
// initial screen of the current route tree.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"fitdash/cli/internal/logging"
	"fitdash/cli/internal/nav"
	"fitdash/cli/internal/screens"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	apiURL  string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands.
// It shows the welcome screen when signed out and the dashboard when signed in.
var rootCmd = &cobra.Command{
	Use:   "fitdash",
	Short: "Fitness dashboard for your WHOOP data",
	Long: `fitdash is a terminal client for the fitness dashboard API.

Sign in with 'fitdash login' (or create an account with 'fitdash register'),
then browse the dashboard, workouts, sleep, recovery and profile screens.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, rt, err := resolve(cmd)
		if err != nil {
			return err
		}
		return renderTree(cmd, a, rt)
	},
}

// renderTree renders the initial screen of rt.
func renderTree(cmd *cobra.Command, a *app, rt nav.RouteTree) error {
	w := cmd.OutOrStdout()
	switch rt.Kind {
	case nav.TreeLoading:
		return screens.Loading{}.Render(w)
	case nav.TreeUnauthenticated:
		return screens.Welcome{Routes: rt.Routes, LastError: a.session.State().LastError}.Render(w)
	default:
		return renderTab(cmd, a, rt, rt.Initial)
	}
}

// renderTab renders the tab bar with route focused, then the route's screen.
func renderTab(cmd *cobra.Command, a *app, rt nav.RouteTree, route string) error {
	w := cmd.OutOrStdout()
	if err := (screens.TabBar{Tabs: rt.Tabs, Focused: route}).Render(w); err != nil {
		return err
	}
	pterm.Fprintln(w)

	var s screens.Screen
	switch route {
	case nav.RouteDashboard:
		s = screens.NewDashboard()
	case nav.RouteProfile:
		u, err := a.session.CurrentUser(cmd.Context())
		if err != nil {
			a.log.Warn("could not load profile", a.log.Args("error", logging.PresentError(err, true)))
		}
		s = screens.Profile{User: u, Err: err}
	default:
		var ok bool
		if s, ok = screens.ForRoute(route); !ok {
			return nil
		}
	}
	return s.Render(w)
}

// Execute runs the CLI application.
// Errors are printed to stderr, with their cause only under --verbose, and the
// process exits with status 1.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.WithWriter(os.Stderr).Println(logging.PresentError(err, verbose))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides api.url)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
