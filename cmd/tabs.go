// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fitdash/cli/internal/nav"
	"fitdash/cli/internal/screens"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardRefresh bool

// dashboardCmd shows the headline metrics and recent activity.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"home"},
	Short:   "Show recovery, sleep, strain and HRV at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, rt, ok, err := requireRoute(cmd, nav.RouteDashboard)
		if err != nil || !ok {
			return err
		}

		w := cmd.OutOrStdout()
		if err := (screens.TabBar{Tabs: rt.Tabs, Focused: nav.RouteDashboard}).Render(w); err != nil {
			return err
		}
		pterm.Fprintln(w)

		d := screens.NewDashboard()
		if dashboardRefresh {
			spinner, _ := pterm.DefaultSpinner.WithWriter(w).WithRemoveWhenDone(true).Start("Refreshing")
			err := d.Refresh(cmd.Context())
			if spinner != nil {
				_ = spinner.Stop()
			}
			if err != nil {
				return err
			}
			a.log.Debug("dashboard refreshed")
		}
		return d.Render(w)
	},
}

// tabCommand returns a command that renders the tab named route.
func tabCommand(route, short string) *cobra.Command {
	return &cobra.Command{
		Use:   route,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, rt, ok, err := requireRoute(cmd, route)
			if err != nil || !ok {
				return err
			}
			return renderTab(cmd, a, rt, route)
		},
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().BoolVar(&dashboardRefresh, "refresh", false, "Refresh before showing the dashboard")

	rootCmd.AddCommand(
		tabCommand(nav.RouteWorkouts, "Show your workouts"),
		tabCommand(nav.RouteSleep, "Show your sleep"),
		tabCommand(nav.RouteRecovery, "Show your recovery"),
		tabCommand(nav.RouteProfile, "Show your profile"),
	)
}
