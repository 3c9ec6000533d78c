// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"fitdash/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		path, _ := config.Path()

		c := a.cfg
		data := pterm.TableData{
			{"Key", "Value"},
			{"api.url", c.API.URL},
			{"api.timeout", c.API.Timeout.String()},
			{"log.level", c.Log.Level},
			{"keyring.backend", orDefault(c.Keyring.Backend)},
			{"keyring.dir", orDefault(c.Keyring.Dir)},
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		pterm.Fprintln(cmd.OutOrStdout(), table)
		if path != "" {
			pterm.Fprintln(cmd.OutOrStdout(), pterm.NewStyle(pterm.FgGray).Sprint("File: "+path))
		}
		return nil
	},
}

// configSetCmd writes one key to the config file.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long:  "Valid keys: " + strings.Join(config.Keys(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		if err := config.Set(path, args[0], args[1]); err != nil {
			return err
		}
		pterm.Fprintln(cmd.OutOrStdout(), "✅ "+args[0]+" = "+args[1])
		return nil
	},
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd)
}
