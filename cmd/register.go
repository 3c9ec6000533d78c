// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"
	"time"

	"fitdash/cli/internal/nav"
	"fitdash/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	registerEmail         string
	registerFirstName     string
	registerLastName      string
	registerPasswordStdin bool
)

// registerCmd creates an account and signs in with it.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create an account and sign in",
	Long: `The register command creates a new account and then signs in with the same
email and password. The account is only usable once that sign-in succeeds.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, rt, err := resolve(cmd)
		if err != nil {
			return err
		}
		if !rt.Has(nav.RouteRegister) {
			pterm.Fprintln(cmd.OutOrStdout(), "✅ Already signed in. Run 'fitdash logout' to create another account.")
			return nil
		}

		p := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout())
		first, last := registerFirstName, registerLastName
		if first == "" && !registerPasswordStdin {
			if first, err = p.Prompt("First name: "); err != nil {
				return err
			}
		}
		if last == "" && !registerPasswordStdin {
			if last, err = p.Prompt("Last name: "); err != nil {
				return err
			}
		}
		email, password, err := readCredentials(p, registerEmail, registerPasswordStdin)
		if err != nil {
			return err
		}

		stop := startInlineSpinner(cmd.OutOrStdout(), "Creating your account", spinnerFrames, 120*time.Millisecond)
		err = a.session.Register(cmd.Context(), email, password, strings.TrimSpace(first), strings.TrimSpace(last))
		stop()
		if err != nil {
			explainVerbose(cmd, a, err, "creating your account")
			return err
		}

		pterm.Fprintln(cmd.OutOrStdout(), "🌟 Welcome aboard, "+email+"!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "Last name")
	registerCmd.Flags().BoolVar(&registerPasswordStdin, "password-stdin", false, "Read the password from stdin")
}
