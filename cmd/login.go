// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"strings"
	"time"

	"fitdash/cli/internal/httperrors"
	"fitdash/cli/internal/nav"
	"fitdash/cli/internal/terminal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	loginEmail         string
	loginPasswordStdin bool
)

// loginCmd signs in with email and password and stores the access token.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in with your email and password",
	Long: `The login command exchanges your email and password for an access token and
stores it in the OS keychain. Later commands use the stored token until you run
'fitdash logout'.

The password is read without echo. Use --password-stdin to pipe it from a
script instead.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, rt, err := resolve(cmd)
		if err != nil {
			return err
		}
		if !rt.Has(nav.RouteLogin) {
			pterm.Fprintln(cmd.OutOrStdout(), "✅ Already signed in. Run 'fitdash logout' to switch accounts.")
			return nil
		}

		p := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout())
		email, password, err := readCredentials(p, loginEmail, loginPasswordStdin)
		if err != nil {
			return err
		}

		stop := startInlineSpinner(cmd.OutOrStdout(), "Signing in", spinnerFrames, 120*time.Millisecond)
		err = a.session.Login(cmd.Context(), email, password)
		stop()
		if err != nil {
			explainVerbose(cmd, a, err, "signing in")
			return err
		}

		pterm.Fprintln(cmd.OutOrStdout(), "🎉 Welcome back, "+email+"!")
		return nil
	},
}

// readCredentials returns the email and password, prompting for what the
// flags did not provide.
func readCredentials(p *terminal.Prompter, email string, passwordStdin bool) (string, string, error) {
	var err error
	if email == "" {
		if passwordStdin {
			return "", "", errors.New("--email is required with --password-stdin")
		}
		if email, err = p.Prompt("Email: "); err != nil {
			return "", "", err
		}
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return "", "", errors.New("email is required")
	}

	var password string
	if passwordStdin {
		password, err = p.ReadLine()
	} else {
		password, err = p.PromptSecret("Password: ")
	}
	if err != nil {
		return "", "", err
	}
	if password == "" {
		return "", "", errors.New("password is required")
	}
	return email, password, nil
}

// explainVerbose prints network troubleshooting hints under --verbose.
func explainVerbose(cmd *cobra.Command, a *app, err error, action string) {
	if !verbose {
		return
	}
	httperrors.Explain(cmd.ErrOrStderr(), err, action, httperrors.ExtractHostFromURL(a.cfg.API.URL))
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
}
