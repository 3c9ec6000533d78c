// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package screens

import (
	"fmt"
	"io"

	"fitdash/cli/internal/backend"

	"github.com/pterm/pterm"
)

// Profile shows the signed-in user's account.
// When the profile could not be fetched, Err is set and a notice is shown instead.
type Profile struct {
	User backend.User
	Err  error
}

func (Profile) Title() string { return "Profile" }

func (p Profile) Render(w io.Writer) error {
	if p.Err != nil {
		body := "Your profile could not be loaded right now.\nRun 'fitdash login' if your session has expired."
		_, err := fmt.Fprintln(w, pterm.DefaultBox.WithTitle(p.Title()).WithPadding(1).Sprint(body))
		return err
	}

	u := p.User
	data := pterm.TableData{
		{"Name", u.DisplayName()},
		{"Email", u.Email},
		{"Active", yesNo(u.IsActive)},
		{"Verified", yesNo(u.IsVerified)},
	}
	if !u.CreatedAt.IsZero() {
		data = append(data, []string{"Member since", u.CreatedAt.Format("Jan 2, 2006")})
	}
	table, err := pterm.DefaultTable.WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, pterm.DefaultBox.WithTitle(p.Title()).WithPadding(1).Sprint(table))
	return err
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
