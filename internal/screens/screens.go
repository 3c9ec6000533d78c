// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package screens renders the dashboard's screens to a terminal.
//
// Screens are presentational: they take already-resolved data and write a
// pterm rendering of it. None of them talk to the backend.
package screens

import (
	"fmt"
	"io"
	"strings"

	"fitdash/cli/internal/nav"

	"github.com/pterm/pterm"
)

// Screen is a renderable view.
type Screen interface {
	Title() string
	Render(w io.Writer) error
}

// Placeholder is shown for screens that have no content yet.
type Placeholder struct {
	Name string
}

func (p Placeholder) Title() string { return p.Name }

func (p Placeholder) Render(w io.Writer) error {
	body := pterm.NewStyle(pterm.FgGray).Sprint("Under Development")
	_, err := fmt.Fprintln(w, pterm.DefaultBox.WithTitle(p.Name).WithPadding(1).Sprint(body))
	return err
}

// Welcome is the entry screen of the unauthenticated tree.
type Welcome struct {
	// Routes are the reachable routes, shown as next steps.
	Routes []nav.Route
	// LastError is the most recent session error, if any.
	LastError string
}

func (Welcome) Title() string { return "Welcome" }

var welcomeHints = map[string]string{
	nav.RouteLogin:    "fitdash login",
	nav.RouteRegister: "fitdash register",
}

func (s Welcome) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString(pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Fitness Dashboard"))
	b.WriteString("\nTrack recovery, sleep and strain from your WHOOP.\n")

	var items []pterm.BulletListItem
	for _, r := range s.Routes {
		hint, ok := welcomeHints[r.Name]
		if !ok {
			continue
		}
		items = append(items, pterm.BulletListItem{Level: 0, Text: fmt.Sprintf("%s: %s", r.Title, hint)})
	}
	list, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}

	out := pterm.DefaultBox.WithTitle(s.Title()).WithPadding(1).Sprint(b.String() + "\n" + strings.TrimRight(list, "\n"))
	if _, err := fmt.Fprintln(w, out); err != nil {
		return err
	}
	if s.LastError != "" {
		_, err = fmt.Fprintln(w, pterm.Error.Sprint(s.LastError))
	}
	return err
}

// Loading is shown while the stored session is being resolved.
type Loading struct{}

func (Loading) Title() string { return "Loading" }

func (Loading) Render(w io.Writer) error {
	_, err := fmt.Fprintln(w, "Loading…")
	return err
}

// TabBar renders the tabs of the authenticated tree with one of them focused.
type TabBar struct {
	Tabs    []nav.Tab
	Focused string
}

func (TabBar) Title() string { return "Tabs" }

func (t TabBar) Render(w io.Writer) error {
	parts := make([]string, 0, len(t.Tabs))
	for _, tab := range t.Tabs {
		focused := tab.Name == t.Focused
		label := fmt.Sprintf("[%s] %s", tab.IconFor(focused), tab.Title)
		if focused {
			label = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint(label)
		} else {
			label = pterm.NewStyle(pterm.FgGray).Sprint(label)
		}
		parts = append(parts, label)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}

// ForRoute returns the screen for an authenticated tab that needs no data.
// Dashboard and profile are built by the caller.
func ForRoute(name string) (Screen, bool) {
	switch name {
	case nav.RouteWorkouts:
		return Placeholder{Name: "Workouts"}, true
	case nav.RouteSleep:
		return Placeholder{Name: "Sleep"}, true
	case nav.RouteRecovery:
		return Placeholder{Name: "Recovery"}, true
	}
	return nil, false
}
