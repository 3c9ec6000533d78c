// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package screens

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"
)

// DefaultRefreshDelay is how long a dashboard refresh takes.
const DefaultRefreshDelay = 2 * time.Second

// StatCard is one headline metric.
type StatCard struct {
	Title    string
	Value    string
	Subtitle string
	Color    pterm.Color
}

// Activity is an entry of the recent-activity list.
type Activity struct {
	Name     string
	When     string
	Duration string
	Strain   string
}

// Dashboard shows the headline metrics and recent activity.
// The values are fixed sample data until the WHOOP sync lands.
type Dashboard struct {
	Cards      []StatCard
	Activities []Activity

	// RefreshDelay overrides DefaultRefreshDelay when positive.
	RefreshDelay time.Duration
}

// NewDashboard returns the dashboard with its sample data.
func NewDashboard() *Dashboard {
	return &Dashboard{
		Cards: []StatCard{
			{Title: "Recovery", Value: "85%", Subtitle: "Well recovered", Color: pterm.FgGreen},
			{Title: "Sleep", Value: "7h 32m", Subtitle: "92% performance", Color: pterm.FgBlue},
			{Title: "Strain", Value: "12.4", Subtitle: "Moderate", Color: pterm.FgYellow},
			{Title: "HRV", Value: "65 ms", Subtitle: "+5 vs baseline", Color: pterm.FgMagenta},
		},
		Activities: []Activity{
			{Name: "Morning Run", When: "Today, 7:00 AM", Duration: "45 min", Strain: "10.2"},
			{Name: "Strength Training", When: "Yesterday, 6:30 PM", Duration: "60 min", Strain: "8.7"},
			{Name: "Yoga", When: "2 days ago", Duration: "30 min", Strain: "4.1"},
		},
	}
}

func (*Dashboard) Title() string { return "Dashboard" }

// Refresh waits for the refresh delay. No data is fetched.
// It returns ctx.Err() if the context ends first.
func (d *Dashboard) Refresh(ctx context.Context) error {
	delay := d.RefreshDelay
	if delay <= 0 {
		delay = DefaultRefreshDelay
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dashboard) Render(w io.Writer) error {
	panels := make([]pterm.Panel, 0, len(d.Cards))
	for _, c := range d.Cards {
		body := pterm.NewStyle(c.Color, pterm.Bold).Sprint(c.Value) + "\n" + pterm.NewStyle(pterm.FgGray).Sprint(c.Subtitle)
		panels = append(panels, pterm.Panel{Data: pterm.DefaultBox.WithTitle(c.Title).Sprint(body)})
	}
	cards, err := pterm.DefaultPanel.WithPanels(pterm.Panels{panels}).WithPadding(1).Srender()
	if err != nil {
		return err
	}

	data := pterm.TableData{{"Activity", "When", "Duration", "Strain"}}
	for _, a := range d.Activities {
		data = append(data, []string{a.Name, a.When, a.Duration, a.Strain})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	heading := pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("Recent Activity")
	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n", cards, heading, table)
	return err
}
