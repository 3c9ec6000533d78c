// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package screens

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fitdash/cli/internal/backend"
	"fitdash/cli/internal/nav"
	"fitdash/cli/internal/session"

	"github.com/pterm/pterm"
)

func init() {
	pterm.DisableStyling()
}

func render(t *testing.T, s Screen) string {
	t.Helper()
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		t.Fatalf("%s.Render() error = %v", s.Title(), err)
	}
	return buf.String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestDashboardRender(t *testing.T) {
	out := render(t, NewDashboard())
	assertContains(t, out,
		"Recovery", "85%",
		"Sleep", "7h 32m",
		"Strain", "12.4",
		"HRV", "65 ms",
		"Recent Activity", "Morning Run", "Strength Training", "Yoga",
	)
}

func TestDashboardRefresh(t *testing.T) {
	t.Run("completes after the delay", func(t *testing.T) {
		d := NewDashboard()
		d.RefreshDelay = 10 * time.Millisecond
		start := time.Now()
		if err := d.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
			t.Errorf("Refresh() returned after %v", elapsed)
		}
	})

	t.Run("honours cancellation", func(t *testing.T) {
		d := NewDashboard()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := d.Refresh(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Refresh() error = %v, want context.Canceled", err)
		}
	})

	t.Run("leaves data unchanged", func(t *testing.T) {
		d := NewDashboard()
		d.RefreshDelay = time.Millisecond
		before := render(t, d)
		_ = d.Refresh(context.Background())
		if after := render(t, d); after != before {
			t.Error("Refresh() changed the rendering")
		}
	})
}

func TestPlaceholders(t *testing.T) {
	for _, name := range []string{nav.RouteWorkouts, nav.RouteSleep, nav.RouteRecovery} {
		s, ok := ForRoute(name)
		if !ok {
			t.Fatalf("ForRoute(%q) not found", name)
		}
		assertContains(t, render(t, s), s.Title(), "Under Development")
	}
	if _, ok := ForRoute(nav.RouteDashboard); ok {
		t.Error("ForRoute(dashboard) should be built by the caller")
	}
}

func TestWelcome(t *testing.T) {
	rt := nav.Select(session.State{})
	out := render(t, Welcome{Routes: rt.Routes, LastError: "Invalid email or password"})
	assertContains(t, out, "Fitness Dashboard", "fitdash login", "fitdash register", "Invalid email or password")
}

func TestTabBarShowsFocusedIcon(t *testing.T) {
	rt := nav.Select(session.State{Authenticated: true})
	out := render(t, TabBar{Tabs: rt.Tabs, Focused: nav.RouteSleep})
	assertContains(t, out, "[moon] Sleep", "[home-outline] Dashboard", "[person-outline] Profile")
	if strings.Contains(out, "[moon-outline]") {
		t.Errorf("focused tab rendered with outline icon:\n%s", out)
	}
}

func TestProfile(t *testing.T) {
	u := backend.User{
		ID: 1, Email: "user@example.com", FirstName: "Sam", LastName: "Lee",
		IsActive: true, CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	assertContains(t, render(t, Profile{User: u}), "Sam Lee", "user@example.com", "Mar 1, 2025")
	assertContains(t, render(t, Profile{Err: backend.ErrUnauthorized}), "could not be loaded")
}
