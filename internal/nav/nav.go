// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package nav selects which set of screens is reachable for a session state.
//
// Selection is a pure function of session.State. Commands ask the selected
// RouteTree whether a route is present before rendering it.
package nav

import (
	"sync"

	"fitdash/cli/internal/session"
)

// Tree identifies a route tree.
type Tree int

const (
	// TreeLoading shows only a loading indicator.
	TreeLoading Tree = iota
	// TreeUnauthenticated holds the welcome, login and register screens.
	TreeUnauthenticated
	// TreeAuthenticated holds the tab bar.
	TreeAuthenticated
)

func (t Tree) String() string {
	switch t {
	case TreeLoading:
		return "loading"
	case TreeUnauthenticated:
		return "unauthenticated"
	case TreeAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Route names.
const (
	RouteWelcome   = "welcome"
	RouteLogin     = "login"
	RouteRegister  = "register"
	RouteDashboard = "dashboard"
	RouteWorkouts  = "workouts"
	RouteSleep     = "sleep"
	RouteRecovery  = "recovery"
	RouteProfile   = "profile"
)

// Route is a named screen.
type Route struct {
	Name  string
	Title string
}

// Icon is a pair of glyph names: filled when the tab is focused, outline otherwise.
type Icon struct {
	Focused   string
	Unfocused string
}

// Tab is a route shown in the tab bar.
type Tab struct {
	Route
	Icon Icon
}

// IconFor returns the icon name for the given focus state.
func (t Tab) IconFor(focused bool) string {
	if focused {
		return t.Icon.Focused
	}
	return t.Icon.Unfocused
}

// RouteTree is the set of navigable screens for one session state.
type RouteTree struct {
	Kind    Tree
	Routes  []Route // stack routes; empty for the authenticated and loading trees
	Tabs    []Tab   // tab routes; only for the authenticated tree
	Initial string  // initial route, "" while loading
}

// Has reports whether the named route is reachable in this tree.
func (rt RouteTree) Has(name string) bool {
	for _, r := range rt.Routes {
		if r.Name == name {
			return true
		}
	}
	for _, t := range rt.Tabs {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Tab returns the tab with the given name.
func (rt RouteTree) Tab(name string) (Tab, bool) {
	for _, t := range rt.Tabs {
		if t.Name == name {
			return t, true
		}
	}
	return Tab{}, false
}

var unauthenticatedRoutes = []Route{
	{Name: RouteWelcome, Title: "Welcome"},
	{Name: RouteLogin, Title: "Sign In"},
	{Name: RouteRegister, Title: "Create Account"},
}

var authenticatedTabs = []Tab{
	{Route{RouteDashboard, "Dashboard"}, Icon{"home", "home-outline"}},
	{Route{RouteWorkouts, "Workouts"}, Icon{"fitness", "fitness-outline"}},
	{Route{RouteSleep, "Sleep"}, Icon{"moon", "moon-outline"}},
	{Route{RouteRecovery, "Recovery"}, Icon{"heart", "heart-outline"}},
	{Route{RouteProfile, "Profile"}, Icon{"person", "person-outline"}},
}

// Select returns the route tree for a session state.
// Loading wins over authentication so nothing is shown before CheckAuth resolves.
func Select(s session.State) RouteTree {
	switch {
	case s.Loading:
		return RouteTree{Kind: TreeLoading}
	case !s.Authenticated:
		return RouteTree{
			Kind:    TreeUnauthenticated,
			Routes:  append([]Route(nil), unauthenticatedRoutes...),
			Initial: RouteWelcome,
		}
	default:
		return RouteTree{
			Kind:    TreeAuthenticated,
			Tabs:    append([]Tab(nil), authenticatedTabs...),
			Initial: RouteDashboard,
		}
	}
}

// Source is the part of session.Manager that navigation observes.
type Source interface {
	State() session.State
	Subscribe(fn func(session.State)) (cancel func())
}

// Follow calls fn with the tree for the current state, then again each time a
// state change selects a different kind of tree. Changes that keep the same
// tree (a new LastError, say) are not reported. The returned stop function
// ends the subscription.
func Follow(src Source, fn func(RouteTree)) (stop func()) {
	var mu sync.Mutex
	current := Select(src.State())
	fn(current)

	return src.Subscribe(func(s session.State) {
		next := Select(s)
		mu.Lock()
		changed := next.Kind != current.Kind
		if changed {
			current = next
		}
		mu.Unlock()
		if changed {
			fn(next)
		}
	})
}
