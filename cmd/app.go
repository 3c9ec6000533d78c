// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fitdash/cli/internal/backend"
	"fitdash/cli/internal/config"
	"fitdash/cli/internal/logging"
	"fitdash/cli/internal/nav"
	"fitdash/cli/internal/session"
	"fitdash/cli/internal/tokenstore"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// app bundles the per-invocation dependencies of a command.
type app struct {
	cfg     config.Config
	log     *pterm.Logger
	api     backend.API
	session *session.Manager
}

// newApp builds the app for cmd from config, environment and flags.
// Tests replace it to inject a fake API and an in-memory keyring.
var newApp = func(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.API.URL = apiURL
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	api := backend.New(cfg.API.URL, backend.DefaultEndpoints(), cfg.API.Timeout)
	store := tokenstore.New(tokenstore.Config{Backend: cfg.Keyring.Backend, FileDir: cfg.Keyring.Dir})

	log.Debug("configured", log.Args("api_url", cfg.API.URL, "timeout", cfg.API.Timeout.String()))
	return &app{
		cfg:     cfg,
		log:     log,
		api:     api,
		session: session.NewManager(api, store, log),
	}, nil
}

// resolve builds the app and resolves the stored session. Route tree changes
// for the rest of the command are logged at debug level.
func resolve(cmd *cobra.Command) (*app, nav.RouteTree, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, nav.RouteTree{}, err
	}
	nav.Follow(a.session, func(rt nav.RouteTree) {
		a.log.Debug("route tree", a.log.Args("tree", rt.Kind.String(), "initial", rt.Initial))
	})
	a.session.CheckAuth(cmd.Context())
	return a, nav.Select(a.session.State()), nil
}

// requireRoute resolves the session and reports whether route is reachable.
// When it is not, the welcome screen is rendered in its place.
func requireRoute(cmd *cobra.Command, route string) (*app, nav.RouteTree, bool, error) {
	a, rt, err := resolve(cmd)
	if err != nil {
		return nil, rt, false, err
	}
	if rt.Has(route) {
		return a, rt, true, nil
	}
	a.log.Debug("route not reachable", a.log.Args("route", route, "tree", rt.Kind.String()))
	return a, rt, false, renderTree(cmd, a, rt)
}
