// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// noWhoopConnection is the API's detail when a user has no WHOOP link.
const noWhoopConnection = "No Whoop connection found"

// AuthorizeWhoop calls GET /api/v1/auth/whoop/authorize.
// The returned URL is where the user grants the dashboard access to WHOOP.
func (h *HTTP) AuthorizeWhoop(ctx context.Context) (WhoopAuthorization, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url(h.endpoints.WhoopAuthorize), nil)
	if err != nil {
		return WhoopAuthorization{}, err
	}

	var auth WhoopAuthorization
	if err := do(h.client, req, "whoop-authorize", &auth); err != nil {
		return WhoopAuthorization{}, err
	}
	if auth.URL == "" {
		return WhoopAuthorization{}, errors.New("whoop-authorize: empty authorization_url")
	}
	return auth, nil
}

// DisconnectWhoop calls DELETE /api/v1/auth/whoop/disconnect?user_id=<id>.
// Use IsNoWhoopConnection to tell a missing link apart from a failure.
func (h *HTTP) DisconnectWhoop(ctx context.Context, userID int) error {
	u := h.url(h.endpoints.WhoopDisconnect) + "?" + url.Values{"user_id": {strconv.Itoa(userID)}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	return do(h.client, req, "whoop-disconnect", nil)
}

// IsNoWhoopConnection reports whether err says the user has no WHOOP link.
// The API answers either 404 or a 500 whose detail wraps the 404 message
// ("Failed to disconnect: 404: No Whoop connection found").
func IsNoWhoopConnection(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusNotFound || strings.Contains(se.Detail, noWhoopConnection)
}
