// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// IssueToken calls POST /api/v1/auth/token with a form-encoded password grant:
// grant_type=password&username=<id>&password=<secret>.
// The response carries access_token, refresh_token and token_type.
func (h *HTTP) IssueToken(ctx context.Context, username, password string) (Token, error) {
	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL: h.url(h.endpoints.Token),
			// No client credentials: keep the body to exactly the three grant fields.
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, h.client)
	tok, err := conf.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return Token{}, fmt.Errorf("issue token: %w", fromRetrieveError("token", err))
	}

	return Token{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
	}, nil
}

// bearerClient returns an HTTP client that authenticates every request with accessToken.
func (h *HTTP) bearerClient(ctx context.Context, accessToken string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, h.client)
	c := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))
	c.Timeout = h.client.Timeout
	return c
}
