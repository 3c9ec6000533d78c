// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateUser calls POST /api/v1/auth/users with a JSON body
// { email, password, first_name, last_name } and returns the created account.
func (h *HTTP) CreateUser(ctx context.Context, u NewUser) (User, error) {
	body, err := json.Marshal(u)
	if err != nil {
		return User{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url(h.endpoints.Users), bytes.NewReader(body))
	if err != nil {
		return User{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created User
	if err := do(h.client, req, "create-user", &created); err != nil {
		return User{}, err
	}
	return created, nil
}

// GetMe calls GET /api/v1/auth/users/me with Authorization: Bearer <token>.
func (h *HTTP) GetMe(ctx context.Context, accessToken string) (User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url(h.endpoints.Me), nil)
	if err != nil {
		return User{}, err
	}

	var me User
	if err := do(h.bearerClient(ctx, accessToken), req, "get-me", &me); err != nil {
		return User{}, err
	}
	return me, nil
}

// do sends req and decodes a 2xx JSON body into out (when non-nil).
// Any other status becomes a *StatusError.
func do(c *http.Client, req *http.Request, op string, out any) error {
	resp, err := c.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(op, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
