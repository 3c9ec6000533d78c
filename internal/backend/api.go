// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the fitness dashboard REST API.
// It defines the API contract for authentication, account management and the
// WHOOP link endpoints, plus an HTTP implementation of it.
package backend

import (
	"context"
	"time"
)

// API defines backend operations the CLI depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// IssueToken exchanges an identifier and secret for tokens using the
	// OAuth2 password grant.
	IssueToken(ctx context.Context, username, password string) (Token, error)
	// CreateUser registers a new account. It does not establish a session.
	CreateUser(ctx context.Context, u NewUser) (User, error)
	// GetMe returns the profile of the user the access token belongs to.
	GetMe(ctx context.Context, accessToken string) (User, error)
	// AuthorizeWhoop starts the WHOOP OAuth flow and returns where to send the user.
	AuthorizeWhoop(ctx context.Context) (WhoopAuthorization, error)
	// DisconnectWhoop removes the stored WHOOP connection of a user.
	DisconnectWhoop(ctx context.Context, userID int) error
}

// Token is the token endpoint response.
type Token struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// NewUser is the payload of the user-creation endpoint.
type NewUser struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// User is an account as returned by the users endpoints.
type User struct {
	ID         int       `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// DisplayName returns "First Last", falling back to the email.
func (u User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// WhoopAuthorization is where to send the user to link a WHOOP account.
type WhoopAuthorization struct {
	URL   string `json:"authorization_url"`
	State string `json:"state"`
}

// Endpoints contains REST API endpoint paths.
type Endpoints struct {
	Token           string // e.g., "/api/v1/auth/token"
	Users           string // e.g., "/api/v1/auth/users"
	Me              string // e.g., "/api/v1/auth/users/me"
	WhoopAuthorize  string // e.g., "/api/v1/auth/whoop/authorize"
	WhoopDisconnect string // e.g., "/api/v1/auth/whoop/disconnect"
}

// DefaultEndpoints returns the paths served by the v1 API.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Token:           "/api/v1/auth/token",
		Users:           "/api/v1/auth/users",
		Me:              "/api/v1/auth/users/me",
		WhoopAuthorize:  "/api/v1/auth/whoop/authorize",
		WhoopDisconnect: "/api/v1/auth/whoop/disconnect",
	}
}
