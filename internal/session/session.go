// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the client's authentication state.
//
// A Manager is created once per process in the loading state, resolved by
// CheckAuth, and mutated only by Login, Register and Logout. The presence of a
// stored access token is the sole signal of being authenticated: there is no
// expiry check and the refresh token returned by the API is discarded.
//
// Network and storage failures are reduced at this boundary to one of two
// user-facing messages ("Invalid email or password", "Registration failed")
// and returned as kinded errors that still wrap the cause. Logout never fails.
package session

import (
	"context"
	"sync"

	"fitdash/cli/internal/backend"
	apperr "fitdash/cli/internal/errors"
	"fitdash/cli/internal/logging"
	"fitdash/cli/internal/tokenstore"

	"github.com/pterm/pterm"
)

// State is a snapshot of the session.
type State struct {
	Authenticated bool
	Loading       bool
	// LastError is the most recent user-facing error, or "".
	LastError string
}

// Manager coordinates the backend, the token store and the session state.
//
// Auth operations are serialized: a second Login started while one is in
// flight waits for the first to finish instead of racing it. State reads
// never wait on I/O.
type Manager struct {
	be    backend.API
	store tokenstore.Store
	log   *pterm.Logger

	op sync.Mutex // serializes CheckAuth, Login, Register, Logout

	mu     sync.RWMutex
	state  State
	subs   map[int]func(State)
	nextID int
}

// NewManager returns a Manager in the loading state.
// A nil logger discards log output.
func NewManager(be backend.API, store tokenstore.Store, log *pterm.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{
		be:    be,
		store: store,
		log:   log,
		state: State{Loading: true},
		subs:  make(map[int]func(State)),
	}
}

// State returns the current session snapshot.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Subscribe registers fn to receive a snapshot after every state change.
// Callbacks run synchronously on the goroutine that made the change.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// update applies fn to the state and notifies subscribers outside the lock.
func (m *Manager) update(fn func(*State)) {
	m.mu.Lock()
	fn(&m.state)
	snapshot := m.state
	subs := make([]func(State), 0, len(m.subs))
	for _, s := range m.subs {
		subs = append(subs, s)
	}
	m.mu.Unlock()

	for _, s := range subs {
		s(snapshot)
	}
}

// CheckAuth resolves the startup state from the token store.
// A read failure is logged and treated as not authenticated.
func (m *Manager) CheckAuth(ctx context.Context) {
	m.op.Lock()
	defer m.op.Unlock()

	token, err := m.store.Load()
	if err != nil {
		m.log.Warn("could not read stored token; continuing signed out",
			m.log.Args("error", logging.PresentError(err, true)))
		token = ""
	}
	m.update(func(s *State) {
		s.Authenticated = token != ""
		s.Loading = false
	})
}

// Login exchanges credentials for an access token and persists it.
// On failure LastError is set to "Invalid email or password" and an
// auth_failed error wrapping the cause is returned.
func (m *Manager) Login(ctx context.Context, identifier, secret string) error {
	m.op.Lock()
	defer m.op.Unlock()

	m.update(func(s *State) {
		s.Loading = true
		s.LastError = ""
	})
	defer m.update(func(s *State) { s.Loading = false })

	return m.login(ctx, identifier, secret)
}

// login performs the token exchange. Callers hold m.op and manage Loading.
func (m *Manager) login(ctx context.Context, identifier, secret string) error {
	tok, err := m.be.IssueToken(ctx, identifier, secret)
	if err == nil {
		err = m.store.Save(tok.AccessToken)
		if err != nil {
			err = apperr.Wrap(apperr.StorageFailed, "could not store access token", err)
		}
	}
	if err != nil {
		m.log.Debug("login failed", m.log.Args("user", identifier, "error", logging.PresentError(err, true)))
		m.update(func(s *State) { s.LastError = apperr.MsgInvalidCredentials })
		return apperr.Wrap(apperr.AuthFailed, apperr.MsgInvalidCredentials, err)
	}

	m.log.Debug("login succeeded", m.log.Args("user", identifier, "token_type", tok.TokenType))
	m.update(func(s *State) { s.Authenticated = true })
	return nil
}

// Register creates an account and then logs in with the same credentials.
// Registration alone never establishes a session. Any failure, including the
// follow-up login, sets LastError to "Registration failed" and returns a
// registration_failed error wrapping the cause.
func (m *Manager) Register(ctx context.Context, email, secret, givenName, familyName string) error {
	m.op.Lock()
	defer m.op.Unlock()

	m.update(func(s *State) {
		s.Loading = true
		s.LastError = ""
	})
	defer m.update(func(s *State) { s.Loading = false })

	_, err := m.be.CreateUser(ctx, backend.NewUser{
		Email:     email,
		Password:  secret,
		FirstName: givenName,
		LastName:  familyName,
	})
	if err == nil {
		m.log.Debug("account created", m.log.Args("email", email))
		err = m.login(ctx, email, secret)
	}
	if err != nil {
		m.log.Debug("registration failed", m.log.Args("email", email, "error", logging.PresentError(err, true)))
		m.update(func(s *State) { s.LastError = apperr.MsgRegistrationFailed })
		return apperr.Wrap(apperr.RegistrationFailed, apperr.MsgRegistrationFailed, err)
	}
	return nil
}

// Logout clears the stored token and the session. It never fails: storage
// errors are logged and the session is signed out regardless.
func (m *Manager) Logout(ctx context.Context) {
	m.op.Lock()
	defer m.op.Unlock()

	if err := m.store.Clear(); err != nil {
		m.log.Warn("could not clear stored token", m.log.Args("error", logging.PresentError(err, true)))
	}
	m.update(func(s *State) {
		s.Authenticated = false
		s.LastError = ""
	})
}

// AccessToken returns the stored token, or a not_authenticated error when none is stored.
func (m *Manager) AccessToken() (string, error) {
	token, err := m.store.Load()
	if err != nil {
		return "", apperr.Wrap(apperr.StorageFailed, "could not read stored token", err)
	}
	if token == "" {
		return "", apperr.New(apperr.NotAuthenticated, "not logged in")
	}
	return token, nil
}

// CurrentUser fetches the profile of the signed-in user. It does not change
// the session state, even when the API rejects the token.
func (m *Manager) CurrentUser(ctx context.Context) (backend.User, error) {
	token, err := m.AccessToken()
	if err != nil {
		return backend.User{}, err
	}
	return m.be.GetMe(ctx, token)
}
