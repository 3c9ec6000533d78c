// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fitdash/cli/internal/backend"
	"fitdash/cli/internal/config"
	apperr "fitdash/cli/internal/errors"
	"fitdash/cli/internal/logging"
	"fitdash/cli/internal/session"
	"fitdash/cli/internal/tokenstore"

	"github.com/99designs/keyring"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	pterm.DisableStyling()
}

// fakeAPIServer serves the endpoints the commands use. The only valid
// credentials are user@example.com / pw.
func fakeAPIServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/token", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if r.PostForm.Get("username") != "user@example.com" || r.PostForm.Get("password") != "pw" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Incorrect email or password"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok1","refresh_token":"ref1","token_type":"bearer"}`))
	})
	mux.HandleFunc("/api/v1/auth/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":2,"email":"user@example.com","first_name":"Sam","last_name":"Lee"}`))
	})
	mux.HandleFunc("/api/v1/auth/users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":42,"email":"user@example.com","first_name":"Sam","last_name":"Lee","is_active":true}`))
	})
	mux.HandleFunc("/api/v1/auth/whoop/authorize", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"authorization_url":"https://api.prod.whoop.com/oauth/oauth2/auth?state=s1","state":"s1"}`))
	})
	// The API reports a missing link as a 500 wrapping its own 404.
	mux.HandleFunc("/api/v1/auth/whoop/disconnect", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Failed to disconnect: 404: No Whoop connection found"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// withFakeApp points newApp at srv and an in-memory keyring holding token.
func withFakeApp(t *testing.T, srv *httptest.Server, token string) tokenstore.Store {
	t.Helper()
	var items []keyring.Item
	if token != "" {
		items = append(items, keyring.Item{Key: tokenstore.KeyToken, Data: []byte(token)})
	}
	store := tokenstore.NewWithRing(keyring.NewArrayKeyring(items))

	orig := newApp
	t.Cleanup(func() { newApp = orig })
	newApp = func(cmd *cobra.Command) (*app, error) {
		cfg := config.Default()
		cfg.API.URL = srv.URL
		api := backend.New(srv.URL, backend.DefaultEndpoints(), 5*time.Second)
		return &app{
			cfg:     cfg,
			log:     logging.Discard(),
			api:     api,
			session: session.NewManager(api, store, nil),
		}, nil
	}
	return store
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	loginEmail, loginPasswordStdin = "", false
	registerEmail, registerFirstName, registerLastName, registerPasswordStdin = "", "", "", false
	dashboardRefresh, whoopNoBrowser, verbose, apiURL = false, false, false, ""

	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestRootShowsWelcomeWhenSignedOut(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "")
	out, err := run(t, "")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "Welcome", "fitdash login", "fitdash register")
}

func TestRootShowsDashboardWhenSignedIn(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "tok1")
	out, err := run(t, "")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "[home] Dashboard", "85%", "Morning Run")
}

func TestLogin(t *testing.T) {
	store := withFakeApp(t, fakeAPIServer(t), "")
	out, err := run(t, "pw\n", "login", "--email", "user@example.com", "--password-stdin")
	if err != nil {
		t.Fatalf("login error = %v\n%s", err, out)
	}
	assertContains(t, out, "Welcome back, user@example.com")
	if token, _ := store.Load(); token != "tok1" {
		t.Errorf("stored token = %q, want tok1", token)
	}
}

func TestLoginPromptsForCredentials(t *testing.T) {
	store := withFakeApp(t, fakeAPIServer(t), "")
	out, err := run(t, "user@example.com\npw\n", "login")
	if err != nil {
		t.Fatalf("login error = %v\n%s", err, out)
	}
	assertContains(t, out, "Email: ", "Password: ")
	if token, _ := store.Load(); token != "tok1" {
		t.Errorf("stored token = %q, want tok1", token)
	}
}

func TestLoginRejected(t *testing.T) {
	store := withFakeApp(t, fakeAPIServer(t), "")
	_, err := run(t, "wrong\n", "login", "--email", "user@example.com", "--password-stdin")
	if err == nil {
		t.Fatal("login with a wrong password should fail")
	}
	if got := apperr.Message(err); got != "Invalid email or password" {
		t.Errorf("message = %q", got)
	}
	if token, _ := store.Load(); token != "" {
		t.Errorf("stored token = %q after failed login", token)
	}
}

func TestLoginWhenSignedIn(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "tok1")
	out, err := run(t, "", "login")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "Already signed in")
}

func TestRegister(t *testing.T) {
	store := withFakeApp(t, fakeAPIServer(t), "")
	out, err := run(t, "pw\n", "register",
		"--email", "user@example.com", "--first-name", "Sam", "--last-name", "Lee", "--password-stdin")
	if err != nil {
		t.Fatalf("register error = %v\n%s", err, out)
	}
	if token, _ := store.Load(); token != "tok1" {
		t.Errorf("stored token = %q, want tok1", token)
	}
}

func TestRegisterFailsWhenLoginFails(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "")
	_, err := run(t, "other\n", "register", "--email", "user@example.com", "--password-stdin")
	if got := apperr.Message(err); got != "Registration failed" {
		t.Errorf("message = %q (err %v)", got, err)
	}
}

func TestLogout(t *testing.T) {
	store := withFakeApp(t, fakeAPIServer(t), "tok1")
	out, err := run(t, "", "logout")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "Signed out")
	if token, _ := store.Load(); token != "" {
		t.Errorf("stored token = %q after logout", token)
	}
}

func TestTabsAreGated(t *testing.T) {
	tests := []struct {
		args     []string
		token    string
		want     []string
		unwanted string
	}{
		{[]string{"dashboard"}, "", []string{"Welcome"}, "85%"},
		{[]string{"dashboard"}, "tok1", []string{"85%", "7h 32m", "12.4", "65 ms"}, "Welcome"},
		{[]string{"workouts"}, "tok1", []string{"[fitness] Workouts", "Under Development"}, ""},
		{[]string{"sleep"}, "tok1", []string{"[moon] Sleep", "Under Development"}, ""},
		{[]string{"recovery"}, "", []string{"Welcome"}, "Under Development"},
		{[]string{"profile"}, "tok1", []string{"[person] Profile", "Sam Lee", "user@example.com"}, ""},
		{[]string{"profile"}, "expired", []string{"could not be loaded"}, ""},
	}
	for _, tt := range tests {
		name := strings.Join(tt.args, " ") + "/token=" + tt.token
		t.Run(name, func(t *testing.T) {
			withFakeApp(t, fakeAPIServer(t), tt.token)
			out, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			assertContains(t, out, tt.want...)
			if tt.unwanted != "" && strings.Contains(out, tt.unwanted) {
				t.Errorf("output unexpectedly contains %q:\n%s", tt.unwanted, out)
			}
		})
	}
}

func TestWhoami(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "")
	out, err := run(t, "", "whoami")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "not signed in")

	withFakeApp(t, fakeAPIServer(t), "tok1")
	out, err = run(t, "", "me")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "Current user: Sam Lee <user@example.com>")
}

func TestWhoopConnect(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "tok1")

	var opened string
	orig := openBrowser
	t.Cleanup(func() { openBrowser = orig })
	openBrowser = func(url string) error {
		opened = url
		return nil
	}

	out, err := run(t, "", "whoop", "connect")
	if err != nil {
		t.Fatal(err)
	}
	want := "https://api.prod.whoop.com/oauth/oauth2/auth?state=s1"
	assertContains(t, out, want)
	if opened != want {
		t.Errorf("opened %q, want %q", opened, want)
	}
}

func TestWhoopDisconnectWithoutConnection(t *testing.T) {
	withFakeApp(t, fakeAPIServer(t), "tok1")
	out, err := run(t, "", "whoop", "disconnect")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "No WHOOP account is linked")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, out, "fitdash "+Version)
	if backend.UserAgent != "fitdash-cli/"+Version {
		t.Errorf("UserAgent = %q", backend.UserAgent)
	}
}
