// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"

	"fitdash/cli/internal/backend"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Class
	}{
		{"nil", nil, ClassNone},
		{"unauthorized", &backend.StatusError{Op: "token", StatusCode: 401}, ClassNone},
		{"wrapped server error", fmt.Errorf("issue token: %w", &backend.StatusError{StatusCode: 503}), ClassServer},
		{"deadline", &url.Error{Op: "Post", URL: "http://x", Err: context.DeadlineExceeded}, ClassTimeout},
		{"dns", &url.Error{Op: "Get", URL: "http://nope", Err: &net.DNSError{Name: "nope"}}, ClassDNS},
		{"refused", &url.Error{Op: "Get", URL: "http://x", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}, ClassRefused},
		{"tls", errors.New("tls: failed to verify certificate: x509: unknown authority"), ClassTLS},
		{"other transport", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("EOF")}, ClassNetwork},
		{"plain error", errors.New("something else"), ClassNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExplain(t *testing.T) {
	var buf bytes.Buffer
	refused := &url.Error{Op: "Post", URL: "http://localhost:8000", Err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}}
	if !Explain(&buf, refused, "signing in", "localhost:8000") {
		t.Fatal("Explain() = false for a refused connection")
	}
	for _, want := range []string{"Connection refused while signing in", "localhost:8000"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	if Explain(&buf, &backend.StatusError{StatusCode: 401}, "signing in", "localhost:8000") {
		t.Error("Explain() = true for rejected credentials")
	}
	if buf.Len() != 0 {
		t.Errorf("Explain() wrote %q for rejected credentials", buf.String())
	}
}

func TestExtractHostFromURL(t *testing.T) {
	if got := ExtractHostFromURL("http://localhost:8000/api"); got != "localhost:8000" {
		t.Errorf("ExtractHostFromURL() = %q", got)
	}
	if got := ExtractHostFromURL("::bad"); got != "server" {
		t.Errorf("ExtractHostFromURL(bad) = %q", got)
	}
}
