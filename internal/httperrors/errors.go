// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors explains failed API requests in terms a user can act on.
package httperrors

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"strings"
	"syscall"

	"fitdash/cli/internal/backend"

	"github.com/pterm/pterm"
)

// Class is the kind of failure behind a request error.
type Class int

const (
	// ClassNone means the error is not a transport or server failure,
	// e.g. rejected credentials.
	ClassNone Class = iota
	ClassTimeout
	ClassDNS
	ClassRefused
	ClassTLS
	ClassServer
	ClassNetwork
)

// Classify inspects err for a network or server-side failure.
func Classify(err error) Class {
	if err == nil {
		return ClassNone
	}

	var se *backend.StatusError
	if errors.As(err, &se) {
		if se.StatusCode >= 500 {
			return ClassServer
		}
		return ClassNone
	}

	switch {
	case isTimeoutError(err):
		return ClassTimeout
	case isDNSError(err):
		return ClassDNS
	case isConnectionRefusedError(err):
		return ClassRefused
	case isSSLError(err):
		return ClassTLS
	}

	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) {
		return ClassNetwork
	}
	return ClassNone
}

// Explain writes troubleshooting hints for err to w. action completes the
// sentence "... while <action>" and host names the API server. It reports
// whether err was a network or server failure; nothing is written otherwise.
func Explain(w io.Writer, err error, action, host string) bool {
	switch Classify(err) {
	case ClassTimeout:
		showTimeoutError(w, action)
	case ClassDNS:
		showDNSError(w, action, host)
	case ClassRefused:
		showConnectionRefusedError(w, action, host)
	case ClassTLS:
		showSSLError(w, action)
	case ClassServer:
		showServerError(w, action)
	case ClassNetwork:
		showGenericError(w, action, host, err.Error())
	default:
		return false
	}
	return true
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

func showTimeoutError(w io.Writer, action string) {
	fmt.Fprintf(w, "⏱️  Connection timeout while %s\n", action)
	pterm.Fprintln(w)
	pterm.Fprintln(w, "The server took too long to respond. This could mean:")
	pterm.Fprintln(w, "  • Slow internet connection")
	pterm.Fprintln(w, "  • Server is under heavy load")
	pterm.Fprintln(w, "  • The api.timeout setting is too low (see 'fitdash config show')")
	pterm.Fprintln(w)
}

func showDNSError(w io.Writer, action, host string) {
	fmt.Fprintf(w, "🌐 Cannot resolve server address while %s\n", action)
	pterm.Fprintln(w)
	fmt.Fprintf(w, "Unable to look up %s. Please check:\n", host)
	pterm.Fprintln(w, "  • Your internet connection is working")
	pterm.Fprintln(w, "  • The api.url setting is spelled correctly")
	pterm.Fprintln(w)
}

func showConnectionRefusedError(w io.Writer, action, host string) {
	fmt.Fprintf(w, "🚫 Connection refused while %s\n", action)
	pterm.Fprintln(w)
	fmt.Fprintf(w, "Nothing is accepting connections at %s. This could mean:\n", host)
	pterm.Fprintln(w, "  • The API server is not running")
	pterm.Fprintln(w, "  • Wrong server address or port (set with --api-url or FITDASH_API_URL)")
	pterm.Fprintln(w)
}

func showSSLError(w io.Writer, action string) {
	fmt.Fprintf(w, "🔒 Secure connection failed while %s\n", action)
	pterm.Fprintln(w)
	pterm.Fprintln(w, "Cannot establish a secure HTTPS connection. This could mean:")
	pterm.Fprintln(w, "  • SSL/TLS certificate issue")
	pterm.Fprintln(w, "  • Network proxy interfering with HTTPS")
	pterm.Fprintln(w, "  • System clock is incorrect")
	pterm.Fprintln(w)
}

func showServerError(w io.Writer, action string) {
	fmt.Fprintf(w, "⚠️  Server error while %s\n", action)
	pterm.Fprintln(w)
	pterm.Fprintln(w, "The API server encountered an internal error.")
	pterm.Fprintln(w, "This is not a problem with your input. Please try again in a few minutes.")
	pterm.Fprintln(w)
}

func showGenericError(w io.Writer, action, host, details string) {
	fmt.Fprintf(w, "❌ Cannot reach %s while %s\n", host, action)
	pterm.Fprintln(w)
	pterm.Fprintln(w, "Please check:")
	pterm.Fprintln(w, "  • Your internet connection")
	pterm.Fprintln(w, "  • Firewall settings that might block the request")
	pterm.Fprintln(w)

	if len(details) > 100 {
		details = details[:100] + "..."
	}
	pterm.Fprintln(w, pterm.NewStyle(pterm.FgGray).Sprint("Technical details: "+details))
	pterm.Fprintln(w)
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
