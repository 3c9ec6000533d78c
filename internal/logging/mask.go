// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the CLI's structured logger and helpers for secure
// logging and error presentation.
//
// The package helps ensure that credentials such as passwords and bearer
// tokens never reach the terminal or log output, even when an underlying
// HTTP error echoes the request back.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reJSONPass = regexp.MustCompile(`(?i)("(?:password|access_token|refresh_token)"\s*:\s*")([^"]*)(")`)
	reAPIKey   = regexp.MustCompile(`(?i)(apikey=|api_key=|client_secret=)([^\s;&]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJSONPass.ReplaceAllString(out, "$1***$3")
	out = reAPIKey.ReplaceAllString(out, "$1***")
	return out
}
