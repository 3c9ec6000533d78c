// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// ParseLevel maps a config/log-level string to a pterm log level.
// Unknown values fall back to info.
func ParseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}

// New returns a structured logger writing to w at the given level.
func New(w io.Writer, level string) *pterm.Logger {
	return pterm.DefaultLogger.
		WithLevel(ParseLevel(level)).
		WithWriter(w)
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled).WithWriter(io.Discard)
}
