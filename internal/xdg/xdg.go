// Package xdg resolves XDG Base Directory paths for fitdash.
// Configuration lives under the config dir; the file-backed keyring (used
// where no native credential store exists) lives under the state dir.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base directory.
const AppName = "fitdash"

// ConfigDir returns the XDG config directory for fitdash.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/fitdash when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for fitdash.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/fitdash when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(envVar, homeRel string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
