// Copyright (c) 2025 Fitdash
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package tokenstore persists the single bearer access token across process
// restarts. The token lives in the OS keychain/credential store under a fixed
// key; on systems without a native store a password-protected file keyring is
// used instead.
//
// All operations are thread-safe. Opening the underlying keyring is deferred
// to the first operation and retried on later calls if it fails, so a locked
// or missing credential store degrades into per-call errors rather than a
// startup failure.
package tokenstore

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"fitdash/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "fitdash"

// KeyToken is the key the access token is stored under.
const KeyToken = "token"

// EnvFilePassword supplies the file keyring password non-interactively.
const EnvFilePassword = "FITDASH_KEYRING_PASSWORD"

// Store persists one opaque access token.
type Store interface {
	// Load returns the stored token, or "" with a nil error when none is stored.
	Load() (string, error)
	// Save replaces the stored token.
	Save(token string) error
	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// Config selects the keyring backend.
type Config struct {
	// Backend forces a backend by name; empty picks the platform default.
	Backend string
	// FileDir is the directory of the file backend; empty uses the XDG state dir.
	FileDir string
}

// nativeBackend is a minimal key/value credential backend.
type nativeBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Keyring is a Store backed by the OS keyring.
type Keyring struct {
	mu      sync.Mutex
	cfg     Config
	ring    keyring.Keyring
	backend nativeBackend
	open    func(Config) (keyring.Keyring, nativeBackend, error)
}

// New returns a Keyring store. The keyring is opened lazily.
func New(cfg Config) *Keyring {
	return &Keyring{cfg: cfg, open: openBackend}
}

// NewWithRing returns a Keyring store over an already opened keyring.
// Tests use it with keyring.NewArrayKeyring.
func NewWithRing(ring keyring.Keyring) *Keyring {
	return &Keyring{ring: ring}
}

// ensure opens the keyring if needed. Callers must hold mu for writing.
func (k *Keyring) ensure() error {
	if k.ring != nil || k.backend != nil {
		return nil
	}
	if k.open == nil {
		return errors.New("token store not initialized")
	}
	ring, backend, err := k.open(k.cfg)
	if err != nil {
		return err
	}
	k.ring, k.backend = ring, backend
	return nil
}

// Load retrieves the access token from the keychain.
func (k *Keyring) Load() (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ensure(); err != nil {
		return "", err
	}

	// Use native backend if available
	if k.backend != nil {
		token, err := k.backend.Get(KeyToken)
		if errors.Is(err, errNotFound) {
			return "", nil
		}
		return token, err
	}

	it, err := k.ring.Get(KeyToken)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(it.Data), nil
}

// Save stores the access token in the keychain.
func (k *Keyring) Save(token string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if token == "" {
		return errors.New("refusing to store an empty token")
	}
	if err := k.ensure(); err != nil {
		return err
	}

	if k.backend != nil {
		return k.backend.Set(KeyToken, token)
	}
	return k.ring.Set(keyring.Item{
		Key:         KeyToken,
		Data:        []byte(token),
		Label:       "fitdash access token",
		Description: "Bearer token for the fitness dashboard API",
	})
}

// Clear removes the access token from the keychain.
func (k *Keyring) Clear() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.ensure(); err != nil {
		return err
	}

	if k.backend != nil {
		return k.backend.Delete(KeyToken)
	}
	err := k.ring.Remove(KeyToken)
	if errors.Is(err, keyring.ErrKeyNotFound) || os.IsNotExist(err) {
		return nil
	}
	return err
}

// openBackend picks the credential backend for cfg and the current platform.
func openBackend(cfg Config) (keyring.Keyring, nativeBackend, error) {
	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" && (cfg.Backend == "" || cfg.Backend == "keychain") {
		if backend, err := newSecurityBackend(); err == nil {
			return nil, backend, nil
		}
		// Fall through to keyring library if security command fails
	}

	ring, err := openRing(cfg)
	if err != nil {
		return nil, nil, err
	}
	return ring, nil, nil
}

// backendsByName maps config names to keyring backend types.
var backendsByName = map[string]keyring.BackendType{
	"keychain":       keyring.KeychainBackend,
	"wincred":        keyring.WinCredBackend,
	"secret-service": keyring.SecretServiceBackend,
	"kwallet":        keyring.KWalletBackend,
	"pass":           keyring.PassBackend,
	"file":           keyring.FileBackend,
}

// AllowedBackends returns the keyring backends tried for cfg on goos, in order.
func AllowedBackends(cfg Config, goos string) ([]keyring.BackendType, error) {
	if cfg.Backend != "" {
		b, ok := backendsByName[cfg.Backend]
		if !ok {
			return nil, errors.New("unknown keyring backend: " + cfg.Backend)
		}
		return []keyring.BackendType{b}, nil
	}
	switch goos {
	case "darwin":
		// Pass requires 'pass' utility installed: brew install pass
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}, nil
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend}, nil
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}, nil
	}
}

// openRing opens the OS keyring restricted to the allowed backends.
func openRing(cfg Config) (keyring.Keyring, error) {
	allowed, err := AllowedBackends(cfg, runtime.GOOS)
	if err != nil {
		return nil, err
	}

	fileDir := cfg.FileDir
	if fileDir == "" {
		state, err := xdg.StateDir()
		if err != nil {
			return nil, err
		}
		fileDir = filepath.Join(state, "keyring")
	}

	passwordFunc := keyring.TerminalPrompt
	if pw := os.Getenv(EnvFilePassword); pw != "" {
		passwordFunc = keyring.FixedStringPrompt(pw)
	}

	kc := keyring.Config{
		ServiceName:             ServiceName,
		AllowedBackends:         allowed,
		PassPrefix:              ServiceName,
		WinCredPrefix:           ServiceName,
		KWalletAppID:            ServiceName,
		KWalletFolder:           ServiceName,
		LibSecretCollectionName: ServiceName,
		FileDir:                 fileDir,
		FilePasswordFunc:        passwordFunc,
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. Install 'pass' (brew install pass gnupg && pass init <gpg-key-id>) or set keyring.backend to file")
		}
		return nil, err
	}
	return ring, nil
}
