// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the access token goes to the OS keychain.
//
// Sources are layered with koanf, later ones overriding earlier ones:
// built-in defaults, the YAML file, then FITDASH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fitdash/cli/internal/xdg"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides: FITDASH_API_URL -> api.url.
const EnvPrefix = "FITDASH_"

// Config holds non-sensitive CLI settings.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Log     LogConfig     `koanf:"log"`
	Keyring KeyringConfig `koanf:"keyring"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `koanf:"level"`
}

// KeyringConfig selects where the access token is stored.
type KeyringConfig struct {
	// Backend forces a keyring backend (keychain, wincred, secret-service,
	// kwallet, pass, file). Empty picks the platform default.
	Backend string `koanf:"backend"`
	// Dir is the directory of the file backend.
	Dir string `koanf:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		API: APIConfig{
			URL:     "http://localhost:8000",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "info"},
	}
}

// settable lists the keys accepted by Set, with a validator each.
var settable = map[string]func(string) error{
	"api.url": func(v string) error {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return errors.New("must start with http:// or https://")
		}
		return nil
	},
	"api.timeout": func(v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		if d <= 0 {
			return errors.New("must be positive")
		}
		return nil
	},
	"log.level": func(v string) error {
		switch strings.ToLower(v) {
		case "trace", "debug", "info", "warn", "warning", "error":
			return nil
		}
		return errors.New("must be one of trace, debug, info, warn, error")
	},
	"keyring.backend": func(v string) error {
		switch v {
		case "", "keychain", "wincred", "secret-service", "kwallet", "pass", "file":
			return nil
		}
		return errors.New("must be one of keychain, wincred, secret-service, kwallet, pass, file")
	},
	"keyring.dir": func(string) error { return nil },
}

// Keys returns the configuration keys accepted by Set, sorted.
func Keys() []string {
	keys := make([]string, 0, len(settable))
	for k := range settable {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads configuration from the default path; a missing file yields defaults.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(p)
}

// LoadFrom reads configuration from path, then applies environment overrides.
func LoadFrom(path string) (Config, error) {
	c := Default()
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return c, fmt.Errorf("load config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return c, err
		}
	}

	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "_", ".")
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformer), nil); err != nil {
		return c, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &c); err != nil {
		return c, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Set validates key and value, then writes them into the YAML file at path.
// Environment overrides are deliberately not persisted.
func Set(path, key, value string) error {
	validate, ok := settable[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	k := koanf.New(".")
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Set(key, value); err != nil {
		return err
	}

	b, err := k.Marshal(yaml.Parser())
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
