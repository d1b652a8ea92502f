package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the optional hooksync configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Filter   FilterConfig   `toml:"filter"`
}

// DefaultsConfig holds persistent flag defaults. Nil means unset.
type DefaultsConfig struct {
	Method     *string  `toml:"method"`
	Source     *string  `toml:"source"`
	Subpath    *string  `toml:"subpath"`
	Digest     *string  `toml:"digest"`
	Extensions []string `toml:"extensions"`
}

// FilterConfig holds rsync-style rules applied before command-line rules.
type FilterConfig struct {
	Exclude []string `toml:"exclude"`
	Include []string `toml:"include"`
}

// Path returns the resolved path to the config file.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hooksync", "config.toml")
}

// Load reads the config file from the XDG path. Returns a zero Config
// (no error) if the file does not exist. Config is always optional.
func Load() (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

// LoadFile decodes the config at path. Unknown keys are an error so a
// misspelled setting is not silently ignored.
func LoadFile(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if cfg.Defaults.Source != nil {
		expanded := expandHome(*cfg.Defaults.Source)
		cfg.Defaults.Source = &expanded
	}
	return cfg, nil
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
