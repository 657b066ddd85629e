// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Plex PlexConfig `toml:"plex"`
	Sync SyncConfig `toml:"sync"`
	Log  LogConfig  `toml:"log"`
}

type PlexConfig struct {
	URL         string             `toml:"url"`
	Token       string             `toml:"token"`
	Library     string             `toml:"library"`
	Timeout     time.Duration      `toml:"timeout"`
	PathMapping *PathMappingConfig `toml:"path_mapping"`
}

// PathMappingConfig translates file paths reported by Plex (remote) into
// paths on this machine (local), for Plex running in a container.
type PathMappingConfig struct {
	Local  string `toml:"local"`
	Remote string `toml:"remote"`
}

type SyncConfig struct {
	Assets     string `toml:"assets"`
	OutputPath string `toml:"output_path"`
	Overwrite  bool   `toml:"overwrite"`
	DryRun     bool   `toml:"dry_run"`
	LockFile   string `toml:"lock_file"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Load reads, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, err := LoadWithoutValidation(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Check(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file and applies
// defaults. Callers that merge command-line flags validate afterwards.
func LoadWithoutValidation(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var cfg Config
	cfg.ApplyDefaults()
	return &cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Plex.Timeout == 0 {
		c.Plex.Timeout = 30 * time.Second
	}
	if c.Sync.Assets == "" {
		c.Sync.Assets = "all"
	}
	if c.Sync.LockFile == "" {
		c.Sync.LockFile = DefaultLockPath()
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// DefaultLockPath returns the XDG state location of the sync lock file.
func DefaultLockPath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), "plexart.lock")
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "plexart", "sync.lock")
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces environment references and reports the ones
// that could not be resolved. Unresolved references are left in place.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return out, missing
}
