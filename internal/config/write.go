package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
)

var (
	// ErrNotFound indicates no config file exists in any searched location.
	ErrNotFound = errors.New("config not found")

	// ErrExists is returned when a write would replace a file without overwrite.
	ErrExists = errors.New("config file already exists")
)

//go:embed default_config.toml
var defaultConfig string

// WriteDefault writes the commented starter config to path.
func WriteDefault(path string, overwrite bool) error {
	return writeFile(path, []byte(defaultConfig), overwrite)
}

// Write encodes c as TOML into path.
func (c *Config) Write(path string, overwrite bool) error {
	var buf bytes.Buffer
	buf.WriteString("# plexart configuration, generated by 'plexart config init'\n\n")
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeFile(path, buf.Bytes(), overwrite)
}

func writeFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	// The file holds the Plex token.
	return renameio.WriteFile(path, data, 0600)
}
