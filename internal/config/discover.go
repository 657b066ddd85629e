package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvVar pins the config file location and disables the search.
const EnvVar = "PLEXART_CONFIG"

const (
	localFile  = "./plexart.toml"
	systemFile = "/etc/plexart/config.toml"
)

// DefaultPath returns $XDG_CONFIG_HOME/plexart/config.toml, falling back to
// ~/.config and then to the current directory.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return localFile
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "plexart", "config.toml")
}

// SearchPaths lists the locations Discover tries, most specific first.
func SearchPaths() []string {
	return []string{localFile, DefaultPath(), systemFile}
}

// Discover returns the config file to load: the file named by PLEXART_CONFIG,
// else the first regular file among SearchPaths. Returns ErrNotFound when
// none exists.
func Discover() (string, error) {
	if pinned := os.Getenv(EnvVar); pinned != "" {
		if err := isRegularFile(pinned); err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvVar, pinned, err)
		}
		return pinned, nil
	}

	paths := SearchPaths()
	for _, p := range paths {
		if isRegularFile(p) == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}

func isRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory")
	}
	return nil
}
