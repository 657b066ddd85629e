// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"

	"github.com/vmunix/plexart/internal/artwork"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Plex connection
	if c.Plex.URL == "" {
		errs = append(errs, "plex.url: required")
	} else if u, err := url.Parse(c.Plex.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Sprintf("plex.url: must be an http(s) URL, got %q", c.Plex.URL))
	}
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required")
	}
	if c.Plex.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("plex.timeout: must not be negative, got %s", c.Plex.Timeout))
	}
	if pm := c.Plex.PathMapping; pm != nil && (pm.Local == "") != (pm.Remote == "") {
		errs = append(errs, "plex.path_mapping: local and remote must be set together")
	}

	// Sync
	if _, err := artwork.ParseFilter(c.Sync.Assets); err != nil {
		errs = append(errs, fmt.Sprintf("sync.assets: %v", err))
	}

	// Logging
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	return errs
}
