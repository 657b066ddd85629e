package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmunix/plexart/internal/config"
	"github.com/vmunix/plexart/internal/plex"
)

// options holds command-line values that override the config file.
type options struct {
	baseURL    string
	token      string
	library    string
	assets     string
	outputPath string
	overwrite  bool
	dryRun     bool
}

var opts options

// applyTo copies every flag the user set onto cfg.
func (o options) applyTo(cfg *config.Config, changed func(name string) bool) {
	if changed("baseurl") {
		cfg.Plex.URL = o.baseURL
	}
	if changed("token") {
		cfg.Plex.Token = o.token
	}
	if changed("library") {
		cfg.Plex.Library = o.library
	}
	if changed("assets") {
		cfg.Sync.Assets = o.assets
	}
	if changed("output-path") {
		cfg.Sync.OutputPath = o.outputPath
	}
	if changed("overwrite") {
		cfg.Sync.Overwrite = o.overwrite
	}
	if changed("dry-run") {
		cfg.Sync.DryRun = o.dryRun
	}
}

// loadConfig loads path, or the discovered config file when path is empty.
// Without any config file the defaults are returned; flags may supply the rest.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNotFound) {
			return config.Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}

	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// resolveConfig merges the config file with flags, asks for a missing
// server URL or token on a terminal, and validates the result.
func resolveConfig(path string, o options, changed func(string) bool, p *prompter) (*config.Config, error) {
	cfg, path, err := loadConfig(path)
	if err != nil {
		return nil, err
	}
	o.applyTo(cfg, changed)

	if p != nil {
		if cfg.Plex.URL == "" {
			if cfg.Plex.URL, err = p.required("Plex Server URL"); err != nil {
				return nil, err
			}
		}
		if cfg.Plex.Token == "" {
			if cfg.Plex.Token, err = p.required("Plex Token"); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.Check(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func plexConfig(cfg *config.Config) plex.Config {
	pc := plex.Config{
		URL:     cfg.Plex.URL,
		Token:   cfg.Plex.Token,
		Timeout: cfg.Plex.Timeout,
	}
	if pm := cfg.Plex.PathMapping; pm != nil {
		pc.LocalPath = pm.Local
		pc.RemotePath = pm.Remote
	}
	return pc
}

// stdinPrompter returns a prompter when a user can answer, nil otherwise.
func stdinPrompter() *prompter {
	if !interactive() {
		return nil
	}
	return newPrompter(os.Stdin, os.Stdout)
}

func connectError(err error) error {
	return fmt.Errorf("failed to connect to Plex, check your server URL and token: %w", err)
}
