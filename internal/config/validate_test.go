// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Plex.URL = "http://localhost:32400"
	cfg.Plex.Token = "token"
	return cfg
}

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_MinimalValid(t *testing.T) {
	errs := validConfig().Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingConnection(t *testing.T) {
	errs := Default().Validate()
	assert.True(t, containsError(errs, "plex.url: required"), "expected url error, got %v", errs)
	assert.True(t, containsError(errs, "plex.token: required"), "expected token error, got %v", errs)
}

func TestValidate_InvalidURL(t *testing.T) {
	for _, u := range []string{"localhost:32400", "ftp://plex", "http://"} {
		cfg := validConfig()
		cfg.Plex.URL = u
		errs := cfg.Validate()
		assert.True(t, containsError(errs, "plex.url"), "expected url error for %q, got %v", u, errs)
	}
}

func TestValidate_InvalidAssets(t *testing.T) {
	cfg := validConfig()
	cfg.Sync.Assets = "logos"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "sync.assets"), "expected assets error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Level = "verbose"
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log.level"), "expected log.level error, got %v", errs)
}

func TestValidate_HalfPathMapping(t *testing.T) {
	cfg := validConfig()
	cfg.Plex.PathMapping = &PathMappingConfig{Local: "/srv/media"}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "plex.path_mapping"), "expected path_mapping error, got %v", errs)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Plex.Timeout = -1
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "plex.timeout"), "expected timeout error, got %v", errs)
}
