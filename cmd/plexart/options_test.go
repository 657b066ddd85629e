package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/plexart/internal/config"
)

func TestOptions_ApplyOnlyChangedFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Plex.URL = "http://from-file:32400"
	cfg.Plex.Library = "Movies"
	cfg.Sync.Assets = "posters"

	o := options{
		baseURL:    "http://from-flag:32400",
		library:    "TV",
		assets:     "all",
		outputPath: "/backup",
		overwrite:  true,
	}
	o.applyTo(cfg, changedSet("baseurl", "output-path", "overwrite"))

	assert.Equal(t, "http://from-flag:32400", cfg.Plex.URL)
	assert.Equal(t, "Movies", cfg.Plex.Library, "unchanged flag keeps file value")
	assert.Equal(t, "posters", cfg.Sync.Assets, "flag default does not override file")
	assert.Equal(t, "/backup", cfg.Sync.OutputPath)
	assert.True(t, cfg.Sync.Overwrite)
	assert.False(t, cfg.Sync.DryRun)
}

func TestResolveConfig_FileAndFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "plexart.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[plex]
url = "http://plex.lan:32400"
token = "file-token"
timeout = "10s"

[plex.path_mapping]
local = "/srv/media"
remote = "/data"
`), 0644))

	o := options{token: "flag-token", dryRun: true}
	cfg, err := resolveConfig(cfgPath, o, changedSet("token", "dry-run"), nil)
	require.NoError(t, err)
	assert.Equal(t, "http://plex.lan:32400", cfg.Plex.URL)
	assert.Equal(t, "flag-token", cfg.Plex.Token)
	assert.True(t, cfg.Sync.DryRun)

	pc := plexConfig(cfg)
	assert.Equal(t, 10*time.Second, pc.Timeout)
	assert.Equal(t, "/srv/media", pc.LocalPath)
	assert.Equal(t, "/data", pc.RemotePath)
}

func TestResolveConfig_ValidationFails(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "plexart.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[plex]\nurl = \"http://plex:32400\"\n"), 0644))

	o := options{assets: "logos"}
	_, err := resolveConfig(cfgPath, o, changedSet("assets"), nil)
	require.Error(t, err)

	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, err.Error(), "plex.token: required")
	assert.Contains(t, err.Error(), "sync.assets")
}

func TestResolveConfig_PromptsForMissingConnection(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "plexart.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[sync]\nassets = \"themes\"\n"), 0644))

	var out strings.Builder
	p := newPrompter(strings.NewReader("http://prompted:32400\n\nprompted-token\n"), &out)

	cfg, err := resolveConfig(cfgPath, options{}, changedSet(), p)
	require.NoError(t, err)
	assert.Equal(t, "http://prompted:32400", cfg.Plex.URL)
	assert.Equal(t, "prompted-token", cfg.Plex.Token)
	assert.Contains(t, out.String(), "Plex Server URL: ")
	assert.Contains(t, out.String(), "Value required")
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	if _, err := os.Stat("/etc/plexart/config.toml"); err == nil {
		t.Skip("system config present")
	}
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PLEXART_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	cfg, path, err := loadConfig("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, "all", cfg.Sync.Assets)
	assert.Empty(t, cfg.Plex.URL)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}
