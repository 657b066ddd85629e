package artwork

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file whose mtime is set to mtime.
func writeFile(t *testing.T, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "poster.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpg"), 0644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestShouldDownload_MissingDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.jpg")
	now := time.Now()

	assert.True(t, ShouldDownload(path, time.Time{}, false))
	assert.True(t, ShouldDownload(path, time.Time{}, true))
	assert.True(t, ShouldDownload(path, now.Add(-24*time.Hour), false))
	assert.True(t, ShouldDownload(path, now.Add(24*time.Hour), true))
}

func TestShouldDownload_ForceOverridesTimestamps(t *testing.T) {
	local := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	path := writeFile(t, local)

	assert.True(t, ShouldDownload(path, time.Time{}, true))
	assert.True(t, ShouldDownload(path, local.Add(-time.Hour), true))
}

func TestShouldDownload_UnknownSourceKeepsExisting(t *testing.T) {
	path := writeFile(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ShouldDownload(path, time.Time{}, false))
}

func TestShouldDownload_Tolerance(t *testing.T) {
	local := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	path := writeFile(t, local)

	tests := []struct {
		name   string
		source time.Time
		want   bool
	}{
		{"older source", local.Add(-time.Hour), false},
		{"same time", local, false},
		{"within tolerance", local.Add(30 * time.Second), false},
		{"exactly at tolerance", local.Add(ClockSkewTolerance), false},
		{"one second past tolerance", local.Add(61 * time.Second), true},
		{"much newer", local.Add(48 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldDownload(path, tt.source, false))
		})
	}
}
