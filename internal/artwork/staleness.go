package artwork

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

// ClockSkewTolerance absorbs clock drift between the catalog server and the
// local filesystem. A source timestamp must exceed the local mtime by more
// than this before a file counts as stale.
const ClockSkewTolerance = 60 * time.Second

// ShouldDownload decides whether dest must be (re)fetched.
//
// A zero source timestamp means unknown: an existing file is then kept.
func ShouldDownload(dest string, source time.Time, force bool) bool {
	if force {
		return true
	}
	info, err := os.Stat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return true
	}
	if err != nil {
		// Let the write report whatever is wrong with the path.
		return true
	}
	if source.IsZero() {
		return false
	}
	return source.After(info.ModTime().Add(ClockSkewTolerance))
}
