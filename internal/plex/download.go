package plex

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Download fetches ref into dir/filename. The file is written to a temporary
// name and renamed into place, so a failed transfer never leaves a partial file.
// Returns ErrNotFound when the server has no such asset.
func (c *Client) Download(ctx context.Context, ref, dir, filename string) (int64, error) {
	req, err := c.newRequest(ctx, ref)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus(resp); err != nil {
		return 0, fmt.Errorf("GET %s: %w", ref, err)
	}

	dest := filepath.Join(dir, filename)
	pending, err := renameio.NewPendingFile(dest,
		renameio.WithTempDir(dir),
		renameio.WithPermissions(0644),
	)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	size, err := io.Copy(pending, resp.Body)
	if err != nil {
		return 0, fmt.Errorf("copy content: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("replace %s: %w", dest, err)
	}

	c.log.Debug("asset downloaded", "ref", ref, "path", dest, "bytes", size)
	return size, nil
}
