// internal/artwork/errors.go
package artwork

import "errors"

var (
	// ErrNotFound is returned by a Fetcher or Catalog when the remote resource does not exist.
	ErrNotFound = errors.New("remote resource not found")

	// ErrAssetMissing indicates the catalog references an asset the server cannot serve.
	ErrAssetMissing = errors.New("asset missing upstream")

	// ErrTransferFailed indicates a download failed for any other reason.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrNoMediaPath indicates no media part was found to anchor a directory.
	ErrNoMediaPath = errors.New("no media file on record")
)
