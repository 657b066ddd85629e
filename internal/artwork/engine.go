// Package artwork decides which catalog artwork must be mirrored next to the
// media files and drives the downloads.
package artwork

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . Fetcher,Catalog,Reporter

// Fetcher downloads a single asset into dir/filename.
// Implementations must wrap ErrNotFound when the server has no such resource.
type Fetcher interface {
	Fetch(ctx context.Context, ref, dir, filename string) (int64, error)
}

// DirStatus is the result of EnsureDir.
type DirStatus int

const (
	DirExisted DirStatus = iota
	DirCreated
	DirFailed
)

func (s DirStatus) String() string {
	switch s {
	case DirExisted:
		return "existed"
	case DirCreated:
		return "created"
	default:
		return "failed"
	}
}

// EnsureDir creates dir and its parents if needed. It is safe to call repeatedly.
func EnsureDir(dir string) (DirStatus, error) {
	if info, err := os.Stat(dir); err == nil {
		if info.IsDir() {
			return DirExisted, nil
		}
		return DirFailed, fmt.Errorf("%s: not a directory", dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return DirFailed, err
	}
	return DirCreated, nil
}

// EngineConfig configures an Engine.
type EngineConfig struct {
	OutputPath string // Mirror root; empty writes into the media folders
	DryRun     bool   // Decide and report, never fetch or create directories
}

// Engine synchronizes single assets.
type Engine struct {
	fetcher Fetcher
	cfg     EngineConfig
	log     *slog.Logger
}

// NewEngine creates an Engine. A nil logger discards output.
func NewEngine(fetcher Fetcher, cfg EngineConfig, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		fetcher: fetcher,
		cfg:     cfg,
		log:     log.With("component", "engine"),
	}
}

// Sync fetches req when the local copy is absent or stale.
// Failures are reported in the Result and never returned as errors.
func (e *Engine) Sync(ctx context.Context, req Request, force bool) Result {
	if req.Ref == "" {
		return Result{Outcome: OutcomeSkippedNoSource}
	}

	dir := OutputDir(e.cfg.OutputPath, req.Dir)
	path := filepath.Join(dir, req.Filename)

	if !ShouldDownload(path, req.UpdatedAt, force) {
		e.log.Debug("asset current", "path", path)
		return Result{Outcome: OutcomeSkippedCurrent, Path: path}
	}

	if e.cfg.DryRun {
		e.log.Debug("would download", "ref", req.Ref, "path", path)
		return Result{Outcome: OutcomeDownloaded, Path: path, DryRun: true}
	}

	status, dirErr := EnsureDir(dir)
	if dirErr != nil {
		e.log.Debug("ensure directory failed", "dir", dir, "error", dirErr)
	} else if status == DirCreated {
		e.log.Debug("created directory", "dir", dir)
	}

	n, err := e.fetcher.Fetch(ctx, req.Ref, dir, req.Filename)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			e.log.Debug("asset missing upstream", "ref", req.Ref, "path", path)
			return Result{Outcome: OutcomeFailed, Path: path, Err: fmt.Errorf("%w: %s", ErrAssetMissing, req.Ref)}
		}
		if dirErr != nil {
			err = fmt.Errorf("%w (directory: %v)", err, dirErr)
		}
		e.log.Debug("download failed", "ref", req.Ref, "path", path, "error", err)
		return Result{Outcome: OutcomeFailed, Path: path, Err: fmt.Errorf("%w: %w", ErrTransferFailed, err)}
	}

	e.log.Debug("downloaded", "ref", req.Ref, "path", path, "bytes", n)
	return Result{Outcome: OutcomeDownloaded, Path: path, Bytes: n}
}

func isMissing(err error) bool {
	return err != nil && errors.Is(err, ErrAssetMissing)
}
