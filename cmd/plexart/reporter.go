package main

import (
	"errors"
	"fmt"

	"github.com/vmunix/plexart/internal/artwork"
)

// terminalReporter prints sync progress markers.
// Failures are always shown; progress and skip notes only when verbose.
type terminalReporter struct {
	p       *printer
	verbose bool
}

func newTerminalReporter(p *printer, verbose bool) *terminalReporter {
	return &terminalReporter{p: p, verbose: verbose}
}

func (r *terminalReporter) ItemStarted(item artwork.Item) {
	if !r.verbose {
		return
	}
	r.p.blank()
	r.p.marker(markerInfo, "ITEM", item.Title)
}

func (r *terminalReporter) AssetSynced(req artwork.Request, res artwork.Result) {
	switch res.Outcome {
	case artwork.OutcomeDownloaded:
		if !r.verbose {
			return
		}
		msg := res.Path
		if res.DryRun {
			msg += " (dry run)"
		}
		r.p.marker(markerOK, "DOWNLOADED", msg)
	case artwork.OutcomeSkippedCurrent:
		if r.verbose {
			r.p.marker(markerWarn, "SKIPPED", res.Path)
		}
	case artwork.OutcomeFailed:
		if errors.Is(res.Err, artwork.ErrAssetMissing) {
			r.p.marker(markerWarn, "MISSING", res.Path)
			return
		}
		r.p.marker(markerError, "DOWNLOAD FAILED", fmt.Sprintf("%s (%v)", res.Path, res.Err))
	}
}

// ItemSkipped stays quiet for items Plex no longer has. An item without a
// media file gets a note in verbose mode.
func (r *terminalReporter) ItemSkipped(item artwork.Item, reason error) {
	if !r.verbose || !errors.Is(reason, artwork.ErrNoMediaPath) {
		return
	}
	r.p.marker(markerWarn, "WARNING", fmt.Sprintf("Could not determine path for %s, skipping.", item.Title))
}

func (r *terminalReporter) ItemFailed(item artwork.Item, err error) {
	r.p.marker(markerError, "ERROR", fmt.Sprintf("processing %s: %v", item.Title, err))
}
