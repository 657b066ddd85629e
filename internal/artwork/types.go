package artwork

import (
	"fmt"
	"time"
)

// Kind is the hierarchy kind of a top-level catalog item.
type Kind string

const (
	KindMovie Kind = "movie"
	KindShow  Kind = "show"
)

// Part is a single media file backing a movie or episode.
type Part struct {
	File string // Absolute path on the local filesystem
}

// Item is a top-level movie or show.
type Item struct {
	Key       string // Catalog identifier, used to refresh the item
	Title     string
	Kind      Kind
	Thumb     string // Poster reference, empty if absent
	Art       string // Background reference
	Banner    string
	Theme     string
	UpdatedAt time.Time // Zero when unknown
	Parts     []Part    // Movies only
}

// Season is a season of a show.
type Season struct {
	Key       string
	Index     int
	Title     string
	Thumb     string
	UpdatedAt time.Time
	Episodes  []Episode
}

// Episode is an episode of a season.
type Episode struct {
	Key       string
	Title     string
	Thumb     string
	UpdatedAt time.Time
	Parts     []Part
}

// Request describes a single asset to synchronize. It is rebuilt on every run.
type Request struct {
	Ref       string    // Asset reference understood by the Fetcher
	Dir       string    // Directory the asset belongs in, before any output override
	Filename  string    // Fixed destination filename
	UpdatedAt time.Time // Most specific known source timestamp
}

// Outcome is the result of a single sync attempt.
type Outcome int

const (
	OutcomeSkippedNoSource Outcome = iota
	OutcomeSkippedCurrent
	OutcomeDownloaded
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkippedNoSource:
		return "skipped-missing-source"
	case OutcomeSkippedCurrent:
		return "skipped-current"
	case OutcomeDownloaded:
		return "downloaded"
	case OutcomeFailed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is what Engine.Sync reports for one Request.
type Result struct {
	Outcome Outcome
	Path    string // Final on-disk path; empty for OutcomeSkippedNoSource
	Bytes   int64
	DryRun  bool
	Err     error // Set for OutcomeFailed
}

// Tally accumulates counters for a run.
type Tally struct {
	Downloaded int
	Skipped    int
	Failed     int
	Missing    int // Assets the server could not serve; not counted as Failed
	Bytes      int64
	Items      int // Top-level items processed without an item-level error
	ItemErrors int
}

// Record folds a single Result into the tally.
// OutcomeSkippedNoSource leaves the counters untouched.
func (t *Tally) Record(r Result) {
	switch r.Outcome {
	case OutcomeDownloaded:
		t.Downloaded++
		t.Bytes += r.Bytes
	case OutcomeSkippedCurrent:
		t.Skipped++
	case OutcomeFailed:
		if isMissing(r.Err) {
			t.Missing++
		} else {
			t.Failed++
		}
	}
}

// Add merges another tally into t.
func (t *Tally) Add(o Tally) {
	t.Downloaded += o.Downloaded
	t.Skipped += o.Skipped
	t.Failed += o.Failed
	t.Missing += o.Missing
	t.Bytes += o.Bytes
	t.Items += o.Items
	t.ItemErrors += o.ItemErrors
}

// firstKnown returns the first non-zero timestamp, or the zero time if none is known.
func firstKnown(ts ...time.Time) time.Time {
	for _, t := range ts {
		if !t.IsZero() {
			return t
		}
	}
	return time.Time{}
}
