package artwork

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Catalog is the read side of the media server.
type Catalog interface {
	// Refresh re-reads an item so URLs and timestamps are current.
	// It wraps ErrNotFound when the item no longer exists.
	Refresh(ctx context.Context, item Item) (Item, error)

	// Seasons returns a show's seasons with their episodes populated, in order.
	Seasons(ctx context.Context, show Item) ([]Season, error)
}

// Reporter receives progress from a run. Implementations must not block.
type Reporter interface {
	ItemStarted(item Item)
	AssetSynced(req Request, res Result)
	ItemSkipped(item Item, reason error)
	ItemFailed(item Item, err error)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) ItemStarted(Item)            {}
func (NopReporter) AssetSynced(Request, Result) {}
func (NopReporter) ItemSkipped(Item, error)     {}
func (NopReporter) ItemFailed(Item, error)      {}

// Driver walks items, seasons and episodes and syncs their assets one at a time.
type Driver struct {
	catalog  Catalog
	engine   *Engine
	reporter Reporter
	log      *slog.Logger
}

// NewDriver creates a Driver. A nil reporter or logger discards output.
func NewDriver(catalog Catalog, engine *Engine, reporter Reporter, log *slog.Logger) *Driver {
	if reporter == nil {
		reporter = NopReporter{}
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		catalog:  catalog,
		engine:   engine,
		reporter: reporter,
		log:      log.With("component", "driver"),
	}
}

// Run synchronizes every item and returns the accumulated counters.
// A failing item is logged and reported; it never stops the run.
// Cancelling ctx stops the run before the next item.
func (d *Driver) Run(ctx context.Context, items []Item, filter Filter, force bool) Tally {
	var total Tally
	for i, item := range items {
		if ctx.Err() != nil {
			d.log.Info("run cancelled", "remaining", len(items)-i)
			break
		}

		d.reporter.ItemStarted(item)
		t, err := d.syncItem(ctx, item, filter, force)
		total.Add(t)
		if err != nil {
			total.ItemErrors++
			d.log.Debug("item failed", "title", item.Title, "error", err)
			d.reporter.ItemFailed(item, err)
			continue
		}
		total.Items++
	}

	d.log.Debug("run complete",
		"downloaded", total.Downloaded,
		"skipped", total.Skipped,
		"failed", total.Failed,
		"missing", total.Missing)
	return total
}

// syncItem isolates one item: panics are turned into errors.
// Assets recorded before a panic stay in the returned tally.
func (d *Driver) syncItem(ctx context.Context, item Item, filter Filter, force bool) (t Tally, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	err = d.processItem(ctx, &t, item, filter, force)
	return t, err
}

func (d *Driver) processItem(ctx context.Context, t *Tally, item Item, filter Filter, force bool) error {
	fresh, err := d.catalog.Refresh(ctx, item)
	if err != nil {
		d.log.Debug("refresh failed, skipping", "title", item.Title, "error", err)
		d.reporter.ItemSkipped(item, err)
		return nil
	}
	item = fresh

	var seasons []Season
	if item.Kind == KindShow {
		seasons, err = d.catalog.Seasons(ctx, item)
		if err != nil {
			return fmt.Errorf("list seasons: %w", err)
		}
	}

	dir, ok := ItemDir(item, seasons)
	if !ok {
		d.log.Debug("no media path", "title", item.Title)
		d.reporter.ItemSkipped(item, ErrNoMediaPath)
		return nil
	}

	for _, a := range itemAssets(item) {
		if !filter.Allows(a.kind) {
			continue
		}
		d.sync(ctx, t, Request{Ref: a.ref, Dir: dir, Filename: a.filename, UpdatedAt: item.UpdatedAt}, force)
	}

	if item.Kind != KindShow || !filter.Allows(FilterPosters) {
		return nil
	}

	for _, season := range seasons {
		seasonDir, ok := SeasonDir(season)
		if !ok {
			d.log.Debug("no media path for season", "title", item.Title, "season", season.Index)
			continue
		}
		seasonTime := firstKnown(season.UpdatedAt, item.UpdatedAt)
		d.sync(ctx, t, Request{Ref: season.Thumb, Dir: seasonDir, Filename: SeasonFile, UpdatedAt: seasonTime}, force)

		for _, ep := range season.Episodes {
			if ep.Thumb == "" {
				continue
			}
			epDir, name, ok := EpisodeThumb(ep)
			if !ok {
				continue
			}
			d.sync(ctx, t, Request{
				Ref:       ep.Thumb,
				Dir:       epDir,
				Filename:  name,
				UpdatedAt: firstKnown(ep.UpdatedAt, season.UpdatedAt, item.UpdatedAt),
			}, force)
		}
	}

	return nil
}

func (d *Driver) sync(ctx context.Context, t *Tally, req Request, force bool) {
	res := d.engine.Sync(ctx, req, force)
	if res.Outcome == OutcomeSkippedNoSource {
		return
	}
	t.Record(res)
	d.reporter.AssetSynced(req, res)
}

type itemAsset struct {
	kind     Filter
	ref      string
	filename string
}

func itemAssets(item Item) []itemAsset {
	return []itemAsset{
		{FilterPosters, item.Thumb, PosterFile},
		{FilterBackgrounds, item.Art, BackgroundFile},
		{FilterBanners, item.Banner, BannerFile},
		{FilterThemes, item.Theme, ThemeFile},
	}
}
