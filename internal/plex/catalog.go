package plex

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/plexart/internal/artwork"
)

// Catalog adapts a Client to the artwork sync engine: it serves items,
// seasons and episodes with local file paths, and downloads assets.
type Catalog struct {
	client *Client
}

var (
	_ artwork.Catalog = (*Catalog)(nil)
	_ artwork.Fetcher = (*Catalog)(nil)
)

// NewCatalog wraps client.
func NewCatalog(client *Client) *Catalog {
	return &Catalog{client: client}
}

// Items lists a section's top-level items.
func (c *Catalog) Items(ctx context.Context, section Section) ([]artwork.Item, error) {
	list, err := c.client.ListLibraryItems(ctx, section.Key)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", section.Title, err)
	}
	items := make([]artwork.Item, 0, len(list))
	for _, m := range list {
		items = append(items, c.toItem(m, section.Type))
	}
	return items, nil
}

// Refresh implements artwork.Catalog.
func (c *Catalog) Refresh(ctx context.Context, item artwork.Item) (artwork.Item, error) {
	m, err := c.client.GetMetadata(ctx, item.Key)
	if err != nil {
		return artwork.Item{}, translate(err)
	}
	return c.toItem(*m, string(item.Kind)), nil
}

// Seasons implements artwork.Catalog.
func (c *Catalog) Seasons(ctx context.Context, show artwork.Item) ([]artwork.Season, error) {
	children, err := c.client.GetChildren(ctx, show.Key)
	if err != nil {
		return nil, fmt.Errorf("seasons of %s: %w", show.Title, translate(err))
	}

	var seasons []artwork.Season
	for _, m := range children {
		// Plex adds an "All episodes" directory without a type.
		if m.Type != TypeSeason {
			continue
		}
		eps, err := c.client.GetChildren(ctx, m.RatingKey)
		if err != nil {
			return nil, fmt.Errorf("episodes of %s %s: %w", show.Title, m.Title, translate(err))
		}
		season := artwork.Season{
			Key:       m.RatingKey,
			Index:     m.Index,
			Title:     m.Title,
			Thumb:     m.Thumb,
			UpdatedAt: m.Updated(),
		}
		for _, e := range eps {
			if e.Type != TypeEpisode {
				continue
			}
			season.Episodes = append(season.Episodes, artwork.Episode{
				Key:       e.RatingKey,
				Title:     e.Title,
				Thumb:     e.Thumb,
				UpdatedAt: e.Updated(),
				Parts:     c.parts(e),
			})
		}
		seasons = append(seasons, season)
	}
	return seasons, nil
}

// Fetch implements artwork.Fetcher.
func (c *Catalog) Fetch(ctx context.Context, ref, dir, filename string) (int64, error) {
	n, err := c.client.Download(ctx, ref, dir, filename)
	if err != nil {
		return 0, translate(err)
	}
	return n, nil
}

func (c *Catalog) toItem(m Metadata, sectionType string) artwork.Item {
	kind := artwork.Kind(m.Type)
	if kind != artwork.KindMovie && kind != artwork.KindShow {
		kind = artwork.Kind(sectionType)
	}
	return artwork.Item{
		Key:       m.RatingKey,
		Title:     m.Title,
		Kind:      kind,
		Thumb:     m.Thumb,
		Art:       m.Art,
		Banner:    m.Banner,
		Theme:     m.Theme,
		UpdatedAt: m.Updated(),
		Parts:     c.parts(m),
	}
}

func (c *Catalog) parts(m Metadata) []artwork.Part {
	files := m.Files()
	if len(files) == 0 {
		return nil
	}
	parts := make([]artwork.Part, len(files))
	for i, f := range files {
		parts[i] = artwork.Part{File: c.client.TranslateToLocal(f)}
	}
	return parts
}

// translate maps client errors onto the artwork contract.
func translate(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %w", artwork.ErrNotFound, err)
	}
	return err
}
