package plex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/plexart/internal/artwork"
)

// fakePlex serves canned XML per path.
func fakePlex(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCatalog_ItemsAndSeasons(t *testing.T) {
	server := fakePlex(t, map[string]string{
		"/library/sections/2/all": `<MediaContainer>
  <Directory ratingKey="10" type="show" title="Show" thumb="/show/thumb" art="/show/art"
             banner="/show/banner" theme="/show/theme" updatedAt="1700000000"/>
</MediaContainer>`,
		"/library/metadata/10/children": `<MediaContainer>
  <Directory key="/library/metadata/10/allLeaves" title="All episodes"/>
  <Directory ratingKey="11" type="season" index="1" title="Season 1" thumb="/season/thumb" updatedAt="1700000100"/>
</MediaContainer>`,
		"/library/metadata/11/children": `<MediaContainer>
  <Video ratingKey="12" type="episode" title="Pilot" thumb="/ep/thumb">
    <Media><Part file="/data/tv/Show/Season 01/Show - S01E01.mkv"/></Media>
  </Video>
</MediaContainer>`,
	})

	client := New(Config{URL: server.URL, Token: "t", LocalPath: "/srv/media", RemotePath: "/data"}, nil)
	catalog := NewCatalog(client)

	items, err := catalog.Items(context.Background(), Section{Key: "2", Title: "TV", Type: TypeShow})
	require.NoError(t, err)
	require.Len(t, items, 1)

	show := items[0]
	assert.Equal(t, artwork.KindShow, show.Kind)
	assert.Equal(t, "/show/banner", show.Banner)
	assert.Equal(t, "/show/theme", show.Theme)
	assert.Equal(t, time.Unix(1700000000, 0), show.UpdatedAt)

	seasons, err := catalog.Seasons(context.Background(), show)
	require.NoError(t, err)
	require.Len(t, seasons, 1, "the All episodes directory is not a season")

	s := seasons[0]
	assert.Equal(t, 1, s.Index)
	assert.Equal(t, "/season/thumb", s.Thumb)
	require.Len(t, s.Episodes, 1)
	assert.True(t, s.Episodes[0].UpdatedAt.IsZero())
	assert.Equal(t, "/srv/media/tv/Show/Season 01/Show - S01E01.mkv", s.Episodes[0].Parts[0].File)

	dir, ok := artwork.ItemDir(show, seasons)
	assert.True(t, ok)
	assert.Equal(t, "/srv/media/tv/Show", dir)
}

func TestCatalog_RefreshMissingItem(t *testing.T) {
	server := fakePlex(t, map[string]string{})
	catalog := NewCatalog(newTestClient(server.URL))

	_, err := catalog.Refresh(context.Background(), artwork.Item{Key: "404", Kind: artwork.KindMovie})
	assert.ErrorIs(t, err, artwork.ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_RefreshKeepsKind(t *testing.T) {
	server := fakePlex(t, map[string]string{
		"/library/metadata/100": `<MediaContainer>
  <Video ratingKey="100" title="Heat" thumb="/new/thumb">
    <Media><Part file="/movies/Heat/Heat.mkv"/></Media>
  </Video>
</MediaContainer>`,
	})
	catalog := NewCatalog(newTestClient(server.URL))

	item, err := catalog.Refresh(context.Background(), artwork.Item{Key: "100", Kind: artwork.KindMovie, Thumb: "/old/thumb"})
	require.NoError(t, err)
	assert.Equal(t, artwork.KindMovie, item.Kind)
	assert.Equal(t, "/new/thumb", item.Thumb)
	assert.Equal(t, []artwork.Part{{File: "/movies/Heat/Heat.mkv"}}, item.Parts)
}

func TestCatalog_FetchMissingAsset(t *testing.T) {
	server := fakePlex(t, map[string]string{})
	catalog := NewCatalog(newTestClient(server.URL))

	_, err := catalog.Fetch(context.Background(), "/library/metadata/1/theme/1", t.TempDir(), "theme.mp3")
	assert.ErrorIs(t, err, artwork.ErrNotFound)
}

func TestCatalog_DrivesEngine(t *testing.T) {
	server := fakePlex(t, map[string]string{
		"/library/metadata/100":         `<MediaContainer><Video ratingKey="100" type="movie" title="Heat" thumb="/library/metadata/100/thumb/1"/></MediaContainer>`,
		"/library/metadata/100/thumb/1": `<jpeg/>`,
	})
	catalog := NewCatalog(newTestClient(server.URL))

	root := t.TempDir()
	item := artwork.Item{Key: "100", Kind: artwork.KindMovie, Title: "Heat"}
	item, err := catalog.Refresh(context.Background(), item)
	require.NoError(t, err)
	item.Parts = []artwork.Part{{File: root + "/Heat/Heat.mkv"}}

	engine := artwork.NewEngine(catalog, artwork.EngineConfig{}, nil)
	dir, _ := artwork.ItemDir(item, nil)
	res := engine.Sync(context.Background(), artwork.Request{Ref: item.Thumb, Dir: dir, Filename: artwork.PosterFile}, false)

	require.NoError(t, res.Err)
	assert.Equal(t, artwork.OutcomeDownloaded, res.Outcome)
	assert.FileExists(t, root+"/Heat/poster.jpg")
}
