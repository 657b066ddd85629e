package artwork

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func showSeasons(files ...string) []Season {
	var eps []Episode
	for _, f := range files {
		eps = append(eps, Episode{Parts: []Part{{File: f}}})
	}
	return []Season{{Index: 1, Episodes: eps}}
}

func TestItemDir_Movie(t *testing.T) {
	item := Item{Kind: KindMovie, Parts: []Part{
		{File: "/media/Movies/Heat (1995)/Heat.mkv"},
		{File: "/media/Movies/Heat (1995)/Heat-part2.mkv"},
	}}
	dir, ok := ItemDir(item, nil)
	assert.True(t, ok)
	assert.Equal(t, "/media/Movies/Heat (1995)", dir)
}

func TestItemDir_MovieWithoutParts(t *testing.T) {
	_, ok := ItemDir(Item{Kind: KindMovie}, nil)
	assert.False(t, ok)
}

func TestItemDir_ShowSkipsSeasonDirectory(t *testing.T) {
	dir, ok := ItemDir(Item{Kind: KindShow}, showSeasons("/media/Show/Season 01/ep.mkv"))
	assert.True(t, ok)
	assert.Equal(t, "/media/Show", dir)
}

func TestItemDir_ShowUsesFirstEpisodeWithParts(t *testing.T) {
	seasons := []Season{
		{Index: 0},
		{Index: 1, Episodes: []Episode{
			{Title: "no file"},
			{Parts: []Part{{File: "/tv/Show/Season 01/S01E02.mkv"}}},
		}},
	}
	dir, ok := ItemDir(Item{Kind: KindShow}, seasons)
	assert.True(t, ok)
	assert.Equal(t, "/tv/Show", dir)
}

func TestItemDir_ShowWithoutEpisodes(t *testing.T) {
	_, ok := ItemDir(Item{Kind: KindShow}, []Season{{Index: 1}})
	assert.False(t, ok)

	_, ok = ItemDir(Item{Kind: KindShow}, nil)
	assert.False(t, ok)
}

func TestSeasonDir(t *testing.T) {
	dir, ok := SeasonDir(showSeasons("/media/Show/Season 01/ep.mkv")[0])
	assert.True(t, ok)
	assert.Equal(t, "/media/Show/Season 01", dir)

	_, ok = SeasonDir(Season{Index: 2})
	assert.False(t, ok)
}

func TestEpisodeThumb(t *testing.T) {
	ep := Episode{Parts: []Part{
		{File: "/media/Show/Season 01/Show - S01E01.mkv"},
		{File: "/media/Show/Season 01/Show - S01E01 - pt2.mkv"},
	}}
	dir, name, ok := EpisodeThumb(ep)
	assert.True(t, ok)
	assert.Equal(t, "/media/Show/Season 01", dir)
	assert.Equal(t, "Show - S01E01-thumb.jpg", name)
}

func TestEpisodeThumb_NoParts(t *testing.T) {
	_, _, ok := EpisodeThumb(Episode{})
	assert.False(t, ok)
}

func TestOutputDir(t *testing.T) {
	tests := []struct {
		name     string
		override string
		dir      string
		want     string
	}{
		{"no override", "", "/media/Show/Season 01", "/media/Show/Season 01"},
		{"legacy root default", "/", "/media/Show", "/media/Show"},
		{"mirror elsewhere", "/backup", "/media/Show/Season 01", "/backup/media/Show/Season 01"},
		{"relative dir", "/backup", "media/Show", "/backup/media/Show"},
		{"repeated separators", "/backup/", "//media/Show", "/backup/media/Show"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputDir(tt.override, tt.dir))
		})
	}
}

func TestFirstKnown(t *testing.T) {
	ep := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	season := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	item := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, ep, firstKnown(ep, season, item))
	assert.Equal(t, season, firstKnown(time.Time{}, season, item))
	assert.Equal(t, item, firstKnown(time.Time{}, time.Time{}, item))
	assert.True(t, firstKnown(time.Time{}, time.Time{}).IsZero())
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("")
	assert.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	f, err = ParseFilter("Posters")
	assert.NoError(t, err)
	assert.Equal(t, FilterPosters, f)

	_, err = ParseFilter("logos")
	assert.ErrorContains(t, err, "logos")
}

func TestFilter_Allows(t *testing.T) {
	assert.True(t, FilterAll.Allows(FilterThemes))
	assert.True(t, FilterBanners.Allows(FilterBanners))
	assert.False(t, FilterBanners.Allows(FilterPosters))
}
