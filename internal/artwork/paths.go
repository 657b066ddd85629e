package artwork

import (
	"os"
	"path/filepath"
	"strings"
)

// Fixed destination filenames recognized by Jellyfin, Kodi and Emby.
const (
	PosterFile     = "poster.jpg"
	BackgroundFile = "fanart.jpg"
	BannerFile     = "banner.jpg"
	ThemeFile      = "theme.mp3"
	SeasonFile     = "folder.jpg"
	thumbSuffix    = "-thumb.jpg"
)

// ItemDir returns the directory an item's own assets belong in.
// Movies use the directory of their first media part. Shows use the parent of
// the season directory holding the first episode file found.
func ItemDir(item Item, seasons []Season) (string, bool) {
	switch item.Kind {
	case KindMovie:
		file, ok := firstPart(item.Parts)
		if !ok {
			return "", false
		}
		return filepath.Dir(file), true
	case KindShow:
		for _, s := range seasons {
			if file, ok := firstEpisodeFile(s.Episodes); ok {
				return filepath.Dir(filepath.Dir(file)), true
			}
		}
	}
	return "", false
}

// SeasonDir returns the directory holding the season's first episode file.
func SeasonDir(season Season) (string, bool) {
	file, ok := firstEpisodeFile(season.Episodes)
	if !ok {
		return "", false
	}
	return filepath.Dir(file), true
}

// EpisodeThumb returns where an episode thumbnail is written: next to the
// video file, named after it. Only the first part is considered.
func EpisodeThumb(ep Episode) (dir, filename string, ok bool) {
	file, ok := firstPart(ep.Parts)
	if !ok {
		return "", "", false
	}
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Dir(file), base + thumbSuffix, true
}

// OutputDir maps a source directory under an output override.
// An empty override, or "/", writes into the media folders themselves.
func OutputDir(override, dir string) string {
	if override == "" || override == string(os.PathSeparator) {
		return dir
	}
	rel := strings.TrimLeft(dir, `/\`)
	return filepath.Join(override, rel)
}

func firstPart(parts []Part) (string, bool) {
	for _, p := range parts {
		if p.File != "" {
			return p.File, true
		}
	}
	return "", false
}

func firstEpisodeFile(episodes []Episode) (string, bool) {
	for _, ep := range episodes {
		if file, ok := firstPart(ep.Parts); ok {
			return file, true
		}
	}
	return "", false
}
