package plex

import (
	"encoding/xml"
	"time"
)

// Section types the artwork sync understands.
const (
	TypeMovie   = "movie"
	TypeShow    = "show"
	TypeSeason  = "season"
	TypeEpisode = "episode"
)

// Identity holds Plex server identity information.
type Identity struct {
	Name    string
	Version string
}

// identityResponse is the XML response from root endpoint.
type identityResponse struct {
	XMLName      xml.Name `xml:"MediaContainer"`
	FriendlyName string   `xml:"friendlyName,attr"`
	Version      string   `xml:"version,attr"`
}

// Section represents a Plex library section.
type Section struct {
	Key           string     `xml:"key,attr"`
	Title         string     `xml:"title,attr"`
	Type          string     `xml:"type,attr"`
	Locations     []Location `xml:"Location"`
	ScannedAt     int64      `xml:"scannedAt,attr"`
	RefreshingRaw int        `xml:"refreshing,attr"`
}

// Refreshing returns true if the section is currently being scanned.
func (s Section) Refreshing() bool {
	return s.RefreshingRaw == 1
}

// Location represents a library section's filesystem location.
type Location struct {
	Path string `xml:"path,attr"`
}

// sectionsResponse is the XML response from /library/sections.
type sectionsResponse struct {
	XMLName  xml.Name  `xml:"MediaContainer"`
	Sections []Section `xml:"Directory"`
}

// Metadata is a movie, show, season or episode as Plex describes it.
type Metadata struct {
	RatingKey string  `xml:"ratingKey,attr"`
	Type      string  `xml:"type,attr"`
	Title     string  `xml:"title,attr"`
	Index     int     `xml:"index,attr"`
	Thumb     string  `xml:"thumb,attr"`
	Art       string  `xml:"art,attr"`
	Banner    string  `xml:"banner,attr"`
	Theme     string  `xml:"theme,attr"`
	AddedAt   int64   `xml:"addedAt,attr"`
	UpdatedAt int64   `xml:"updatedAt,attr"`
	Media     []Media `xml:"Media"`
}

// Media is one version of a video.
type Media struct {
	Parts []Part `xml:"Part"`
}

// Part is a file backing a media version.
type Part struct {
	File string `xml:"file,attr"`
	Size int64  `xml:"size,attr"`
}

// Updated returns the last-modified time, or the zero time when Plex omits it.
func (m Metadata) Updated() time.Time {
	if m.UpdatedAt == 0 {
		return time.Time{}
	}
	return time.Unix(m.UpdatedAt, 0)
}

// Files returns every part's file path in order.
func (m Metadata) Files() []string {
	var files []string
	for _, media := range m.Media {
		for _, p := range media.Parts {
			files = append(files, p.File)
		}
	}
	return files
}

// metadataResponse is the XML response for listings and metadata lookups.
// Movies and episodes arrive as Video, shows and seasons as Directory.
type metadataResponse struct {
	XMLName     xml.Name   `xml:"MediaContainer"`
	Size        int        `xml:"size,attr"`
	Videos      []Metadata `xml:"Video"`
	Directories []Metadata `xml:"Directory"`
}

func (r metadataResponse) all() []Metadata {
	items := make([]Metadata, 0, len(r.Videos)+len(r.Directories))
	items = append(items, r.Videos...)
	items = append(items, r.Directories...)
	return items
}
