package plex

import (
	"context"
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// suggestThreshold is the minimum Jaro-Winkler score for a "did you mean" hint.
const suggestThreshold = 0.70

var folder = cases.Fold()

// normalizeName folds case, strips accents and collapses whitespace,
// so "Séries TV" matches "series tv".
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return strings.Join(strings.Fields(folder.String(result)), " ")
}

// MatchSection finds a section by title, ignoring case and accents.
// On a miss it returns a *LibraryNotFoundError with the closest title.
func MatchSection(sections []Section, name string) (*Section, error) {
	want := normalizeName(name)
	for i := range sections {
		if normalizeName(sections[i].Title) == want {
			return &sections[i], nil
		}
	}

	notFound := &LibraryNotFoundError{Name: name}
	var bestScore float32
	for _, s := range sections {
		notFound.Available = append(notFound.Available, s.Title)
		score := edlib.JaroWinklerSimilarity(want, normalizeName(s.Title))
		if score > bestScore {
			bestScore = score
			if score >= suggestThreshold {
				notFound.Suggestion = s.Title
			}
		}
	}
	return nil, notFound
}

// FindSection finds a movie or show section by title.
func (c *Client) FindSection(ctx context.Context, name string) (*Section, error) {
	sections, err := c.ArtworkSections(ctx)
	if err != nil {
		return nil, err
	}
	return MatchSection(sections, name)
}
