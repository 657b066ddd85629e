package artwork

import (
	"fmt"
	"strings"
)

// Filter selects which asset kinds a run synchronizes.
type Filter string

const (
	FilterAll         Filter = "all"
	FilterPosters     Filter = "posters"
	FilterBackgrounds Filter = "backgrounds"
	FilterBanners     Filter = "banners"
	FilterThemes      Filter = "themes"
)

// Filters lists every accepted filter value in display order.
var Filters = []Filter{FilterAll, FilterPosters, FilterBackgrounds, FilterBanners, FilterThemes}

// ParseFilter validates a filter name. An empty string means FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown asset filter %q (want one of %s)", s, filterNames())
}

// Allows reports whether assets of kind k pass the filter.
func (f Filter) Allows(k Filter) bool {
	return f == FilterAll || f == "" || f == k
}

func filterNames() string {
	names := make([]string, len(Filters))
	for i, f := range Filters {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
