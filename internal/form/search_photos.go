package form

import (
	"fmt"
	"strconv"

	"github.com/photoprism/gallery/internal/search"
)

// SearchPhotos represents the gallery filter query string, e.g. "/?collection=Birds&tag=bird".
type SearchPhotos struct {
	Collection string `form:"collection"`
	Category   string `form:"category"`
	Tag        string `form:"tag"`
	Clear      string `form:"clear"`
}

// Filter returns the filter selection, a true Clear value resets every facet.
func (f SearchPhotos) Filter() (search.Filter, error) {
	if f.Clear != "" {
		clear, err := strconv.ParseBool(f.Clear)

		if err != nil {
			return search.Filter{}, fmt.Errorf("invalid clear value %q", f.Clear)
		}

		if clear {
			return search.NewFilter(), nil
		}
	}

	return search.ParseFilter(f.Collection, f.Category, f.Tag), nil
}
