package search

import (
	"github.com/photoprism/gallery/internal/entity"
	"github.com/photoprism/gallery/internal/event"
)

var log = event.Log

// Result represents one full recompute of facets and matching photos.
type Result struct {
	Filter      Filter        `json:"filter"`
	Collections []string      `json:"collections"`
	Categories  []string      `json:"categories,omitempty"`
	Tags        []string      `json:"tags"`
	Photos      entity.Photos `json:"-"`
	Total       int           `json:"total"`
}

// Count returns the number of matching photos.
func (r Result) Count() int {
	return len(r.Photos)
}

// Known tests if every selected value occurs in the listed facet values.
func (r Result) Known() bool {
	return contains(r.Collections, r.Filter.Collection) &&
		(r.Filter.AnyCategory() || contains(r.Categories, r.Filter.Category)) &&
		contains(r.Tags, r.Filter.Tag)
}

// Resolve enumerates the facets, applies the filter and returns the result.
func Resolve(photos entity.Photos, f Filter, opt Options) Result {
	if !opt.Categories {
		f = f.WithCategory(CategoryAll)
	}

	result := Result{
		Collections: Collections(photos, opt.Locale),
		Total:       len(photos),
	}

	if opt.Categories {
		result.Categories = Categories(photos, opt.Locale)
	}

	result.Tags, f = Tags(photos, f, opt)
	result.Filter = f
	result.Photos = Photos(photos, f)

	return result
}
