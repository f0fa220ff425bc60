/*
Package search filters the photo store and enumerates facet values.

All functions are pure: they read photos and a Filter value and return new
values without modifying either.
*/
package search

import (
	"github.com/photoprism/gallery/internal/entity"
)

// Matches tests if a photo satisfies every active clause of the filter.
func Matches(p entity.Photo, f Filter) bool {
	okCollection := f.AnyCollection() || p.InCollection(f.Collection)
	okCategory := f.AnyCategory() || p.Category == f.Category
	okTag := f.AnyTag() || p.HasTag(f.Tag)

	return okCollection && okCategory && okTag
}

// Photos returns the matching photos in their original order.
func Photos(photos entity.Photos, f Filter) entity.Photos {
	result := make(entity.Photos, 0, len(photos))

	for _, p := range photos {
		if Matches(p, f) {
			result = append(result, p)
		}
	}

	return result
}
