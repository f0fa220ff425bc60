/*
Package gallery loads the photo store and maintains gallery thumbnails.

The store is loaded once from a JSON manifest and never modified afterwards,
all filtering is a read-only projection of it, see package search.
*/
package gallery

import (
	"github.com/photoprism/gallery/internal/event"
)

var log = event.Log
