package gallery

import (
	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/search"
	"github.com/photoprism/gallery/internal/viewer"
)

// SearchOptions returns the facet options for the configured variant.
func SearchOptions(conf *config.Config) search.Options {
	v := conf.Variant()

	return search.Options{
		Locale:     conf.Locale(),
		Categories: v.Categories,
		ScopeTags:  v.ScopeTags,
		TagLimit:   v.TagLimit,
	}
}

// Search runs one full recompute of facets and results for the filter.
func (s *Store) Search(f search.Filter, opt search.Options) search.Result {
	return search.Resolve(s.photos, f, opt)
}

// PageOptions returns the page options for the configuration.
func PageOptions(conf *config.Config) viewer.PageOptions {
	return viewer.PageOptions{
		Title:          conf.SiteTitle(),
		BasePath:       conf.BasePath(),
		Variant:        conf.Variant(),
		CategoryLabels: conf.CategoryLabels(),
	}
}

// NewPage returns the gallery page view model for the filter.
func NewPage(s *Store, conf *config.Config, f search.Filter) viewer.Page {
	return viewer.NewPage(s.Search(f, SearchOptions(conf)), PageOptions(conf))
}
