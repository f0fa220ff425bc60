package viewer

import (
	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/search"
)

// PageOptions configure the gallery page.
type PageOptions struct {
	Title          string
	BasePath       string
	Variant        config.Variant
	CategoryLabels map[string]string
}

// Page represents the complete gallery page.
type Page struct {
	Title       string        `json:"title"`
	Controls    string        `json:"controls"`
	Filter      search.Filter `json:"filter"`
	Collections Picker        `json:"collections"`
	Categories  *Picker       `json:"categories,omitempty"`
	Tags        Picker        `json:"tags"`
	Cards       Cards         `json:"cards"`
	Summary     Summary       `json:"summary"`
	ClearURL    string        `json:"clearUrl"`
	Total       int           `json:"total"`
}

// NewPage creates the page view model from a search result.
func NewPage(r search.Result, opt PageOptions) Page {
	if opt.Title == "" {
		opt.Title = "Gallery"
	}

	page := Page{
		Title:       opt.Title,
		Controls:    string(opt.Variant.Controls),
		Filter:      r.Filter,
		Collections: CollectionPicker(opt.BasePath, r.Collections, r.Filter),
		Tags:        TagPicker(opt.BasePath, r.Tags, r.Filter),
		Cards:       NewCards(r.Photos),
		Summary:     NewSummary(r.Count(), r.Filter),
		ClearURL:    FilterURL(opt.BasePath, r.Filter.Clear()),
		Total:       r.Total,
	}

	if opt.Variant.Categories {
		categories := CategoryPicker(opt.BasePath, r.Categories, r.Filter, opt.CategoryLabels)
		page.Categories = &categories
	}

	return page
}

// Dropdowns tests if pickers are rendered as select boxes.
func (p Page) Dropdowns() bool {
	return p.Controls == string(config.ControlsDropdowns)
}
