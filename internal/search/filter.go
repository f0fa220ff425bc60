package search

import "strings"

const (
	CollectionAll = "All"
	CategoryAll   = "all"
	TagAll        = "all"
)

// Filter represents the active facet selection. Filter values are never modified
// in place, the With* methods return a new selection.
type Filter struct {
	Collection string `json:"collection"`
	Category   string `json:"category"`
	Tag        string `json:"tag"`
}

// NewFilter returns a selection that matches every photo.
func NewFilter() Filter {
	return Filter{
		Collection: CollectionAll,
		Category:   CategoryAll,
		Tag:        TagAll,
	}
}

// ParseFilter returns a normalized selection, empty values become sentinels.
func ParseFilter(collection, category, tag string) Filter {
	return NewFilter().WithCollection(collection).WithCategory(category).WithTag(tag)
}

// WithCollection returns a copy with the collection selected. Only the exact
// sentinel "All" selects every collection, "all" is a regular name.
func (f Filter) WithCollection(name string) Filter {
	name = strings.TrimSpace(name)

	if name == "" {
		name = CollectionAll
	}

	f.Collection = name

	return f
}

// WithCategory returns a copy with the category selected.
func (f Filter) WithCategory(category string) Filter {
	category = strings.TrimSpace(category)

	if category == "" || category == CategoryAll {
		category = CategoryAll
	}

	f.Category = category

	return f
}

// WithTag returns a copy with the tag selected, "All" and "all" both select every tag.
func (f Filter) WithTag(tag string) Filter {
	tag = strings.TrimSpace(tag)

	if tag == "" || strings.EqualFold(tag, TagAll) {
		tag = TagAll
	}

	f.Tag = tag

	return f
}

// Clear returns a selection that matches every photo.
func (f Filter) Clear() Filter {
	return NewFilter()
}

// AnyCollection tests if no collection is selected.
func (f Filter) AnyCollection() bool {
	return f.Collection == CollectionAll || f.Collection == ""
}

// AnyCategory tests if no category is selected.
func (f Filter) AnyCategory() bool {
	return f.Category == CategoryAll || f.Category == ""
}

// AnyTag tests if no tag is selected.
func (f Filter) AnyTag() bool {
	return f.Tag == TagAll || f.Tag == ""
}

// IsClear tests if no facet is selected.
func (f Filter) IsClear() bool {
	return f.AnyCollection() && f.AnyCategory() && f.AnyTag()
}

// Key returns a string that identifies the selection, e.g. for caching.
func (f Filter) Key() string {
	return f.Collection + "\x1f" + f.Category + "\x1f" + f.Tag
}
