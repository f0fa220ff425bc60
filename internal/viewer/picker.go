package viewer

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/photoprism/gallery/internal/search"
)

// Option represents one choice of a filter picker.
type Option struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
	URL    string `json:"url"`
}

// Picker represents a filter picker.
type Picker struct {
	Name      string   `json:"name"`
	Title     string   `json:"title"`
	ElementID string   `json:"-"`
	Options   []Option `json:"options"`
}

// FilterURL returns the page URL that applies the filter.
func FilterURL(basePath string, f search.Filter) string {
	if basePath == "" {
		basePath = "/"
	}

	q := url.Values{}

	if !f.AnyCollection() {
		q.Set("collection", f.Collection)
	}

	if !f.AnyCategory() {
		q.Set("category", f.Category)
	}

	if !f.AnyTag() {
		q.Set("tag", f.Tag)
	}

	if len(q) == 0 {
		return basePath
	}

	return basePath + "?" + q.Encode()
}

// CollectionPicker returns the collection picker for the values.
func CollectionPicker(basePath string, values []string, f search.Filter) Picker {
	p := Picker{Name: "collection", Title: "Collections", ElementID: "collectionsRow"}

	for _, v := range values {
		p.Options = append(p.Options, Option{
			Value:  v,
			Label:  v,
			Active: v == f.Collection,
			URL:    FilterURL(basePath, f.WithCollection(v)),
		})
	}

	return p
}

// CategoryPicker returns the category picker for the values.
func CategoryPicker(basePath string, values []string, f search.Filter, labels map[string]string) Picker {
	p := Picker{Name: "category", Title: "Categories", ElementID: "categoryFilters"}

	for _, v := range values {
		p.Options = append(p.Options, Option{
			Value:  v,
			Label:  CategoryLabel(v, labels),
			Active: v == f.Category,
			URL:    FilterURL(basePath, f.WithCategory(v)),
		})
	}

	return p
}

// TagPicker returns the tag picker for the values.
func TagPicker(basePath string, values []string, f search.Filter) Picker {
	p := Picker{Name: "tag", Title: "Tags", ElementID: "tagFilters"}

	for _, v := range values {
		p.Options = append(p.Options, Option{
			Value:  v,
			Label:  TagLabel(v),
			Active: v == f.Tag,
			URL:    FilterURL(basePath, f.WithTag(v)),
		})
	}

	return p
}

// CategoryLabel returns the display label of a category.
func CategoryLabel(category string, labels map[string]string) string {
	if l, ok := labels[category]; ok && l != "" {
		return l
	}

	if category == search.CategoryAll {
		return "All"
	}

	return upperFirst(category)
}

// TagLabel returns the display label of a tag, dashes become spaces.
func TagLabel(tag string) string {
	if tag == search.TagAll {
		return "All"
	}

	return strings.ReplaceAll(tag, "-", " ")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)

	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
