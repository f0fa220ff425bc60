package viewer

import (
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/photoprism/gallery/internal/search"
)

// ActiveFilter represents a selected facet shown in the summary line.
type ActiveFilter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Summary represents the results summary line.
type Summary struct {
	Count   int            `json:"count"`
	Noun    string         `json:"noun"`
	Filters []ActiveFilter `json:"filters"`
}

// NewSummary creates the summary for count matching photos and the applied filter.
func NewSummary(count int, f search.Filter) Summary {
	s := Summary{
		Count:   count,
		Noun:    english.PluralWord(count, "photo", "photos"),
		Filters: []ActiveFilter{},
	}

	if !f.AnyCollection() {
		s.Filters = append(s.Filters, ActiveFilter{Name: "Collection", Value: f.Collection})
	}

	if !f.AnyCategory() {
		s.Filters = append(s.Filters, ActiveFilter{Name: "Category", Value: f.Category})
	}

	if !f.AnyTag() {
		s.Filters = append(s.Filters, ActiveFilter{Name: "Tag", Value: f.Tag})
	}

	return s
}

// Text returns the summary as plain text, e.g. "2 photos shown · Collection: Birds".
func (s Summary) Text() string {
	var b strings.Builder

	b.WriteString(english.Plural(s.Count, "photo", "photos"))
	b.WriteString(" shown")

	for _, f := range s.Filters {
		b.WriteString(" · ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Value)
	}

	return b.String()
}
