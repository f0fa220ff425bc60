package search

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/photoprism/gallery/internal/entity"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// Options configure facet enumeration.
type Options struct {
	Locale     string
	Categories bool
	ScopeTags  bool
	TagLimit   int
}

// UniqSorted removes empty and duplicate values and sorts the rest using locale aware comparison.
func UniqSorted(values []string, locale string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		if v == "" {
			continue
		}

		if _, ok := seen[v]; ok {
			continue
		}

		seen[v] = struct{}{}
		result = append(result, v)
	}

	// A collator keeps internal buffers, so each call gets its own.
	collate.New(language.Make(locale)).SortStrings(result)

	return result
}

// Collections returns all collection names with the sentinel first.
func Collections(photos entity.Photos, locale string) []string {
	var values []string

	for _, p := range photos {
		for _, c := range p.Collections {
			if c != CollectionAll {
				values = append(values, c)
			}
		}
	}

	return append([]string{CollectionAll}, UniqSorted(values, locale)...)
}

// Categories returns all category values with the sentinel first.
func Categories(photos entity.Photos, locale string) []string {
	values := make([]string, 0, len(photos))

	for _, p := range photos {
		if p.Category != CategoryAll {
			values = append(values, p.Category)
		}
	}

	return append([]string{CategoryAll}, UniqSorted(values, locale)...)
}

// Tags returns the tag values to choose from with the sentinel first, and the
// filter to apply. With ScopeTags, only tags of photos in the selected collection
// are listed and a tag that doesn't occur there is reset to the sentinel.
func Tags(photos entity.Photos, f Filter, opt Options) ([]string, Filter) {
	var values []string

	scope := NewFilter().WithCollection(f.Collection)

	for _, p := range photos {
		if opt.ScopeTags && !Matches(p, scope) {
			continue
		}

		for _, t := range p.Tags {
			// Tags named like the sentinel can't be told apart from it.
			if !strings.EqualFold(t, TagAll) {
				values = append(values, t)
			}
		}
	}

	tags := UniqSorted(values, opt.Locale)

	if opt.ScopeTags && !f.AnyTag() && !contains(tags, f.Tag) {
		log.Debugf("search: tag %s not in collection %s, showing all", sanitize.Log(f.Tag), sanitize.Log(f.Collection))
		f = f.WithTag(TagAll)
	}

	if opt.TagLimit > 0 && len(tags) > opt.TagLimit {
		tags = tags[:opt.TagLimit]
	}

	return append([]string{TagAll}, tags...), f
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}

	return false
}
