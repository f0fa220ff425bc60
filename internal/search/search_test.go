package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/photoprism/gallery/internal/entity"
)

var p1 = entity.Photo{Title: "P1", Collections: entity.Strings{"Parks"}, Tags: entity.Strings{"sunset"}, Full: "p1.jpg"}
var p2 = entity.Photo{Title: "P2", Collections: entity.Strings{"Parks", "Birds"}, Tags: entity.Strings{"bird", "spring"}, Full: "p2.jpg"}
var p3 = entity.Photo{Title: "P3", Collections: entity.Strings{"Birds"}, Tags: entity.Strings{}, Full: "p3.jpg"}

var fixture = entity.Photos{p1, p2, p3}

func titles(photos entity.Photos) []string {
	result := make([]string, len(photos))

	for i, p := range photos {
		result[i] = p.Title
	}

	return result
}

func TestFilter(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		f := NewFilter()

		assert.Equal(t, "All", f.Collection)
		assert.Equal(t, "all", f.Category)
		assert.Equal(t, "all", f.Tag)
		assert.True(t, f.IsClear())
	})
	t.Run("Immutable", func(t *testing.T) {
		f := NewFilter()
		g := f.WithCollection("Birds").WithTag("bird").WithCategory("birds")

		assert.True(t, f.IsClear())
		assert.Equal(t, Filter{Collection: "Birds", Category: "birds", Tag: "bird"}, g)
		assert.Equal(t, NewFilter(), g.Clear())
		assert.Equal(t, "Birds", g.Collection)
	})
	t.Run("Sentinels", func(t *testing.T) {
		assert.Equal(t, NewFilter(), ParseFilter("", "", ""))
		assert.Equal(t, NewFilter(), ParseFilter("All", "all", "All"))
		assert.Equal(t, "all", ParseFilter("all", "", "").Collection)
		assert.Equal(t, "all", NewFilter().WithTag("ALL").Tag)
		assert.Equal(t, "Parks", ParseFilter(" Parks ", "", "").Collection)
	})
	t.Run("Key", func(t *testing.T) {
		assert.NotEqual(t, ParseFilter("a", "", "b").Key(), ParseFilter("", "a", "b").Key())
		assert.Equal(t, ParseFilter("a", "", "").Key(), ParseFilter("a", "all", "All").Key())
	})
}

func TestMatches(t *testing.T) {
	photos := entity.Photos{
		p1,
		p2,
		p3,
		{Title: "P4", Category: "birds", Collections: entity.Strings{"Birds"}, Tags: entity.Strings{"bird"}},
		{Title: "P5", Category: "landscapes"},
	}

	collections := []string{"All", "Parks", "Birds", "Nowhere"}
	categories := []string{"all", "birds", "landscapes", "people"}
	tags := []string{"all", "sunset", "bird", "spring", "rain"}

	for _, c := range collections {
		for _, cat := range categories {
			for _, tag := range tags {
				f := ParseFilter(c, cat, tag)

				for _, p := range photos {
					want := (c == "All" || p.Collections.Contains(c)) &&
						(cat == "all" || p.Category == cat) &&
						(tag == "all" || p.Tags.Contains(tag))

					assert.Equal(t, want, Matches(p, f), "%s with collection=%s category=%s tag=%s", p.Title, c, cat, tag)
				}
			}
		}
	}
}

func TestPhotos(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		f := NewFilter()
		assert.Equal(t, []string{"P1", "P2", "P3"}, titles(Photos(fixture, f)))

		f = f.WithCollection("Birds")
		assert.Equal(t, []string{"P2", "P3"}, titles(Photos(fixture, f)))

		f = f.WithTag("bird")
		assert.Equal(t, []string{"P2"}, titles(Photos(fixture, f)))

		f = f.Clear()
		assert.Len(t, Photos(fixture, f), 3)
	})
	t.Run("OrderPreserved", func(t *testing.T) {
		photos := entity.Photos{p3, p1, p2}

		assert.Equal(t, []string{"P3", "P1", "P2"}, titles(Photos(photos, NewFilter())))
	})
	t.Run("Empty", func(t *testing.T) {
		assert.Len(t, Photos(nil, NewFilter()), 0)
		assert.Len(t, Photos(fixture, NewFilter().WithCollection("Nowhere")), 0)
	})
}

func TestUniqSorted(t *testing.T) {
	assert.Equal(t, []string{"apple", "Banana", "cherry"}, UniqSorted([]string{"cherry", "Banana", "", "apple", "cherry"}, "en"))
	assert.Equal(t, []string{}, UniqSorted(nil, "en"))
	assert.Equal(t, []string{"a", "b"}, UniqSorted([]string{"b", "a"}, ""))
}

func TestCollections(t *testing.T) {
	assert.Equal(t, []string{"All", "Birds", "Parks"}, Collections(fixture, "en"))
	assert.Equal(t, []string{"All"}, Collections(nil, "en"))
}

func TestSentinelNamedValues(t *testing.T) {
	photos := entity.Photos{
		{Title: "A", Category: "all", Collections: entity.Strings{"all"}, Tags: entity.Strings{"all"}},
		{Title: "B", Collections: entity.Strings{"Parks", "All"}, Tags: entity.Strings{"All", "tree"}},
	}

	t.Run("CollectionSelectable", func(t *testing.T) {
		f := NewFilter().WithCollection("all")

		assert.Equal(t, "all", f.Collection)
		assert.False(t, f.IsClear())
		assert.Equal(t, []string{"A"}, titles(Photos(photos, f)))
	})
	t.Run("NoDuplicates", func(t *testing.T) {
		assert.Equal(t, []string{"All", "all", "Parks"}, Collections(photos, "en"))
		assert.Equal(t, []string{"all"}, Categories(photos, "en"))

		tags, _ := Tags(photos, NewFilter(), Options{Locale: "en"})
		assert.Equal(t, []string{"all", "tree"}, tags)
	})
}

func TestCategories(t *testing.T) {
	photos := entity.Photos{{Category: "people"}, {Category: "birds"}, {}, {Category: "birds"}}

	assert.Equal(t, []string{"all", "birds", "people"}, Categories(photos, "en"))
}

func TestTags(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		tags, f := Tags(fixture, NewFilter(), Options{Locale: "en"})

		assert.Equal(t, []string{"all", "bird", "spring", "sunset"}, tags)
		assert.Equal(t, NewFilter(), f)
	})
	t.Run("Limit", func(t *testing.T) {
		tags, _ := Tags(fixture, NewFilter(), Options{Locale: "en", TagLimit: 2})

		assert.Equal(t, []string{"all", "bird", "spring"}, tags)
	})
	t.Run("UnscopedKeepsTag", func(t *testing.T) {
		tags, f := Tags(fixture, ParseFilter("Birds", "", "sunset"), Options{Locale: "en"})

		assert.Contains(t, tags, "sunset")
		assert.Equal(t, "sunset", f.Tag)
	})
	t.Run("Scoped", func(t *testing.T) {
		tags, f := Tags(fixture, ParseFilter("Birds", "", "bird"), Options{Locale: "en", ScopeTags: true})

		assert.Equal(t, []string{"all", "bird", "spring"}, tags)
		assert.Equal(t, "bird", f.Tag)
	})
	t.Run("ScopedReset", func(t *testing.T) {
		tags, f := Tags(fixture, ParseFilter("Birds", "", "sunset"), Options{Locale: "en", ScopeTags: true})

		assert.NotContains(t, tags, "sunset")
		assert.Equal(t, TagAll, f.Tag)
		assert.Equal(t, "Birds", f.Collection)
	})
}

func TestResolve(t *testing.T) {
	t.Run("Buttons", func(t *testing.T) {
		opt := Options{Locale: "en", Categories: true, TagLimit: 10}
		r := Resolve(fixture, ParseFilter("Birds", "", ""), opt)

		assert.Equal(t, 2, r.Count())
		assert.Equal(t, 3, r.Total)
		assert.Equal(t, []string{"All", "Birds", "Parks"}, r.Collections)
		assert.Equal(t, []string{"all"}, r.Categories)
		assert.Equal(t, []string{"all", "bird", "spring", "sunset"}, r.Tags)

		r = Resolve(fixture, r.Filter.WithTag("bird"), opt)
		assert.Equal(t, 1, r.Count())

		r = Resolve(fixture, r.Filter.Clear(), opt)
		assert.Equal(t, 3, r.Count())
		assert.True(t, r.Filter.IsClear())
	})
	t.Run("Known", func(t *testing.T) {
		opt := Options{Locale: "en", Categories: true, TagLimit: 10}

		assert.True(t, Resolve(fixture, NewFilter(), opt).Known())
		assert.True(t, Resolve(fixture, ParseFilter("Birds", "", "bird"), opt).Known())
		assert.False(t, Resolve(fixture, ParseFilter("Nowhere", "", ""), opt).Known())
		assert.False(t, Resolve(fixture, ParseFilter("", "", "rain"), opt).Known())
		assert.False(t, Resolve(fixture, ParseFilter("", "people", ""), opt).Known())
	})
	t.Run("Dropdowns", func(t *testing.T) {
		opt := Options{Locale: "en", ScopeTags: true}
		r := Resolve(fixture, ParseFilter("Birds", "birds", "sunset"), opt)

		assert.Nil(t, r.Categories)
		assert.Equal(t, NewFilter().WithCollection("Birds"), r.Filter)
		assert.Equal(t, []string{"P2", "P3"}, titles(r.Photos))
	})
}
