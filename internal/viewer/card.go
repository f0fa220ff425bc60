package viewer

import (
	"strconv"

	"github.com/gosimple/slug"

	"github.com/photoprism/gallery/internal/entity"
)

// Card represents one photo in the results grid.
type Card struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Badge    string `json:"badge"`
	Icon     string `json:"icon"`
	Thumb    string `json:"thumb"`
	Full     string `json:"full"`
}

// NewCard creates a card for the photo at position i of the results.
func NewCard(p entity.Photo, i int) Card {
	badge := Badge(p)

	id := slug.Make(p.Title)

	if id == "" {
		id = "photo"
	}

	return Card{
		ID:       id + "-" + strconv.Itoa(i+1),
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Badge:    badge,
		Icon:     Icon(badge),
		Thumb:    p.ThumbURI(),
		Full:     p.Full,
	}
}

// Cards represents the results grid.
type Cards []Card

// NewCards creates one card per photo, keeping the order.
func NewCards(photos entity.Photos) Cards {
	result := make(Cards, 0, len(photos))

	for i, p := range photos {
		result = append(result, NewCard(p, i))
	}

	return result
}
