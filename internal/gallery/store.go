package gallery

import (
	"time"

	"github.com/photoprism/gallery/internal/entity"
	"github.com/photoprism/gallery/pkg/fs"
)

// Store is an immutable, ordered photo store.
type Store struct {
	photos   entity.Photos
	raw      []byte
	hash     string
	source   string
	loadedAt time.Time
}

// NewStore creates a store from a list of photos.
func NewStore(photos entity.Photos, raw []byte, source string) *Store {
	return &Store{
		photos:   photos.Clone(),
		raw:      raw,
		hash:     fs.HashBytes(raw),
		source:   source,
		loadedAt: time.Now().UTC(),
	}
}

// EmptyStore returns a store without photos.
func EmptyStore() *Store {
	return NewStore(entity.Photos{}, []byte("[]"), "")
}

// Photos returns a copy of all photos in manifest order.
func (s *Store) Photos() entity.Photos {
	return s.photos.Clone()
}

// Count returns the number of photos.
func (s *Store) Count() int {
	return len(s.photos)
}

// Raw returns the manifest document the store was loaded from.
func (s *Store) Raw() []byte {
	return s.raw
}

// Hash returns the manifest content hash.
func (s *Store) Hash() string {
	return s.hash
}

// Source returns the manifest file name or URL.
func (s *Store) Source() string {
	return s.source
}

// LoadedAt returns the time the store was created.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}
