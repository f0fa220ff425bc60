/*
Package service provides the shared gallery services.

The photo store is set once after loading the manifest. Services are created
lazily on first use.
*/
package service

import (
	"sync"
	"time"

	gc "github.com/patrickmn/go-cache"

	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/gallery"
)

var conf *config.Config

var services struct {
	sync.RWMutex
	store     *gallery.Store
	thumbs    *gallery.Thumbs
	pageCache *gc.Cache
}

// SetConfig sets the configuration and resets all services.
func SetConfig(c *config.Config) {
	if c == nil {
		panic("config is nil")
	}

	services.Lock()
	defer services.Unlock()

	conf = c
	services.store = nil
	services.thumbs = nil
	services.pageCache = nil
}

// Config returns the configuration.
func Config() *config.Config {
	if conf == nil {
		panic("config is nil")
	}

	return conf
}

// SetStore sets the photo store.
func SetStore(s *gallery.Store) {
	services.Lock()
	defer services.Unlock()

	services.store = s
}

// Store returns the photo store, or an empty store if no manifest was loaded.
func Store() *gallery.Store {
	services.Lock()
	defer services.Unlock()

	if services.store == nil {
		services.store = gallery.EmptyStore()
	}

	return services.store
}

// Thumbs returns the thumbnail generator.
func Thumbs() *gallery.Thumbs {
	services.Lock()
	defer services.Unlock()

	if services.thumbs == nil {
		services.thumbs = gallery.NewThumbs(Config())
	}

	return services.thumbs
}

// PageCache returns the cache for rendered pages.
func PageCache() *gc.Cache {
	services.Lock()
	defer services.Unlock()

	if services.pageCache == nil {
		ttl := Config().CacheTTL()
		services.pageCache = gc.New(ttl, ttl+time.Minute)
	}

	return services.pageCache
}
