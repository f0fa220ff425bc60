package server

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	gc "github.com/patrickmn/go-cache"

	"github.com/photoprism/gallery/internal/api"
	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/render"
	"github.com/photoprism/gallery/internal/service"
	"github.com/photoprism/gallery/internal/viewer"
)

// GalleryPage renders the gallery for the filter in the query string.
//
// GET /?collection=Birds&category=birds&tag=bird
func GalleryPage(c *gin.Context) {
	conf := service.Config()
	filter, err := api.BindFilter(c)

	if err != nil {
		log.Debugf("http: %s", err)
		c.Redirect(http.StatusFound, conf.BasePath())
		return
	}

	store := service.Store()
	cache := service.PageCache()

	key := store.Hash() + "\x1f" + conf.Variant().Name + "\x1f" + filter.Key()

	if html, ok := cache.Get(key); ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8", html.([]byte))
		return
	}

	var buf bytes.Buffer

	r := store.Search(filter, gallery.SearchOptions(conf))

	if err := render.Page(&buf, viewer.NewPage(r, gallery.PageOptions(conf))); err != nil {
		log.Errorf("http: %s", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Unknown values would let arbitrary query strings fill the cache.
	if r.Filter == filter && r.Known() {
		cache.Set(key, buf.Bytes(), gc.DefaultExpiration)
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Manifest serves the loaded photo manifest.
//
// GET /data/photos.json
func Manifest(c *gin.Context) {
	store := service.Store()

	c.Header("ETag", `"`+store.Hash()+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", store.Raw())
}
