package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/search"
	"github.com/photoprism/gallery/internal/service"
	"github.com/photoprism/gallery/internal/viewer"
)

// PhotosResponse represents the result of a photo search.
type PhotosResponse struct {
	Filter  search.Filter  `json:"filter"`
	Summary viewer.Summary `json:"summary"`
	Text    string         `json:"text"`
	Total   int            `json:"total"`
	Cards   viewer.Cards   `json:"cards"`
}

// FacetsResponse represents the facet values to choose from.
type FacetsResponse struct {
	Filter      search.Filter `json:"filter"`
	Collections []string      `json:"collections"`
	Categories  []string      `json:"categories,omitempty"`
	Tags        []string      `json:"tags"`
}

// SearchPhotos finds photos matching the filter.
//
// GET /api/v1/photos?collection=Birds&category=birds&tag=bird
func SearchPhotos(router *gin.RouterGroup) {
	router.GET("/photos", func(c *gin.Context) {
		f, err := BindFilter(c)

		if err != nil {
			AbortBadRequest(c, err)
			return
		}

		conf := service.Config()
		r := service.Store().Search(f, gallery.SearchOptions(conf))
		summary := viewer.NewSummary(r.Count(), r.Filter)

		c.JSON(http.StatusOK, PhotosResponse{
			Filter:  r.Filter,
			Summary: summary,
			Text:    summary.Text(),
			Total:   r.Total,
			Cards:   viewer.NewCards(r.Photos),
		})
	})
}

// GetFacets returns the collections, categories and tags to choose from.
//
// GET /api/v1/facets?collection=Birds
func GetFacets(router *gin.RouterGroup) {
	router.GET("/facets", func(c *gin.Context) {
		f, err := BindFilter(c)

		if err != nil {
			AbortBadRequest(c, err)
			return
		}

		conf := service.Config()
		r := service.Store().Search(f, gallery.SearchOptions(conf))

		c.JSON(http.StatusOK, FacetsResponse{
			Filter:      r.Filter,
			Collections: r.Collections,
			Categories:  r.Categories,
			Tags:        r.Tags,
		})
	})
}
