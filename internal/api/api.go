/*
Package api provides the gallery REST API.

All handlers are read-only projections of the loaded photo store.
*/
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/gallery/internal/event"
	"github.com/photoprism/gallery/internal/form"
	"github.com/photoprism/gallery/internal/search"
)

var log = event.Log

// ApiUri is the base path of the API.
const ApiUri = "/api/v1"

// Error represents an API error response.
type Error struct {
	Error string `json:"error"`
}

// AbortBadRequest aborts the request with status 400.
func AbortBadRequest(c *gin.Context, err error) {
	log.Debugf("api: %s", err)
	c.AbortWithStatusJSON(http.StatusBadRequest, Error{Error: "invalid request"})
}

// BindFilter reads the filter selection from the query string.
func BindFilter(c *gin.Context) (search.Filter, error) {
	var f form.SearchPhotos

	if err := c.ShouldBindQuery(&f); err != nil {
		return search.Filter{}, err
	}

	// A bare "?clear" has an empty value.
	if v, ok := c.GetQuery("clear"); ok && v == "" {
		f.Clear = "true"
	}

	return f.Filter()
}
