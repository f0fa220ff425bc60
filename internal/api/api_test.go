package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/meta"
	"github.com/photoprism/gallery/internal/service"
)

const testManifest = `[
  {"title":"P1","collections":["Parks"],"tags":["sunset"],"full":"p1.jpg"},
  {"title":"P2","collections":["Parks","Birds"],"tags":["bird","spring"],"full":"p2.jpg","thumb":"t/p2.jpg"},
  {"title":"P3","collections":["Birds"],"tags":[],"full":"p3.jpg"}
]`

var testConf *config.Config

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "gallery-api")

	if err != nil {
		panic(err)
	}

	testConf = config.NewTestConfig(dir)
	service.SetConfig(testConf)

	manifest, err := meta.JSON([]byte(testManifest), "test")

	if err != nil {
		panic(err)
	}

	service.SetStore(gallery.NewStore(manifest.Photos, manifest.Raw, "test"))

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

// NewApiTest returns a new API test router.
func NewApiTest() (app *gin.Engine, router *gin.RouterGroup) {
	app = gin.New()
	router = app.Group(ApiUri)

	return app, router
}

// PerformRequest runs an API request with an empty request body.
func PerformRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestSearchPhotos(t *testing.T) {
	app, router := NewApiTest()
	SearchPhotos(router)

	t.Run("All", func(t *testing.T) {
		r := PerformRequest(app, "GET", "/api/v1/photos")
		require.Equal(t, http.StatusOK, r.Code)

		var resp PhotosResponse
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))

		assert.Equal(t, 3, resp.Summary.Count)
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, "3 photos shown", resp.Text)
		assert.Len(t, resp.Cards, 3)
		assert.Equal(t, "fa-sun", resp.Cards[0].Icon)
		assert.Equal(t, "p1.jpg", resp.Cards[0].Thumb)
		assert.Equal(t, "t/p2.jpg", resp.Cards[1].Thumb)
	})
	t.Run("Filtered", func(t *testing.T) {
		r := PerformRequest(app, "GET", "/api/v1/photos?collection=Birds")
		require.Equal(t, http.StatusOK, r.Code)

		var resp PhotosResponse
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Summary.Count)

		r = PerformRequest(app, "GET", "/api/v1/photos?collection=Birds&tag=bird")
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Summary.Count)
		assert.Equal(t, "1 photo shown · Collection: Birds · Tag: bird", resp.Text)
		assert.Equal(t, "P2", resp.Cards[0].Title)

		r = PerformRequest(app, "GET", "/api/v1/photos?collection=Birds&tag=bird&clear=true")
		require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Summary.Count)
		assert.True(t, resp.Filter.IsClear())
	})
	t.Run("BadRequest", func(t *testing.T) {
		r := PerformRequest(app, "GET", "/api/v1/photos?clear=maybe")
		assert.Equal(t, http.StatusBadRequest, r.Code)
	})
}

func TestGetFacets(t *testing.T) {
	app, router := NewApiTest()
	GetFacets(router)

	r := PerformRequest(app, "GET", "/api/v1/facets")
	require.Equal(t, http.StatusOK, r.Code)

	var resp FacetsResponse
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))

	assert.Equal(t, []string{"All", "Birds", "Parks"}, resp.Collections)
	assert.Equal(t, []string{"all"}, resp.Categories)
	assert.Equal(t, []string{"all", "bird", "spring", "sunset"}, resp.Tags)
}

func TestGetStatus(t *testing.T) {
	app, router := NewApiTest()
	GetStatus(router)

	r := PerformRequest(app, "GET", "/api/v1/status")
	require.Equal(t, http.StatusOK, r.Code)

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Photos)
	assert.Equal(t, "buttons", resp.Variant)
	assert.Len(t, resp.Hash, 40)
}
