package server

import (
	"github.com/gin-gonic/gin"

	"github.com/photoprism/gallery/internal/api"
	"github.com/photoprism/gallery/internal/config"
)

func registerRoutes(router *gin.Engine, conf *config.Config) {
	// Gallery page.
	router.GET("/", GalleryPage)
	router.GET("/index.html", GalleryPage)

	// Manifest and images.
	router.GET("/"+config.DefaultManifest, Manifest)
	router.Static("/images", conf.ImagesPath())

	// REST API.
	v1 := router.Group(api.ApiUri)
	{
		api.SearchPhotos(v1)
		api.GetFacets(v1)
		api.GetStatus(v1)
	}

	// WebDAV share of the full resolution images.
	if conf.WebDAV() {
		WebDAV(conf.FullPath(), router.Group(WebDAVFull), conf)
	}
}
