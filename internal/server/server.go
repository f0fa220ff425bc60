/*
Package server provides the gallery web server.

Every request is answered with one full, synchronous render of the page or
API response for the filter found in its query string.
*/
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/event"
)

var log = event.Log

// NewRouter returns the gin engine with all routes registered.
func NewRouter(conf *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(Logger(), gin.Recovery())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, conf)

	return router
}

// Start runs the web server until the context is canceled.
func Start(ctx context.Context, conf *config.Config) {
	if event.Log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &http.Server{
		Addr:    conf.HttpAddr(),
		Handler: NewRouter(conf),
	}

	log.Infof("http: starting web server at %s", server.Addr)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http: %s", err)
		}
	}()

	<-ctx.Done()

	log.Info("http: shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http: shutdown failed (%s)", err)
	}
}
