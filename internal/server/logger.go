package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/gallery/pkg/sanitize"
)

// Logger logs each request at debug level.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Debugf("http: %s %s %d [%s]",
			c.Request.Method,
			sanitize.Log(path),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
