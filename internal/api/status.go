package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/photoprism/gallery/internal/service"
)

// StatusResponse describes the loaded photo store.
type StatusResponse struct {
	Status   string    `json:"status"`
	Photos   int       `json:"photos"`
	Hash     string    `json:"hash"`
	Source   string    `json:"source"`
	Variant  string    `json:"variant"`
	LoadedAt time.Time `json:"loadedAt"`
}

// GetStatus returns the photo store status.
//
// GET /api/v1/status
func GetStatus(router *gin.RouterGroup) {
	router.GET("/status", func(c *gin.Context) {
		store := service.Store()

		c.JSON(http.StatusOK, StatusResponse{
			Status:   "operational",
			Photos:   store.Count(),
			Hash:     store.Hash(),
			Source:   store.Source(),
			Variant:  service.Config().Variant().Name,
			LoadedAt: store.LoadedAt(),
		})
	})
}
