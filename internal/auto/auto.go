/*
Package auto creates thumbnails for new or changed images in the background.
*/
package auto

import (
	"context"
	"path/filepath"

	"github.com/photoprism/gallery/internal/event"
	"github.com/photoprism/gallery/pkg/sanitize"
)

var log = event.Log

// Creator creates the thumbnail for a full resolution image.
type Creator interface {
	Create(fileName string) error
}

var queue = make(chan string, 64)

// ShouldThumb requests a thumbnail for the file, the request is dropped if the queue is full.
func ShouldThumb(fileName string) bool {
	select {
	case queue <- fileName:
		return true
	default:
		log.Warnf("auto-thumbs: queue full, skipped %s", sanitize.Log(filepath.Base(fileName)))
		return false
	}
}

// Start creates requested thumbnails until the context is canceled.
func Start(ctx context.Context, c Creator) {
	for {
		select {
		case <-ctx.Done():
			return
		case fileName := <-queue:
			if err := c.Create(fileName); err != nil {
				log.Errorf("auto-thumbs: %s", err)
			} else {
				log.Infof("auto-thumbs: created thumbnail for %s", sanitize.Log(filepath.Base(fileName)))
				event.Publish("thumbs.created", event.Data{"fileName": fileName})
			}
		}
	}
}
