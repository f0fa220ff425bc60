/*
Package thumb creates downscaled gallery thumbnails.

Thumbnails keep the aspect ratio of the original and are never upscaled.
JPEG and PNG originals are re-encoded in their own format.
*/
package thumb

import (
	"github.com/photoprism/gallery/internal/event"
)

var log = event.Log

const (
	// MaxWidth is the default max thumbnail width in pixels.
	MaxWidth = 900

	// JpegQuality is the default JPEG encoding quality.
	JpegQuality = 82
)
