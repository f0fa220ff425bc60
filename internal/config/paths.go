package config

import (
	"path/filepath"
)

// ImagesPath returns the folder served as /images.
func (c *Config) ImagesPath() string {
	return filepath.Clean(c.options.ImagesPath)
}

// FullPath returns the folder with full resolution gallery images.
func (c *Config) FullPath() string {
	if c.options.FullPath == "" {
		return filepath.Join(c.ImagesPath(), "gallery", "full")
	}

	return filepath.Clean(c.options.FullPath)
}

// ThumbsPath returns the folder thumbnails are written to.
func (c *Config) ThumbsPath() string {
	if c.options.ThumbsPath == "" {
		return filepath.Join(c.ImagesPath(), "gallery", "thumbs")
	}

	return filepath.Clean(c.options.ThumbsPath)
}
