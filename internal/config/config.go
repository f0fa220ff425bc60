/*
Package config provides the gallery configuration.

Values come from command line flags and GALLERY_* environment variables, and
can be preset in a YAML options file. Explicitly set flags take precedence.
*/
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/event"
	"github.com/photoprism/gallery/pkg/fs"
	"github.com/photoprism/gallery/pkg/sanitize"
)

var log = event.Log

// Config holds the gallery configuration.
type Config struct {
	options *Options
}

// NewConfig creates a new configuration from the cli context.
func NewConfig(ctx *cli.Context) *Config {
	c := &Config{options: NewOptions()}

	if ctx == nil {
		return c
	}

	if fileName := ctx.String("config-file"); fileName != "" {
		if err := c.options.Load(fileName); err != nil {
			log.Warnf("config: %s", err)
		} else {
			log.Debugf("config: loaded options from %s", sanitize.Log(fileName))
		}
	}

	c.options.SetContext(ctx)

	return c
}

// NewTestConfig returns a configuration with defaults suitable for tests.
func NewTestConfig(basePath string) *Config {
	o := NewOptions()
	o.Manifest = filepath.Join(basePath, "data", "photos.json")
	o.ImagesPath = filepath.Join(basePath, "images")
	o.FullPath = filepath.Join(basePath, "images", "gallery", "full")
	o.ThumbsPath = filepath.Join(basePath, "images", "gallery", "thumbs")

	return &Config{options: o}
}

// Options returns the raw options.
func (c *Config) Options() *Options {
	return c.options
}

// Init validates the configuration.
func (c *Config) Init() error {
	if _, ok := Variants[c.options.Variant]; !ok {
		return fmt.Errorf("config: unknown variant %s", sanitize.Log(c.options.Variant))
	}

	if c.options.HttpPort < 1 || c.options.HttpPort > 65535 {
		return fmt.Errorf("config: invalid http port %d", c.options.HttpPort)
	}

	if c.options.LogLevel != "" {
		event.SetLevel(c.options.LogLevel)
	}

	return nil
}

// SiteTitle returns the gallery page title.
func (c *Config) SiteTitle() string {
	return c.options.SiteTitle
}

// Manifest returns the manifest source, a file name or http(s) URL.
func (c *Config) Manifest() string {
	return c.options.Manifest
}

// HttpHost returns the server host name or IP.
func (c *Config) HttpHost() string {
	return c.options.HttpHost
}

// HttpPort returns the server port.
func (c *Config) HttpPort() int {
	return c.options.HttpPort
}

// HttpAddr returns the address the server listens on.
func (c *Config) HttpAddr() string {
	return fmt.Sprintf("%s:%d", c.HttpHost(), c.HttpPort())
}

// BasePath returns the URL path of the gallery page with a trailing slash, e.g. "/photos/".
func (c *Config) BasePath() string {
	p := strings.TrimSpace(c.options.BasePath)

	if p == "" {
		return DefaultBasePath
	}

	if !strings.HasSuffix(p, "/") {
		p += "/"
	}

	return p
}

// Locale returns the locale used to sort facet values.
func (c *Config) Locale() string {
	if c.options.Locale == "" {
		return "en"
	}

	return c.options.Locale
}

// CacheTTL returns how long rendered pages are cached.
func (c *Config) CacheTTL() time.Duration {
	return c.options.CacheTTL
}

// WebDAV tests if the full image folder is shared via WebDAV.
func (c *Config) WebDAV() bool {
	return c.options.WebDAV
}

// ReadOnly tests if writing to storage is disabled.
func (c *Config) ReadOnly() bool {
	return c.options.ReadOnly
}

// ThumbsMissing tests if the thumbnail folder does not exist yet.
func (c *Config) ThumbsMissing() bool {
	return !fs.PathExists(c.ThumbsPath())
}

// CategoryLabels returns display labels for category values.
func (c *Config) CategoryLabels() map[string]string {
	return c.options.CategoryLabels
}

// Variant returns the filter variant.
func (c *Config) Variant() Variant {
	v := Variants[c.options.Variant]

	if c.options.TagLimit >= 0 {
		v.TagLimit = c.options.TagLimit
	}

	return v
}
