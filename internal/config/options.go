package config

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v2"

	"github.com/photoprism/gallery/pkg/fs"
)

// Options holds the configuration values, see flags.go for descriptions.
type Options struct {
	SiteTitle      string            `yaml:"SiteTitle"`
	Manifest       string            `yaml:"Manifest"`
	ImagesPath     string            `yaml:"ImagesPath"`
	FullPath       string            `yaml:"FullPath"`
	ThumbsPath     string            `yaml:"ThumbsPath"`
	BasePath       string            `yaml:"BasePath"`
	HttpHost       string            `yaml:"HttpHost"`
	HttpPort       int               `yaml:"HttpPort"`
	Variant        string            `yaml:"Variant"`
	Locale         string            `yaml:"Locale"`
	TagLimit       int               `yaml:"TagLimit"`
	CacheTTL       time.Duration     `yaml:"CacheTTL"`
	WebDAV         bool              `yaml:"WebDAV"`
	ReadOnly       bool              `yaml:"ReadOnly"`
	LogLevel       string            `yaml:"LogLevel"`
	CategoryLabels map[string]string `yaml:"CategoryLabels"`
}

// NewOptions returns options with default values.
func NewOptions() *Options {
	return &Options{
		SiteTitle:  DefaultSiteTitle,
		Manifest:   DefaultManifest,
		ImagesPath: DefaultImagesPath,
		BasePath:   DefaultBasePath,
		HttpHost:   DefaultHttpHost,
		HttpPort:   DefaultHttpPort,
		Variant:    VariantButtons,
		Locale:     "en",
		TagLimit:   -1,
		CacheTTL:   DefaultCacheTTL,
		LogLevel:   "info",
		CategoryLabels: map[string]string{
			"all":        "All",
			"birds":      "Birds",
			"landscapes": "Landscapes",
			"people":     "People / Groups",
		},
	}
}

// Load reads options from a YAML file, keeping defaults for missing values.
func (o *Options) Load(fileName string) error {
	if !fs.FileExists(fileName) {
		return fmt.Errorf("options file %s not found", fileName)
	}

	data, err := os.ReadFile(fileName)

	if err != nil {
		return err
	}

	labels := o.CategoryLabels

	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("%s in %s", err, fileName)
	}

	// An empty CategoryLabels key unmarshals to nil.
	if o.CategoryLabels == nil {
		o.CategoryLabels = make(map[string]string, len(labels))
	}

	// Labels from the file extend the defaults.
	for k, v := range labels {
		if _, ok := o.CategoryLabels[k]; !ok {
			o.CategoryLabels[k] = v
		}
	}

	return nil
}

// SetContext applies flag values that were set explicitly or come from environment variables.
func (o *Options) SetContext(ctx *cli.Context) {
	if ctx.IsSet("site-title") {
		o.SiteTitle = ctx.String("site-title")
	}

	if ctx.IsSet("manifest") {
		o.Manifest = ctx.String("manifest")
	}

	if ctx.IsSet("images-path") {
		o.ImagesPath = ctx.String("images-path")
	}

	if ctx.IsSet("full-path") {
		o.FullPath = ctx.String("full-path")
	}

	if ctx.IsSet("thumbs-path") {
		o.ThumbsPath = ctx.String("thumbs-path")
	}

	if ctx.IsSet("base-path") {
		o.BasePath = ctx.String("base-path")
	}

	if ctx.IsSet("http-host") {
		o.HttpHost = ctx.String("http-host")
	}

	if ctx.IsSet("http-port") {
		o.HttpPort = ctx.Int("http-port")
	}

	if ctx.IsSet("variant") {
		o.Variant = ctx.String("variant")
	}

	if ctx.IsSet("locale") {
		o.Locale = ctx.String("locale")
	}

	if ctx.IsSet("tag-limit") {
		o.TagLimit = ctx.Int("tag-limit")
	}

	if ctx.IsSet("cache-ttl") {
		o.CacheTTL = ctx.Duration("cache-ttl")
	}

	if ctx.IsSet("webdav") {
		o.WebDAV = ctx.Bool("webdav")
	}

	if ctx.IsSet("read-only") {
		o.ReadOnly = ctx.Bool("read-only")
	}

	if ctx.IsSet("log-level") {
		o.LogLevel = ctx.String("log-level")
	}
}
