package config

import (
	"time"

	"github.com/urfave/cli"
)

const (
	DefaultSiteTitle  = "Gallery"
	DefaultManifest   = "data/photos.json"
	DefaultImagesPath = "images"
	DefaultBasePath   = "/"
	DefaultHttpHost   = "0.0.0.0"
	DefaultHttpPort   = 2342
	DefaultCacheTTL   = 15 * time.Minute
)

// GlobalFlags describes global command-line parameters and flags.
var GlobalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "config-file, c",
		Usage:  "load options from a YAML `FILENAME`",
		EnvVar: "GALLERY_CONFIG_FILE",
	},
	cli.StringFlag{
		Name:   "site-title",
		Usage:  "gallery page `TITLE`",
		Value:  DefaultSiteTitle,
		EnvVar: "GALLERY_SITE_TITLE",
	},
	cli.StringFlag{
		Name:   "manifest, m",
		Usage:  "photo manifest `PATH` or http(s) URL",
		Value:  DefaultManifest,
		EnvVar: "GALLERY_MANIFEST",
	},
	cli.StringFlag{
		Name:   "images-path",
		Usage:  "image folder `PATH` served as /images",
		Value:  DefaultImagesPath,
		EnvVar: "GALLERY_IMAGES_PATH",
	},
	cli.StringFlag{
		Name:   "full-path",
		Usage:  "full resolution image `PATH` (default: images-path/gallery/full)",
		EnvVar: "GALLERY_FULL_PATH",
	},
	cli.StringFlag{
		Name:   "thumbs-path",
		Usage:  "thumbnail `PATH` (default: images-path/gallery/thumbs)",
		EnvVar: "GALLERY_THUMBS_PATH",
	},
	cli.StringFlag{
		Name:   "base-path",
		Usage:  "URL `PATH` of the gallery page used in filter links, e.g. behind a proxy or for static pages",
		Value:  DefaultBasePath,
		EnvVar: "GALLERY_BASE_PATH",
	},
	cli.StringFlag{
		Name:   "http-host",
		Usage:  "web server `IP` address",
		Value:  DefaultHttpHost,
		EnvVar: "GALLERY_HTTP_HOST",
	},
	cli.IntFlag{
		Name:   "http-port",
		Usage:  "web server port `NUMBER`",
		Value:  DefaultHttpPort,
		EnvVar: "GALLERY_HTTP_PORT",
	},
	cli.StringFlag{
		Name:   "variant",
		Usage:  "filter `VARIANT` (buttons, dropdowns)",
		Value:  VariantButtons,
		EnvVar: "GALLERY_VARIANT",
	},
	cli.StringFlag{
		Name:   "locale",
		Usage:  "`LOCALE` used to sort filter values",
		Value:  "en",
		EnvVar: "GALLERY_LOCALE",
	},
	cli.IntFlag{
		Name:   "tag-limit",
		Usage:  "max `NUMBER` of tags to show, 0 for no limit (default: variant setting)",
		Value:  -1,
		EnvVar: "GALLERY_TAG_LIMIT",
	},
	cli.DurationFlag{
		Name:   "cache-ttl",
		Usage:  "rendered page cache `DURATION`",
		Value:  DefaultCacheTTL,
		EnvVar: "GALLERY_CACHE_TTL",
	},
	cli.BoolFlag{
		Name:   "webdav",
		Usage:  "share the full resolution image folder via WebDAV",
		EnvVar: "GALLERY_WEBDAV",
	},
	cli.BoolFlag{
		Name:   "read-only, r",
		Usage:  "don't modify the image folders",
		EnvVar: "GALLERY_READONLY",
	},
	cli.StringFlag{
		Name:   "log-level, l",
		Usage:  "trace, debug, info, warning, error, fatal, or panic",
		Value:  "info",
		EnvVar: "GALLERY_LOG_LEVEL",
	},
}
