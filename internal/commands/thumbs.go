package commands

import (
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/service"
	"github.com/photoprism/gallery/internal/thumb"
)

// ThumbsCommand registers the thumbs cli command.
var ThumbsCommand = cli.Command{
	Name:  "thumbs",
	Usage: "Creates thumbnails for full resolution images",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "force, f",
			Usage: "replace existing thumbnails",
		},
		cli.IntFlag{
			Name:  "max-width",
			Usage: "max thumbnail width in `PIXELS`",
			Value: thumb.MaxWidth,
		},
		cli.IntFlag{
			Name:  "quality, q",
			Usage: "JPEG `QUALITY` (0-100)",
			Value: thumb.JpegQuality,
		},
	},
	Action: thumbsAction,
}

// thumbsAction creates missing and outdated thumbnails.
func thumbsAction(ctx *cli.Context) error {
	start := time.Now()

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	opt := gallery.ThumbsOptionsDefault()

	if ctx.Bool("force") {
		opt = gallery.ThumbsOptionsForce()
	}

	opt.MaxWidth = ctx.Int("max-width")
	opt.Quality = ctx.Int("quality")

	log.Infof("thumbs: creating thumbnails in %s", conf.ThumbsPath())

	result, err := service.Thumbs().Start(opt)

	if err != nil {
		return err
	}

	log.Infof("thumbs: created %s, skipped %s, failed %s [%s]",
		english.Plural(result.Created, "file", "files"),
		english.Plural(result.Skipped, "file", "files"),
		english.Plural(result.Failed, "file", "files"),
		time.Since(start))

	return nil
}
