/*
Package commands provides the gallery command line commands.
*/
package commands

import (
	"context"

	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/event"
	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/search"
	"github.com/photoprism/gallery/internal/service"
)

var log = event.Log

// GalleryCommands lists all commands.
var GalleryCommands = []cli.Command{
	StartCommand,
	RenderCommand,
	FacetsCommand,
	ThumbsCommand,
}

// filterFlags select the facets for commands that render or list results.
var filterFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "collection",
		Usage: "collection `NAME`",
	},
	cli.StringFlag{
		Name:  "category",
		Usage: "category `NAME`",
	},
	cli.StringFlag{
		Name:  "tag",
		Usage: "tag `NAME`",
	},
}

// initConfig creates, validates and registers the configuration.
func initConfig(ctx *cli.Context) (*config.Config, error) {
	conf := config.NewConfig(ctx)
	service.SetConfig(conf)

	if err := conf.Init(); err != nil {
		return conf, err
	}

	return conf, nil
}

// loadStore loads the manifest and registers the photo store.
func loadStore(ctx context.Context, conf *config.Config) (*gallery.Store, error) {
	store, err := gallery.Load(ctx, conf.Manifest())

	if err != nil {
		return nil, err
	}

	service.SetStore(store)

	return store, nil
}

func filterFromContext(ctx *cli.Context) search.Filter {
	return search.ParseFilter(ctx.String("collection"), ctx.String("category"), ctx.String("tag"))
}
