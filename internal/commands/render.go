package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/render"
	"github.com/photoprism/gallery/pkg/sanitize"
)

// RenderCommand registers the render cli command.
var RenderCommand = cli.Command{
	Name:  "render",
	Usage: "Renders a static gallery page",
	Description: "Filter links point to the base path with a query string, so they need a running gallery server there.\n" +
		"   Use --base-path to point them at it.",
	Flags:  append([]cli.Flag{cli.StringFlag{Name: "output, o", Usage: "output `FILENAME`, - for stdout", Value: "-"}}, filterFlags...),
	Action: renderAction,
}

// renderAction writes the gallery page for the selected filter.
func renderAction(ctx *cli.Context) error {
	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	store, err := loadStore(context.Background(), conf)

	if err != nil {
		return err
	}

	page := gallery.NewPage(store, conf, filterFromContext(ctx))

	var w io.Writer = os.Stdout

	if out := ctx.String("output"); out != "" && out != "-" {
		if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
			return err
		}

		f, err := os.Create(out)

		if err != nil {
			return err
		}

		defer f.Close()

		w = f

		log.Infof("render: writing %s", sanitize.Log(out))
	}

	return render.Page(w, page)
}
