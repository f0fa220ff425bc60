package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/viewer"
)

// FacetsCommand registers the facets cli command.
var FacetsCommand = cli.Command{
	Name:   "facets",
	Usage:  "Lists collections, categories, and tags",
	Flags:  filterFlags,
	Action: facetsAction,
}

// facetsAction prints the facet values and the result summary.
func facetsAction(ctx *cli.Context) error {
	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	store, err := loadStore(context.Background(), conf)

	if err != nil {
		return err
	}

	r := store.Search(filterFromContext(ctx), gallery.SearchOptions(conf))
	w := ctx.App.Writer

	fmt.Fprintf(w, "Collections: %s\n", strings.Join(r.Collections, ", "))

	if r.Categories != nil {
		fmt.Fprintf(w, "Categories:  %s\n", strings.Join(r.Categories, ", "))
	}

	fmt.Fprintf(w, "Tags:        %s\n", strings.Join(r.Tags, ", "))
	fmt.Fprintln(w, viewer.NewSummary(r.Count(), r.Filter).Text())

	return nil
}
