/*
Gallery serves filterable photo grids from a JSON photo manifest.

Usage:

	gallery [global options] command [command options]

Run "gallery help" for a list of commands and options.
*/
package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/commands"
	"github.com/photoprism/gallery/internal/config"
	"github.com/photoprism/gallery/internal/event"
)

var version = "development"
var log = event.Log

func main() {
	app := cli.NewApp()
	app.Name = "gallery"
	app.Usage = "Filterable photo gallery"
	app.Version = version
	app.Copyright = "(c) 2026 The Gallery Authors"
	app.EnableBashCompletion = true
	app.Flags = config.GlobalFlags
	app.Commands = commands.GalleryCommands

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
