package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/photoprism/gallery/internal/auto"
	"github.com/photoprism/gallery/internal/gallery"
	"github.com/photoprism/gallery/internal/server"
	"github.com/photoprism/gallery/internal/service"
)

// StartCommand registers the start cli command.
var StartCommand = cli.Command{
	Name:    "start",
	Aliases: []string{"up"},
	Usage:   "Starts the web server",
	Action:  startAction,
}

// startAction loads the manifest and serves the gallery.
func startAction(ctx *cli.Context) error {
	start := time.Now()

	conf, err := initConfig(ctx)

	if err != nil {
		return err
	}

	cctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A broken manifest results in an empty gallery.
	if _, err := loadStore(cctx, conf); err != nil {
		log.Errorf("start: %s", err)
		service.SetStore(gallery.EmptyStore())
	}

	if conf.ReadOnly() {
		log.Infof("config: read-only mode enabled")
	} else if conf.WebDAV() {
		go auto.Start(cctx, service.Thumbs())
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sig
		cancel()
	}()

	log.Debugf("start: ready in %s", time.Since(start))

	server.Start(cctx, conf)

	log.Info("start: shutdown complete")

	return nil
}
