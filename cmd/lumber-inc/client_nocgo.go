//go:build !cgo

package main

import (
	"log"

	"github.com/appengine-ltd/lumber-inc/internal/ui"
)

// Without cgo there is neither raylib nor an audio backend; the terminal
// client runs silent.
func launchClient(opts playOptions) error {
	if !opts.tui {
		log.Printf("play: built without cgo, using the terminal client")
	}
	return ui.NewApp(ui.AppConfig{
		Version: version,
		Game:    opts.cfg,
		Logger:  log.Default(),
	}).Run()
}
