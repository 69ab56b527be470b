//go:build cgo

package main

import (
	"log"

	"github.com/appengine-ltd/lumber-inc/internal/audio"
	"github.com/appengine-ltd/lumber-inc/internal/game"
	"github.com/appengine-ltd/lumber-inc/internal/gui"
	"github.com/appengine-ltd/lumber-inc/internal/ui"
)

func launchClient(opts playOptions) error {
	var player game.AudioPlayer
	if !opts.mute {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: running silent: %v", err)
		} else {
			defer sm.Cleanup()
			player = sm
		}
	}

	if opts.tui {
		return ui.NewApp(ui.AppConfig{
			Version: version,
			Game:    opts.cfg,
			Audio:   player,
			Logger:  log.Default(),
		}).Run()
	}
	return gui.NewApp(gui.AppConfig{
		Version: version,
		Game:    opts.cfg,
		Audio:   player,
		Logger:  log.Default(),
	}).Run()
}
