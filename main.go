//go:build rp2040

package main

import (
	"machine"

	"github.com/rs/zerolog"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/game"
)

//go:generate tinygo flash -target=pico

func main() {
	configureInputs()
	display := configureSegments()
	log := zerolog.New(machine.Serial).Level(zerolog.InfoLevel)

	seq := game.NewSequencer(game.Board{
		Fire:    config.Fire,
		Shield:  config.Shield,
		Beacon:  config.Beacon,
		Display: display,
		Store:   configureStore(),
		Clock:   rawClock{},
		Power:   pinPower{},
	}, config.Default(), log)

	if config.MirrorEnabled {
		if err := configureMirror(display, seq); err != nil {
			println("mirror failed: " + err.Error())
		}
	}

	seq.Run()
}
