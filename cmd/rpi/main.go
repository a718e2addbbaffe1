// Command rpi runs the display on a Raspberry Pi, with segment lines and buttons on GPIO.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
	"github.com/itohio/tagdisplay/game"
	"github.com/itohio/tagdisplay/platform/rpi"
	"github.com/itohio/tagdisplay/storage/sqlite"
)

type options struct {
	StorePath string `env:"TAG_STORE_PATH" envDefault:"/var/lib/tagdisplay/slots.db"`
	LogLevel  string `env:"TAG_LOG_LEVEL" envDefault:"info"`
	Pins      config.RPiPins
}

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("rpi")
	}
}

func run() error {
	var opts options
	if err := config.ParseEnv(&opts); err != nil {
		return err
	}
	if lvl, err := zerolog.ParseLevel(opts.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := sqlite.Open(opts.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	hw, err := rpi.Open(opts.Pins)
	if err != nil {
		return err
	}

	seq := game.NewSequencer(game.Board{
		Fire:    hw.Fire,
		Shield:  hw.Shield,
		Beacon:  hw.Beacon,
		Display: dev.NewSegmentDisplay(hw.Tens, hw.Units),
		Store:   store,
		Clock:   dev.NewSystemClock(),
		Power:   hw,
	}, cfg, log.Logger)
	seq.Run()

	log.Info().Msg("powered down")
	return nil
}
