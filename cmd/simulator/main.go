// Command simulator plays the display firmware on a desktop with scripted buttons.
//
//	TAG_SCRIPT="fire 1s 200ms  beacon 15s 300ms  shield 20s 4s" go run ./cmd/simulator
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
	"github.com/itohio/tagdisplay/game"
	"github.com/itohio/tagdisplay/sim"
	"github.com/itohio/tagdisplay/storage/sqlite"
)

type options struct {
	Script    string        `env:"TAG_SCRIPT"`
	StorePath string        `env:"TAG_STORE_PATH" envDefault:"tagdisplay.db"`
	LogLevel  string        `env:"TAG_LOG_LEVEL" envDefault:"info"`
	Pace      float64       `env:"TAG_SIM_PACE" envDefault:"0"`
	Limit     time.Duration `env:"TAG_SIM_LIMIT" envDefault:"1h"`
	Panel     bool          `env:"TAG_SIM_PANEL" envDefault:"true"`
}

func main() {
	_ = godotenv.Load()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("simulator")
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
	steps, err := sim.ParseScript(opts.Script)
	if err != nil {
		return err
	}

	store, err := sqlite.Open(opts.StorePath)
	if err != nil {
		return err
	}
	defer store.Close()

	board := sim.NewBoard(store)
	board.Clock.SetPace(opts.Pace)
	board.Clock.SetLimit(opts.Limit)
	board.Apply(steps)

	seq := game.NewSequencer(game.Board{
		Fire:    board.Fire,
		Shield:  board.Shield,
		Beacon:  board.Beacon,
		Display: board.Display,
		Store:   board.Store,
		Clock:   board.Clock,
		Power:   board.Power,
	}, cfg, log.Logger.With().Str("component", "sequencer").Logger())

	clockCtx := func(e *zerolog.Event) *zerolog.Event {
		return e.Dur("sim", board.Clock.Now())
	}
	seq.OnPhase(func(p game.Phase) {
		clockCtx(log.Debug()).Stringer("phase", p).Msg("transition")
	})

	if opts.Panel {
		fb := sim.NewFramebuffer(64, 32, os.Stdout)
		panel := dev.NewPanel(fb, &proggy.TinySZ8pt7b)
		panel.SetStatus(func() string {
			st := seq.State()
			return fmt.Sprintf("%s %02d/%02d", board.Clock.Now().Truncate(time.Second), st.Health, st.Shields)
		})
		board.Display.Observe(func(f dev.Frame) {
			if err := panel.Draw(f); err != nil {
				log.Warn().Err(err).Msg("panel")
			}
		})
	}

	seq.Run()

	_, at := board.Power.Halted()
	st := seq.State()
	clockCtx(log.Info()).Dur("halted", at).Int("health", st.Health).Int("shields", st.Shields).Msg("powered down")
	return nil
}
