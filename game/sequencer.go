package game

import (
	"github.com/rs/zerolog"

	"github.com/itohio/tagdisplay/config"
	"github.com/itohio/tagdisplay/dev"
)

// Board is the set of peripherals the sequencer drives.
type Board struct {
	Fire, Shield, Beacon dev.Input

	Display *dev.SegmentDisplay
	Store   dev.Store
	Clock   dev.Clock
	Power   dev.Power
}

// Sequencer runs the game from power-on to power-down.
type Sequencer struct {
	cfg   config.Settings
	log   zerolog.Logger
	board Board

	fire, shield, beacon *dev.Button

	state   State
	phase   Phase
	onPhase func(Phase)
}

func NewSequencer(board Board, cfg config.Settings, log zerolog.Logger) *Sequencer {
	t := cfg.Timing
	return &Sequencer{
		cfg:    cfg,
		log:    log,
		board:  board,
		fire:   dev.NewButton(board.Fire, board.Clock, t.Debounce, t.Poll),
		shield: dev.NewButton(board.Shield, board.Clock, t.Debounce, t.Poll),
		beacon: dev.NewButton(board.Beacon, board.Clock, t.Debounce, t.Poll),
	}
}

// OnPhase registers a callback invoked on every phase transition.
func (s *Sequencer) OnPhase(f func(Phase)) {
	s.onPhase = f
}

func (s *Sequencer) Phase() Phase {
	return s.phase
}

func (s *Sequencer) State() State {
	return s.state
}

// Run plays one power cycle. It returns only if the board's Power.Halt returns.
func (s *Sequencer) Run() {
	s.enter(PhaseBoot)

	started := true
	if s.shield.Pressed() {
		s.board.Display.ShowDashes()
		s.shield.WaitRelease()
		s.advancedSetup()
	} else {
		started = s.normalSetup()
	}

	if started {
		s.countdown()
		s.play()
		s.depleted()
	}
	s.powerDown()
}

func (s *Sequencer) normalSetup() bool {
	s.enter(PhaseNormalSetup)
	normal, alternate := s.cfg.Normal, s.cfg.Alternate
	s.state = NewState(normal.Health, normal.Shields)
	s.show(s.state.Health)

	timeout := s.cfg.Timing.StartupTimeout
	last := s.board.Clock.Now()
	useAlternate := false
	for {
		if s.fire.Pressed() {
			return true
		}
		if s.shield.Pressed() {
			last = s.board.Clock.Now()
			useAlternate = !useAlternate
			preset := normal
			if useAlternate {
				preset = alternate
			}
			s.state = NewState(preset.Health, preset.Shields)
			s.log.Debug().Int("health", s.state.Health).Int("shields", s.state.Shields).Msg("preset")
			s.show(s.state.Health)
			s.shield.WaitRelease()
		}
		if dev.Since(s.board.Clock, last) >= timeout {
			s.log.Info().Dur("timeout", timeout).Msg("no start")
			return false
		}
		s.idle()
	}
}

// advancedSetup lets the host pick exact starting values. The extended startup
// timeout is recorded but number entry itself never times out.
func (s *Sequencer) advancedSetup() {
	s.enter(PhaseAdvancedSetup)
	s.log.Debug().Dur("timeout", s.cfg.Timing.AdvancedTimeout).Msg("advanced")

	preset, reset, err := LoadSettings(s.board.Store, s.cfg)
	if err != nil {
		s.log.Warn().Err(err).Msg("settings reset")
	}
	if reset {
		s.log.Info().Int("health", preset.Health).Int("shields", preset.Shields).Msg("settings defaulted")
	}

	health := s.enterNumber(preset.Health, s.cfg.HealthSlot, "health")
	shields := s.enterNumber(preset.Shields, s.cfg.ShieldSlot, "shields")
	s.state = NewState(health, shields)
}

// enterNumber shows v and lets Fire step it until Shield commits it to slot.
func (s *Sequencer) enterNumber(v int, slot uint16, name string) int {
	t := s.cfg.Timing
	v = Clamp(v)
	s.show(v)
	for {
		if s.fire.Pressed() {
			v = nextEntry(v)
			s.show(v)
			repeatAt := s.board.Clock.Now() + t.HoldThreshold
			for s.fire.Pressed() {
				now := s.board.Clock.Now()
				for now >= repeatAt && t.RepeatInterval > 0 {
					v = nextEntry(v)
					s.show(v)
					repeatAt += t.RepeatInterval
				}
			}
			continue
		}
		if s.shield.Pressed() {
			if err := SaveSetting(s.board.Store, slot, v); err != nil {
				s.log.Warn().Err(err).Str("setting", name).Msg("save")
			}
			s.log.Info().Int(name, v).Msg("saved")
			s.shield.WaitRelease()
			return v
		}
		s.idle()
	}
}

func (s *Sequencer) countdown() {
	s.enter(PhaseCountdown)
	for s.beacon.Pressed() {
		s.idle()
	}

	step := s.cfg.Timing.CountdownStep
	for i := Clamp(s.cfg.CountdownFrom); i > 0; i-- {
		s.show(i)
		s.board.Clock.Sleep(step)
	}
	s.show(0)
	s.board.Clock.Sleep(step)
	s.show(s.state.Health)
}

// play is the main loop. It returns once health is gone.
func (s *Sequencer) play() {
	s.enter(PhaseActive)
	if s.state.Health == 0 {
		return
	}
	for {
		if s.beacon.Pressed() {
			health := s.state.Hit()
			s.show(health)
			s.log.Info().Int("health", health).Msg("hit")
			if health == 0 {
				return
			}
			s.beacon.WaitRelease()
			continue
		}
		s.handleShield()
		s.idle()
	}
}

func (s *Sequencer) depleted() {
	s.enter(PhaseDepleted)
	s.show(0)
	s.board.Clock.Sleep(s.cfg.Timing.DepletedHold)
}

func (s *Sequencer) powerDown() {
	s.enter(PhasePoweredDown)
	s.board.Display.Clear()
	s.board.Power.Halt()
}

func (s *Sequencer) enter(p Phase) {
	s.phase = p
	s.log.Info().Stringer("phase", p).Msg("enter")
	if s.onPhase != nil {
		s.onPhase(p)
	}
}

func (s *Sequencer) show(n int) {
	if err := s.board.Display.Show(n); err != nil {
		s.log.Error().Err(err).Int("value", n).Msg("render")
	}
}

func (s *Sequencer) idle() {
	if s.cfg.Timing.Poll > 0 {
		s.board.Clock.Sleep(s.cfg.Timing.Poll)
	}
}
