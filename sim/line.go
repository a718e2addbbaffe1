package sim

import (
	"time"

	"github.com/itohio/tagdisplay/dev"
)

// Forever is a pulse length that never ends.
const Forever = time.Duration(1<<63 - 1)

type pulse struct {
	from, to time.Duration
}

// Line is an input whose level follows a timeline of pulses on a Clock.
type Line struct {
	clock  dev.Clock
	pulses []pulse
}

func NewLine(clock dev.Clock) *Line {
	return &Line{clock: clock}
}

// Press asserts the line from at for d.
func (l *Line) Press(at, d time.Duration) *Line {
	to := Forever
	if d < Forever-at {
		to = at + d
	}
	l.pulses = append(l.pulses, pulse{from: at, to: to})
	return l
}

// Hold asserts the line from at onwards.
func (l *Line) Hold(at time.Duration) *Line {
	return l.Press(at, Forever)
}

func (l *Line) Get() bool {
	now := l.clock.Now()
	for _, p := range l.pulses {
		if now >= p.from && now < p.to {
			return true
		}
	}
	return false
}

// Pin is an output that latches the last level written to it.
type Pin struct {
	level  bool
	writes int
}

func (p *Pin) Set(v bool) {
	p.level = v
	p.writes++
}

func (p *Pin) Get() bool {
	return p.level
}

func (p *Pin) Writes() int {
	return p.writes
}

// Power records the halt request instead of sleeping forever.
type Power struct {
	clock  dev.Clock
	halted bool
	at     time.Duration
}

func NewPower(clock dev.Clock) *Power {
	return &Power{clock: clock}
}

func (p *Power) Halt() {
	p.halted = true
	p.at = p.clock.Now()
}

// Halted reports whether Halt was called and when.
func (p *Power) Halted() (bool, time.Duration) {
	return p.halted, p.at
}
