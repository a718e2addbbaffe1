package dev

import "time"

const DefaultSettle = 55 * time.Millisecond

// Button is a debounced view of an active-high input line.
//
// Pressed blocks for the settle interval whenever it observes the line asserted, so a
// held button is re-validated on every call. No edge state is kept: callers detect edges
// by polling until the level leaves the last observed plateau.
type Button struct {
	line   Input
	clock  Clock
	settle time.Duration
	poll   time.Duration
}

func NewButton(line Input, clock Clock, settle, poll time.Duration) *Button {
	if settle <= 0 {
		settle = DefaultSettle
	}
	return &Button{
		line:   line,
		clock:  clock,
		settle: settle,
		poll:   poll,
	}
}

// Pressed reports whether the line is asserted and stays asserted through the settle interval.
func (b *Button) Pressed() bool {
	if !b.line.Get() {
		return false
	}
	b.clock.Sleep(b.settle)
	return b.line.Get()
}

// WaitRelease blocks until Pressed reports false.
func (b *Button) WaitRelease() {
	for b.Pressed() {
		b.idle()
	}
}

func (b *Button) idle() {
	if b.poll > 0 {
		b.clock.Sleep(b.poll)
	}
}
