package sim

import (
	"time"

	"github.com/itohio/tagdisplay/dev"
)

// Shot is a frame captured together with the time it was written.
type Shot struct {
	At    time.Duration
	Frame dev.Frame
}

// Board is a complete simulated device.
type Board struct {
	Clock *Clock

	Fire, Shield, Beacon *Line

	Tens, Units [7]*Pin
	Display     *dev.SegmentDisplay
	Store       dev.Store
	Power       *Power

	Trace []Shot
}

// NewBoard builds a board with erased storage. A nil store gets a fresh MemStore.
func NewBoard(store dev.Store) *Board {
	clock := NewClock()
	if store == nil {
		store = dev.NewMemStore(256)
	}
	b := &Board{
		Clock:  clock,
		Fire:   NewLine(clock),
		Shield: NewLine(clock),
		Beacon: NewLine(clock),
		Store:  store,
		Power:  NewPower(clock),
	}
	for i := range b.Tens {
		b.Tens[i] = &Pin{}
		b.Units[i] = &Pin{}
	}
	b.Display = dev.NewSegmentDisplay(digitPins(b.Tens), digitPins(b.Units))
	b.Display.Observe(func(f dev.Frame) {
		b.Trace = append(b.Trace, Shot{At: clock.Now(), Frame: f})
	})
	return b
}

func digitPins(p [7]*Pin) dev.DigitPins {
	return dev.DigitPins{A: p[0], B: p[1], C: p[2], D: p[3], E: p[4], F: p[5], G: p[6]}
}

// Levels reads back the 14 segment lines, tens digit first.
func (b *Board) Levels() [14]bool {
	var out [14]bool
	for i := range b.Tens {
		out[i] = b.Tens[i].Get()
		out[7+i] = b.Units[i].Get()
	}
	return out
}

// Numbers lists the values shown, in order, skipping dashes and blank frames.
func (b *Board) Numbers() []int {
	var out []int
	for _, s := range b.Trace {
		n, ok := s.Frame.Number()
		if !ok {
			continue
		}
		out = append(out, n)
	}
	return out
}
