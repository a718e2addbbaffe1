package game

import "time"

const (
	MinValue = 0
	MaxValue = 99
)

// State is the in-game bookkeeping owned by the Sequencer.
type State struct {
	Health  int
	Shields int

	// anchor is the clock reading the shield countdown is measured from.
	anchor time.Duration
}

func NewState(health, shields int) State {
	return State{
		Health:  Clamp(health),
		Shields: Clamp(shields),
	}
}

// Clamp bounds v to the range the display can render.
func Clamp(v int) int {
	return min(max(v, MinValue), MaxValue)
}

// Hit removes one health point and returns what is left.
func (s *State) Hit() int {
	if s.Health > MinValue {
		s.Health--
	}
	return s.Health
}

// Drain removes n shield points without going under floor.
func (s *State) Drain(n, floor int) {
	if n <= 0 {
		return
	}
	s.Shields = max(s.Shields-n, floor)
}

// ShieldFloor is the lowest value one activation may drain shields to.
func ShieldFloor(shields, charge int) int {
	return max(shields-charge, MinValue)
}

// nextEntry advances a number being entered by hand, wrapping 99 to 1.
func nextEntry(v int) int {
	v++
	if v > MaxValue {
		return 1
	}
	return v
}
