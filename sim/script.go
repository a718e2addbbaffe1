package sim

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/shlex"

	"github.com/itohio/tagdisplay/dev"
)

// Step asserts one named input for a while.
type Step struct {
	Input string
	At    time.Duration
	For   time.Duration
}

// ParseScript reads a sequence of "input at length" triples, for example
//
//	fire 2s 200ms  shield 30s hold  # comment
//
// Inputs are fire, shield and beacon. A length of "hold" never releases.
func ParseScript(script string) ([]Step, error) {
	tokens, err := shlex.Split(script)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dev.ErrScript, err)
	}
	if len(tokens)%3 != 0 {
		return nil, fmt.Errorf("%w: %d tokens do not form input/at/length triples", dev.ErrScript, len(tokens))
	}

	steps := make([]Step, 0, len(tokens)/3)
	for i := 0; i < len(tokens); i += 3 {
		name := strings.ToLower(tokens[i])
		switch name {
		case "fire", "shield", "beacon":
		default:
			return nil, fmt.Errorf("%w: unknown input %q", dev.ErrScript, tokens[i])
		}
		at, err := time.ParseDuration(tokens[i+1])
		if err != nil {
			return nil, fmt.Errorf("%w: %s start: %v", dev.ErrScript, name, err)
		}
		length := Forever
		if tokens[i+2] != "hold" {
			if length, err = time.ParseDuration(tokens[i+2]); err != nil {
				return nil, fmt.Errorf("%w: %s length: %v", dev.ErrScript, name, err)
			}
		}
		if at < 0 || length <= 0 {
			return nil, fmt.Errorf("%w: %s needs a positive length from a non-negative start", dev.ErrScript, name)
		}
		steps = append(steps, Step{Input: name, At: at, For: length})
	}
	return steps, nil
}

// Apply schedules steps on the board's input lines.
func (b *Board) Apply(steps []Step) {
	for _, s := range steps {
		var l *Line
		switch s.Input {
		case "fire":
			l = b.Fire
		case "shield":
			l = b.Shield
		case "beacon":
			l = b.Beacon
		default:
			continue
		}
		l.Press(s.At, s.For)
	}
}
