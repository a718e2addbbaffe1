package dev

// Segment bit positions inside a pattern byte.
const (
	SegA uint8 = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

const (
	PatternDash  = SegG
	PatternBlank = 0
)

// hexPatterns is the standard seven-segment hex table. Only 0-9 are rendered here.
var hexPatterns = [16]uint8{
	0x3F, 0x06, 0x5B, 0x4F, 0x66, 0x6D, 0x7D, 0x07,
	0x7F, 0x6F, 0x77, 0x7C, 0x39, 0x5E, 0x79, 0x71,
}

// DigitPins maps the logical segments of one digit to output lines.
type DigitPins struct {
	A, B, C, D, E, F, G Output
}

func (d DigitPins) lines() [7]Output {
	return [7]Output{d.A, d.B, d.C, d.D, d.E, d.F, d.G}
}

// Frame is the pair of segment patterns currently on the display.
type Frame struct {
	Tens, Units uint8
}

// Number decodes the frame back into a 0..99 value.
func (f Frame) Number() (int, bool) {
	t, ok := DecodeDigit(f.Tens)
	if !ok {
		return 0, false
	}
	u, ok := DecodeDigit(f.Units)
	if !ok {
		return 0, false
	}
	return t*10 + u, true
}

func (f Frame) IsBlank() bool {
	return f.Tens == PatternBlank && f.Units == PatternBlank
}

func (f Frame) IsDashes() bool {
	return f.Tens == PatternDash && f.Units == PatternDash
}

// Pattern returns the segment pattern for a decimal digit.
func Pattern(digit int) uint8 {
	return hexPatterns[digit&0x0F]
}

// DecodeDigit reverses Pattern for digits 0-9.
func DecodeDigit(pattern uint8) (int, bool) {
	for i := 0; i < 10; i++ {
		if hexPatterns[i] == pattern {
			return i, true
		}
	}
	return 0, false
}

// BCD packs a 0..99 value into two decimal nibbles.
func BCD(n int) uint8 {
	return uint8((n/10)<<4 | n%10)
}

// SegmentDisplay drives two seven-segment digits through 14 discrete lines.
type SegmentDisplay struct {
	tens, units [7]Output
	frame       Frame
	observers   []func(Frame)
}

func NewSegmentDisplay(tens, units DigitPins) *SegmentDisplay {
	return &SegmentDisplay{
		tens:  tens.lines(),
		units: units.lines(),
	}
}

// Observe registers f to be called after every frame is written.
func (d *SegmentDisplay) Observe(f func(Frame)) {
	d.observers = append(d.observers, f)
}

// Show renders n. Values outside 0..99 leave the outputs untouched.
func (d *SegmentDisplay) Show(n int) error {
	if n < 0 || n > 99 {
		return ErrOutOfRange
	}
	bcd := BCD(n)
	d.write(Frame{
		Tens:  hexPatterns[bcd>>4],
		Units: hexPatterns[bcd&0x0F],
	})
	return nil
}

// ShowDashes lights the middle segment of both digits.
func (d *SegmentDisplay) ShowDashes() {
	d.write(Frame{Tens: PatternDash, Units: PatternDash})
}

// Clear drives every segment line low.
func (d *SegmentDisplay) Clear() {
	d.write(Frame{})
}

func (d *SegmentDisplay) Frame() Frame {
	return d.frame
}

func (d *SegmentDisplay) write(f Frame) {
	writeDigit(d.tens, f.Tens)
	writeDigit(d.units, f.Units)
	d.frame = f
	for _, o := range d.observers {
		o(f)
	}
}

func writeDigit(lines [7]Output, pattern uint8) {
	for i, line := range lines {
		if line == nil {
			continue
		}
		line.Set(pattern&(1<<i) != 0)
	}
}
