//go:build rp2040

package config

import "machine"

var (
	Fire   = machine.GP16
	Shield = machine.GP17
	Beacon = machine.GP18

	// Segment lines, A through G.
	TensA = machine.GP0
	TensB = machine.GP1
	TensC = machine.GP2
	TensD = machine.GP3
	TensE = machine.GP4
	TensF = machine.GP5
	TensG = machine.GP6

	UnitsA = machine.GP7
	UnitsB = machine.GP8
	UnitsC = machine.GP9
	UnitsD = machine.GP10
	UnitsE = machine.GP11
	UnitsF = machine.GP12
	UnitsG = machine.GP13

	// Optional SSD1306 mirror on I2C0.
	MirrorSDA     = machine.GP20
	MirrorSCL     = machine.GP21
	MirrorAddress = uint16(0x3C)
	MirrorEnabled = true
)

// SegmentPins lists every segment line, tens digit first.
func SegmentPins() []machine.Pin {
	return []machine.Pin{
		TensA, TensB, TensC, TensD, TensE, TensF, TensG,
		UnitsA, UnitsB, UnitsC, UnitsD, UnitsE, UnitsF, UnitsG,
	}
}
